package presenter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/weather"
	"github.com/valpere/pohoda/tests/helpers"
)

var (
	_ interfaces.Presenter = (*View)(nil)
	_ interfaces.Presenter = (*Terminal)(nil)
	_ interfaces.Presenter = Multi(nil)
)

func parisReading() weather.Reading {
	return weather.Reading{
		Name:        "Paris",
		Country:     "FR",
		Temperature: 22,
		FeelsLike:   20,
		Condition:   "Rain",
		Description: "light rain",
		Humidity:    64,
		WindSpeed:   36,
		Icon:        "10d",
		Glyph:       "🌧️",
	}
}

func TestView(t *testing.T) {
	t.Run("loading then weather", func(t *testing.T) {
		v := NewView()
		v.ShowQuickPicks([]string{"London"})
		v.ShowLoading(true)
		v.HideAll()

		s := v.Snapshot()
		assert.True(t, s.Loading)
		assert.Nil(t, s.Weather)
		assert.Empty(t, s.QuickPicks)

		v.ShowWeather(parisReading())
		v.ShowLoading(false)

		s = v.Snapshot()
		assert.False(t, s.Loading)
		require.NotNil(t, s.Weather)
		assert.Equal(t, "Paris", s.Weather.Name)
		assert.Nil(t, s.Error)
	})

	t.Run("error replaces weather", func(t *testing.T) {
		v := NewView()
		v.ShowWeather(parisReading())
		v.ShowError(weather.MsgNotFound, true)

		s := v.Snapshot()
		assert.Nil(t, s.Weather)
		require.NotNil(t, s.Error)
		assert.Equal(t, weather.MsgNotFound, s.Error.Message)
		assert.True(t, s.Error.HasRetry)
	})

	t.Run("toast survives HideAll and ignores stale ids", func(t *testing.T) {
		v := NewView()
		v.ShowToast(models.Toast{ID: "b", Message: "second", Kind: models.ToastSuccess, CreatedAt: time.Now()})
		v.HideAll()
		v.HideToast("a")

		s := v.Snapshot()
		require.NotNil(t, s.Toast)
		assert.Equal(t, "second", s.Toast.Message)

		v.HideToast("b")
		assert.Nil(t, v.Snapshot().Toast)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		v := NewView()
		v.ShowWeather(parisReading())
		v.ShowQuickPicks([]string{"London", "Tokyo"})
		v.Prefill("Paris")

		s := v.Snapshot()
		s.Weather.Temperature = -40
		s.QuickPicks[0] = "Mutated"

		again := v.Snapshot()
		assert.Equal(t, 22, again.Weather.Temperature)
		assert.Equal(t, []string{"London", "Tokyo"}, again.QuickPicks)
		assert.Equal(t, "Paris", again.Prefill)
	})
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Prefill("Paris")
	term.ShowLoading(true)
	term.HideAll()
	term.ShowWeather(parisReading())
	term.ShowToast(models.Toast{Message: "Weather updated for Paris, FR", Kind: models.ToastSuccess})
	term.HideToast("ignored")
	term.ShowLoading(false)
	term.ShowError(weather.MsgNotFound, true)
	term.ShowError(weather.MsgTransport, false)
	term.ShowQuickPicks([]string{"London", "Tokyo"})

	out := buf.String()
	assert.Contains(t, out, "Last searched: Paris\n")
	assert.Contains(t, out, "Searching...\n")
	assert.Contains(t, out, "🌧️ Paris, FR")
	assert.Contains(t, out, "Temperature: 22°C (feels like 20°C)")
	assert.Contains(t, out, "Humidity: 64%")
	assert.Contains(t, out, "Wind: 36 km/h")
	assert.Contains(t, out, "Light rain")
	assert.Contains(t, out, "[success] Weather updated for Paris, FR\n")
	assert.Contains(t, out, "❌ "+weather.MsgNotFound+" (retry available)\n")
	assert.Contains(t, out, "❌ "+weather.MsgTransport+"\n")
	assert.Contains(t, out, "Enter a city name or try one of: London, Tokyo\n")
	assert.Equal(t, 1, strings.Count(out, "Searching..."))
}

func TestFormatQuickPicks(t *testing.T) {
	assert.Equal(t, "Enter a city name to get the current weather.", FormatQuickPicks(nil))
	assert.Equal(t, "Enter a city name or try one of: Paris", FormatQuickPicks([]string{"Paris"}))
}

func TestMulti(t *testing.T) {
	a := helpers.NewRecordingPresenter()
	b := helpers.NewRecordingPresenter()
	m := NewMulti(a, nil, b)

	require.Len(t, m, 2)

	m.ShowLoading(true)
	m.HideAll()
	m.ShowWeather(parisReading())
	m.ShowError("boom", false)
	m.ShowToast(models.Toast{ID: "t1", Message: "hi"})
	m.HideToast("t1")
	m.ShowQuickPicks([]string{"London"})
	m.Prefill("Paris")
	m.ShowLoading(false)

	expected := []string{
		helpers.EventShowLoading,
		helpers.EventHideAll,
		helpers.EventShowWeather,
		helpers.EventShowError,
		helpers.EventShowToast,
		helpers.EventHideToast,
		helpers.EventShowQuickPicks,
		helpers.EventPrefill,
		helpers.EventShowLoading,
	}
	assert.Equal(t, expected, a.Kinds())
	assert.Equal(t, expected, b.Kinds())
}
