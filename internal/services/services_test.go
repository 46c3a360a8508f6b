package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/internal/storage"
	"github.com/valpere/pohoda/pkg/metrics"
	"github.com/valpere/pohoda/tests/fixtures"
	"github.com/valpere/pohoda/tests/helpers"
)

func TestNew(t *testing.T) {
	server := helpers.NewWeatherServer(t, helpers.RespondJSON(http.StatusOK, fixtures.GetMockWeatherResponse(fixtures.ParisPayload())))

	cfg := helpers.GetTestConfig()
	cfg.Weather.BaseURL = server.URL()
	store := storage.NewMemoryStore()
	presenter := helpers.NewRecordingPresenter()

	svcs := New(cfg, store, presenter, helpers.NewSilentTestLogger(), metrics.New())
	defer svcs.Stop()

	require.NotNil(t, svcs.Weather)
	require.NotNil(t, svcs.Notification)
	require.NotNil(t, svcs.QuickPicks)
	require.NotNil(t, svcs.Search)
	assert.GreaterOrEqual(t, svcs.Uptime().Nanoseconds(), int64(0))

	ctx := context.Background()
	require.NoError(t, svcs.Search.Initiate(ctx, "Paris"))

	city, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Paris", city)
	assert.Equal(t, models.PhaseSuccess, svcs.Search.State().Phase)
	assert.Equal(t, []string{"Paris"}, server.Requests())
}

func TestServicesRestoreFromStore(t *testing.T) {
	server := helpers.NewWeatherServer(t, helpers.RespondJSON(http.StatusOK, fixtures.GetMockWeatherResponse(fixtures.ParisPayload())))

	cfg := helpers.GetTestConfig()
	cfg.Weather.BaseURL = server.URL()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "Paris"))

	presenter := helpers.NewRecordingPresenter()
	svcs := New(cfg, store, presenter, helpers.NewSilentTestLogger(), metrics.New())
	defer svcs.Stop()

	require.NoError(t, svcs.Search.RestoreOnStartup(context.Background()))

	assert.Len(t, server.Requests(), 1)
	assert.Equal(t, 0, presenter.Count(helpers.EventShowQuickPicks))
}
