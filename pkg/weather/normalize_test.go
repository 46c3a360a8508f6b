package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() *CurrentWeatherResponse {
	return &CurrentWeatherResponse{
		Name: "Paris",
		Main: &MainBlock{Temp: 21.6, FeelsLike: 21.4, Humidity: 64},
		Weather: []ConditionEntry{
			{Main: "Rain", Description: "moderate rain", Icon: "10d"},
			{Main: "Mist", Description: "mist", Icon: "50d"},
		},
		Wind: WindBlock{Speed: 10.0},
		Sys:  SysBlock{Country: "FR"},
	}
}

func TestNormalize(t *testing.T) {
	reading, err := Normalize(samplePayload())

	require.NoError(t, err)
	assert.Equal(t, "Paris", reading.Name)
	assert.Equal(t, "FR", reading.Country)
	assert.Equal(t, 22, reading.Temperature)
	assert.Equal(t, 21, reading.FeelsLike)
	assert.Equal(t, 64, reading.Humidity)
	assert.Equal(t, 36, reading.WindSpeed)
	assert.Equal(t, "Rain", reading.Condition)
	assert.Equal(t, "moderate rain", reading.Description)
	assert.Equal(t, "10d", reading.Icon)
	assert.Equal(t, "🌧️", reading.Glyph)
	assert.Equal(t, "Paris, FR", reading.Location())
}

func TestNormalize_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		wind     float64
		wantTemp int
		wantWind int
	}{
		{"round up", 21.6, 10.0, 22, 36},
		{"round down", 21.4, 1.0, 21, 4},
		{"half away from zero", 0.5, 2.5, 1, 9},
		{"negative", -3.6, 0, -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := samplePayload()
			payload.Main.Temp = tt.temp
			payload.Wind.Speed = tt.wind

			reading, err := Normalize(payload)

			require.NoError(t, err)
			assert.Equal(t, tt.wantTemp, reading.Temperature)
			assert.Equal(t, tt.wantWind, reading.WindSpeed)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	payload := samplePayload()

	first, err := Normalize(payload)
	require.NoError(t, err)
	second, err := Normalize(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalize_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CurrentWeatherResponse) *CurrentWeatherResponse
	}{
		{"nil payload", func(p *CurrentWeatherResponse) *CurrentWeatherResponse { return nil }},
		{"missing name", func(p *CurrentWeatherResponse) *CurrentWeatherResponse { p.Name = ""; return p }},
		{"no conditions", func(p *CurrentWeatherResponse) *CurrentWeatherResponse { p.Weather = nil; return p }},
		{"no main block", func(p *CurrentWeatherResponse) *CurrentWeatherResponse { p.Main = nil; return p }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := Normalize(tt.mutate(samplePayload()))

			assert.Nil(t, reading)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestNormalize_OptionalBlocks(t *testing.T) {
	payload := samplePayload()
	payload.Wind = WindBlock{}
	payload.Sys = SysBlock{}

	reading, err := Normalize(payload)

	require.NoError(t, err)
	assert.Equal(t, 0, reading.WindSpeed)
	assert.Equal(t, "", reading.Country)
	assert.Equal(t, "Paris", reading.Location())
}
