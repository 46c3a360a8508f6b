package interfaces

import (
	"context"

	"github.com/valpere/pohoda/pkg/weather"
)

//go:generate mockgen -source=weather_client.go -destination=../../tests/mocks/weather_client_mock.go -package=mocks

// WeatherSource fetches the raw current-weather payload for a city name
type WeatherSource interface {
	GetCurrentWeatherByCity(ctx context.Context, city string) (*weather.CurrentWeatherResponse, error)
}
