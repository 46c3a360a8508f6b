package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/version"
	"github.com/valpere/pohoda/pkg/metrics"
	"github.com/valpere/pohoda/pkg/weather"
)

const providerName = "openweathermap"

// WeatherService wraps the provider client with logging and metrics
type WeatherService struct {
	client  interfaces.WeatherSource
	metrics *metrics.Metrics
	logger  *zerolog.Logger
}

func NewWeatherService(cfg *config.WeatherConfig, metricsCollector *metrics.Metrics, logger *zerolog.Logger) *WeatherService {
	client := weather.NewClient(cfg.OpenWeatherAPIKey)
	client.SetBaseURL(cfg.BaseURL)
	client.SetRateLimit(cfg.RateLimit, cfg.RateBurst)
	client.SetUserAgent(version.UserAgent())

	return NewWeatherServiceWithSource(client, metricsCollector, logger)
}

// NewWeatherServiceWithSource instruments an arbitrary source, e.g. a mock
func NewWeatherServiceWithSource(source interfaces.WeatherSource, metricsCollector *metrics.Metrics, logger *zerolog.Logger) *WeatherService {
	return &WeatherService{
		client:  source,
		metrics: metricsCollector,
		logger:  logger,
	}
}

func (s *WeatherService) GetCurrentWeatherByCity(ctx context.Context, city string) (*weather.CurrentWeatherResponse, error) {
	start := time.Now()
	payload, err := s.client.GetCurrentWeatherByCity(ctx, city)
	elapsed := time.Since(start)

	status := requestStatus(err)
	s.metrics.IncrementCounter("weather_requests_total", providerName, status)
	s.metrics.ObserveHistogram("weather_api_duration_seconds", elapsed.Seconds(), providerName)

	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("city", city).
			Str("status", status).
			Dur("duration", elapsed).
			Msg("Weather API request failed")
		return nil, fmt.Errorf("failed to get weather data: %w", err)
	}

	s.logger.Debug().
		Str("city", city).
		Dur("duration", elapsed).
		Msg("Weather API request succeeded")

	return payload, nil
}

// requestStatus labels a provider outcome for metrics
func requestStatus(err error) string {
	var serviceErr *weather.ServiceError
	var transportErr *weather.TransportError

	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, weather.ErrNotFound):
		return "not_found"
	case errors.Is(err, weather.ErrUnauthorized):
		return "unauthorized"
	case errors.As(err, &serviceErr):
		return "service_error"
	case errors.As(err, &transportErr):
		return "transport_error"
	case errors.Is(err, weather.ErrMalformedResponse):
		return "malformed"
	default:
		return "error"
	}
}
