// Package services holds the search lifecycle and the collaborators it
// orchestrates: the instrumented weather source, the toast notifier and the
// quick pick presets.
package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/pkg/metrics"
)

// Services is the container wired once at startup.
//
// Usage:
//
//	svcs := services.New(cfg, store, presenter, logger, metrics)
//	defer svcs.Stop()
//
//	err := svcs.Search.Initiate(ctx, "Paris")
type Services struct {
	Weather      *WeatherService
	Notification *NotificationService
	QuickPicks   *QuickPickService
	Search       *SearchService
	startTime    time.Time
}

func New(cfg *config.Config, store interfaces.LastCityStore, presenter interfaces.Presenter, logger *zerolog.Logger, metricsCollector *metrics.Metrics) *Services {
	weatherService := NewWeatherService(&cfg.Weather, metricsCollector, logger)
	return NewWithSource(cfg, weatherService, store, presenter, logger, metricsCollector)
}

// NewWithSource wires the container around a caller supplied weather source
func NewWithSource(cfg *config.Config, source interfaces.WeatherSource, store interfaces.LastCityStore, presenter interfaces.Presenter, logger *zerolog.Logger, metricsCollector *metrics.Metrics) *Services {
	weatherService, ok := source.(*WeatherService)
	if !ok {
		weatherService = NewWeatherServiceWithSource(source, metricsCollector, logger)
	}

	notificationService := NewNotificationService(presenter, cfg.UI.ToastDuration, logger)
	quickPickService := NewQuickPickService(cfg.UI.QuickPicks)
	searchService := NewSearchService(
		weatherService,
		store,
		presenter,
		notificationService,
		quickPickService,
		metricsCollector,
		logger,
	)

	return &Services{
		Weather:      weatherService,
		Notification: notificationService,
		QuickPicks:   quickPickService,
		Search:       searchService,
		startTime:    time.Now(),
	}
}

// Uptime returns how long the services have been running
func (s *Services) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Stop cancels pending timers
func (s *Services) Stop() {
	s.Notification.Stop()
}
