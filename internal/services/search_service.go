package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/pkg/metrics"
	"github.com/valpere/pohoda/pkg/weather"
)

// ErrSuperseded is returned by a search whose outcome was discarded because
// a newer search started while it was in flight.
var ErrSuperseded = errors.New("search superseded by a newer one")

const successToastPrefix = "Weather updated for "

// SearchService drives the lifecycle of a city search and pushes every view
// transition to the presenter. It is safe for concurrent use; only the most
// recently initiated search is allowed to change state.
type SearchService struct {
	source     interfaces.WeatherSource
	store      interfaces.LastCityStore
	presenter  interfaces.Presenter
	notifier   *NotificationService
	quickPicks *QuickPickService
	metrics    *metrics.Metrics
	logger     *zerolog.Logger

	mu    sync.Mutex
	state models.SearchState
}

func NewSearchService(
	source interfaces.WeatherSource,
	store interfaces.LastCityStore,
	presenter interfaces.Presenter,
	notifier *NotificationService,
	quickPicks *QuickPickService,
	metricsCollector *metrics.Metrics,
	logger *zerolog.Logger,
) *SearchService {
	return &SearchService{
		source:     source,
		store:      store,
		presenter:  presenter,
		notifier:   notifier,
		quickPicks: quickPicks,
		metrics:    metricsCollector,
		logger:     logger,
	}
}

// Initiate searches for a city. Blank input is ignored without any request
// or view change.
func (s *SearchService) Initiate(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}

	seq := s.begin(city)
	logger := s.logger.With().
		Str("search_id", ulid.Make().String()).
		Str("city", city).
		Uint64("seq", seq).
		Logger()

	s.metrics.AddGauge("searches_in_flight", 1)
	defer s.metrics.AddGauge("searches_in_flight", -1)
	defer s.finish(seq)

	logger.Debug().Msg("Search started")

	reading, err := s.fetch(ctx, city)
	if err != nil {
		return s.fail(ctx, seq, err, &logger)
	}
	return s.succeed(ctx, seq, city, reading, &logger)
}

// RetryLast repeats the search for the last successfully searched city
func (s *SearchService) RetryLast(ctx context.Context) error {
	s.mu.Lock()
	city := s.state.LastCity
	s.mu.Unlock()

	if city == "" {
		return nil
	}
	return s.Initiate(ctx, city)
}

// RestoreOnStartup searches for the persisted city, or offers the quick
// picks when nothing was saved.
func (s *SearchService) RestoreOnStartup(ctx context.Context) error {
	city, ok, err := s.store.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read last searched city")
		ok = false
	}
	city = strings.TrimSpace(city)

	if !ok || city == "" {
		s.presenter.ShowQuickPicks(s.quickPicks.List())
		return nil
	}

	s.mu.Lock()
	s.state.LastCity = city
	s.mu.Unlock()

	s.logger.Info().Str("city", city).Msg("Restoring last searched city")
	s.presenter.Prefill(city)

	return s.Initiate(ctx, city)
}

// SelectQuickPick searches for a preset city
func (s *SearchService) SelectQuickPick(ctx context.Context, city string) error {
	return s.Initiate(ctx, city)
}

func (s *SearchService) QuickPicks() []string {
	return s.quickPicks.List()
}

func (s *SearchService) Suggest(city string) (string, bool) {
	return s.quickPicks.Suggest(city)
}

// DismissToast hides the visible toast before its timer runs out
func (s *SearchService) DismissToast() {
	s.notifier.Dismiss()
}

// State returns a copy of the current search state
func (s *SearchService) State() models.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.Reading != nil {
		reading := *state.Reading
		state.Reading = &reading
	}
	return state
}

func (s *SearchService) begin(city string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sequence++
	s.state.Phase = models.PhaseLoading
	s.state.Query = city
	s.state.ErrorMessage = ""
	s.state.Reading = nil

	s.presenter.ShowLoading(true)
	s.presenter.HideAll()

	return s.state.Sequence
}

// finish turns the loading indicator off unless a newer search owns it
func (s *SearchService) finish(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Sequence != seq {
		return
	}
	if s.state.Phase == models.PhaseLoading {
		// reached only when the outcome handler itself panicked
		s.state.Phase = models.PhaseError
		s.state.ErrorMessage = weather.MsgMalformed
	}
	s.presenter.ShowLoading(false)
}

func (s *SearchService) fetch(ctx context.Context, city string) (reading *weather.Reading, err error) {
	payload, err := s.source.GetCurrentWeatherByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			reading = nil
			err = fmt.Errorf("%w: panic during normalization: %v", weather.ErrMalformedResponse, r)
		}
	}()

	return weather.Normalize(payload)
}

func (s *SearchService) succeed(ctx context.Context, seq uint64, city string, reading *weather.Reading, logger *zerolog.Logger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Sequence != seq {
		return s.discardLocked(logger)
	}

	s.state.Phase = models.PhaseSuccess
	s.state.Reading = reading
	s.state.LastCity = city
	s.state.LastUpdatedAt = time.Now()

	s.persist(ctx, city, logger)

	s.presenter.ShowWeather(*reading)
	s.notifier.Notify(successToastPrefix+reading.Location(), models.ToastSuccess)

	s.metrics.IncrementCounter("searches_total", "success")
	logger.Info().
		Str("location", reading.Location()).
		Int("temperature", reading.Temperature).
		Str("condition", reading.Condition).
		Msg("Search succeeded")

	return nil
}

func (s *SearchService) fail(ctx context.Context, seq uint64, err error, logger *zerolog.Logger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Sequence != seq {
		return s.discardLocked(logger)
	}

	message := weather.UserMessage(err)
	s.state.Phase = models.PhaseError
	s.state.ErrorMessage = message
	s.state.LastUpdatedAt = time.Now()

	s.presenter.ShowError(message, s.state.LastCity != "")
	s.notifier.Notify(message, models.ToastError)

	outcome := requestStatus(err)
	s.metrics.IncrementCounter("searches_total", outcome)
	logger.Warn().Err(err).Str("outcome", outcome).Msg("Search failed")

	return err
}

func (s *SearchService) discardLocked(logger *zerolog.Logger) error {
	s.metrics.IncrementCounter("searches_total", "superseded")
	logger.Debug().
		Uint64("current_seq", s.state.Sequence).
		Msg("Discarding outcome of superseded search")
	return ErrSuperseded
}

// persist saves the city; a failure leaves the search successful
func (s *SearchService) persist(ctx context.Context, city string, logger *zerolog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Panic while saving last searched city")
		}
	}()

	if err := s.store.Set(context.WithoutCancel(ctx), city); err != nil {
		logger.Error().Err(err).Msg("Failed to save last searched city")
	}
}
