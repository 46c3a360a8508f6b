// Package app wires configuration, storage, presenters and the search
// controller into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/api"
	"github.com/valpere/pohoda/internal/bot"
	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/interfaces"
	"github.com/valpere/pohoda/internal/presenter"
	"github.com/valpere/pohoda/internal/services"
	"github.com/valpere/pohoda/internal/storage"
	"github.com/valpere/pohoda/internal/version"
	"github.com/valpere/pohoda/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

// App is the long running service: the HTTP view and, when a bot token is
// configured, the Telegram chat.
type App struct {
	config     *config.Config
	logger     zerolog.Logger
	closeStore func() error
	telegram   *bot.Telegram
	services   *services.Services
	api        *api.Server
	server     *http.Server
}

func New(cfg *config.Config) (*App, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New with the log destination supplied by the caller
func NewWithOutput(cfg *config.Config, logOutput io.Writer) (*App, error) {
	logger := NewLogger(&cfg.Logging, logOutput)
	metricsCollector := metrics.New()

	store, closeStore, err := storage.Open(cfg, &logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	view := presenter.NewView()
	presenters := []interfaces.Presenter{view}

	var telegram *bot.Telegram
	if cfg.Telegram.Token != "" {
		telegram, err = bot.NewTelegram(&cfg.Telegram, &logger)
		if err != nil {
			_ = closeStore()
			return nil, err
		}
		presenters = append(presenters, telegram)
	}

	svcs := services.New(cfg, store, presenter.NewMulti(presenters...), &logger, metricsCollector)
	if telegram != nil {
		telegram.Bind(svcs.Search)
	}

	gin.SetMode(gin.ReleaseMode)
	apiServer := api.NewServer(&cfg.Server, svcs.Search, view, metricsCollector, &logger)

	return &App{
		config:     cfg,
		logger:     logger,
		closeStore: closeStore,
		telegram:   telegram,
		services:   svcs,
		api:        apiServer,
		server: &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Server.Port),
			Handler:      apiServer.Router(),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: cfg.Server.SearchTimeout + 30*time.Second,
		},
	}, nil
}

// Handler returns the HTTP handler served by Start
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Search exposes the controller, mostly for tests and embedding
func (a *App) Search() *services.SearchService {
	return a.services.Search
}

// Start restores the last search, serves HTTP and polls Telegram until
// ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info().Str("version", version.Version).Msg("Starting Pohoda...")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	a.logger.Info().
		Int("port", a.config.Server.Port).
		Msg("HTTP server started")

	if err := a.services.Search.RestoreOnStartup(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("Restored search did not succeed")
	}

	if a.telegram != nil {
		go func() {
			if err := a.telegram.Run(ctx); err != nil {
				a.logger.Error().Err(err).Msg("Telegram polling stopped")
			}
		}()
	}

	a.logger.Info().Msg("Pohoda started successfully")

	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	}
}

// Stop shuts everything down in reverse start order
func (a *App) Stop() error {
	a.logger.Info().Msg("Stopping Pohoda...")

	if a.telegram != nil {
		a.telegram.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	a.api.Close()
	a.services.Stop()

	if err := a.closeStore(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	a.logger.Info().Msg("Pohoda stopped")
	return nil
}

// Lookup runs a single search and prints the result to out. An empty city
// restores the last searched city instead.
func Lookup(ctx context.Context, cfg *config.Config, city string, out io.Writer, logOutput io.Writer) error {
	logger := NewLogger(&cfg.Logging, logOutput)

	store, closeStore, err := storage.Open(cfg, &logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close storage")
		}
	}()

	svcs := services.New(cfg, store, presenter.NewTerminal(out), &logger, metrics.New())
	defer svcs.Stop()

	timeout := cfg.Server.SearchTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if city == "" {
		return svcs.Search.RestoreOnStartup(ctx)
	}
	return svcs.Search.Initiate(ctx, city)
}
