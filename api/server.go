// Package api exposes the search controller and its rendered view over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/middleware"
	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/internal/presenter"
	"github.com/valpere/pohoda/internal/services"
	"github.com/valpere/pohoda/internal/version"
	"github.com/valpere/pohoda/pkg/metrics"
	"github.com/valpere/pohoda/pkg/weather"
)

// Searcher is the controller surface the HTTP handlers drive
type Searcher interface {
	Initiate(ctx context.Context, city string) error
	RetryLast(ctx context.Context) error
	QuickPicks() []string
	Suggest(city string) (string, bool)
	State() models.SearchState
	DismissToast()
}

// ViewResponse is the rendered view plus the controller state behind it
type ViewResponse struct {
	presenter.Snapshot
	Phase      models.Phase `json:"phase"`
	Query      string       `json:"query,omitempty"`
	LastCity   string       `json:"last_city,omitempty"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	City string `json:"city"`
}

type Server struct {
	search    Searcher
	view      *presenter.View
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
	timeout   time.Duration
	limiter   *middleware.ClientRateLimiter
	startTime time.Time
}

func NewServer(cfg *config.ServerConfig, search Searcher, view *presenter.View, metricsCollector *metrics.Metrics, logger *zerolog.Logger) *Server {
	timeout := cfg.SearchTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}

	return &Server{
		search:    search,
		view:      view,
		metrics:   metricsCollector,
		logger:    logger,
		timeout:   timeout,
		limiter:   middleware.NewClientRateLimiter(limit, cfg.RateBurst),
		startTime: time.Now(),
	}
}

// Router builds the gin engine with all routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(s.logger))
	router.Use(middleware.Logging(s.logger, s.metrics))

	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	router.GET("/version", s.version)

	apiGroup := router.Group("/api")
	apiGroup.GET("/view", s.getView)
	apiGroup.GET("/quick-picks", s.quickPicks)
	apiGroup.GET("/stats", s.stats)
	apiGroup.DELETE("/toast", s.dismissToast)

	// only endpoints that reach the weather provider are rate limited
	limited := apiGroup.Group("", middleware.RateLimit(s.limiter))
	limited.POST("/search", s.postSearch)
	limited.POST("/retry", s.postRetry)

	return router
}

// Close releases background resources
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": version.Version,
		"time":    time.Now().Unix(),
	})
}

func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, version.GetInfo())
}

func (s *Server) getView(c *gin.Context) {
	c.JSON(http.StatusOK, s.render())
}

func (s *Server) quickPicks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.search.QuickPicks()})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"searches":             s.metrics.CounterTotal("searches_total", "", ""),
		"success_rate":         s.metrics.SearchSuccessRate(),
		"avg_response_time_ms": s.metrics.GetAverageResponseTime(),
		"uptime_seconds":       int64(time.Since(s.startTime).Seconds()),
	})
}

func (s *Server) dismissToast(c *gin.Context) {
	s.search.DismissToast()
	c.Status(http.StatusNoContent)
}

func (s *Server) postSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a city field"})
		return
	}

	s.runSearch(c, func(ctx context.Context) error { return s.search.Initiate(ctx, req.City) })
}

func (s *Server) postRetry(c *gin.Context) {
	s.runSearch(c, s.search.RetryLast)
}

func (s *Server) runSearch(c *gin.Context, search func(context.Context) error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	if err := search(ctx); err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			c.JSON(http.StatusConflict, s.render())
			return
		}
		s.logger.Debug().Err(err).Msg("Search finished with error")
	}

	c.JSON(http.StatusOK, s.render())
}

func (s *Server) render() ViewResponse {
	state := s.search.State()
	resp := ViewResponse{
		Snapshot: s.view.Snapshot(),
		Phase:    state.Phase,
		Query:    state.Query,
		LastCity: state.LastCity,
	}

	if state.Phase == models.PhaseError && state.ErrorMessage == weather.MsgNotFound {
		if suggestion, ok := s.search.Suggest(state.Query); ok && !strings.EqualFold(suggestion, state.Query) {
			resp.Suggestion = suggestion
		}
	}

	return resp
}
