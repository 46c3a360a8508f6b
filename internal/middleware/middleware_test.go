package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/valpere/pohoda/pkg/metrics"
	"github.com/valpere/pohoda/tests/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewClientRateLimiter(t *testing.T) {
	limiter := NewClientRateLimiter(rate.Limit(10), 20)
	defer limiter.Stop()

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestClientRateLimiter_Allow(t *testing.T) {
	t.Run("allows within burst limit", func(t *testing.T) {
		limiter := NewClientRateLimiter(rate.Limit(1), 3)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("allows after waiting for rate limit recovery", func(t *testing.T) {
		limiter := NewClientRateLimiter(rate.Limit(10), 1)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.2"))
		assert.False(t, limiter.Allow("10.0.0.2"))

		// Wait for token to refill (100ms = 1/10 second)
		time.Sleep(150 * time.Millisecond)

		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("independent limiters per client", func(t *testing.T) {
		limiter := NewClientRateLimiter(rate.Limit(1), 1)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.False(t, limiter.Allow("10.0.0.3"))
		assert.True(t, limiter.Allow("10.0.0.4"))
	})

	t.Run("concurrent access creates one limiter", func(t *testing.T) {
		limiter := NewClientRateLimiter(rate.Limit(100), 50)
		defer limiter.Stop()

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 10; j++ {
					limiter.Allow("10.0.0.5")
				}
				done <- true
			}()
		}
		for i := 0; i < 10; i++ {
			<-done
		}

		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		assert.Len(t, limiter.limiters, 1)
	})
}

func TestClientRateLimiter_Cleanup(t *testing.T) {
	limiter := NewClientRateLimiter(rate.Limit(10), 5)
	defer limiter.Stop()

	limiter.Allow("old")
	limiter.mu.Lock()
	limiter.limiters["old"].lastAccess = time.Now().Add(-2 * time.Hour)
	limiter.mu.Unlock()
	limiter.Allow("fresh")

	limiter.cleanup(time.Now().Add(-1 * time.Hour))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	_, oldExists := limiter.limiters["old"]
	_, freshExists := limiter.limiters["fresh"]
	assert.False(t, oldExists)
	assert.True(t, freshExists)
}

func TestClientRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewClientRateLimiter(rate.Limit(10), 5)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)

	select {
	case <-limiter.stop:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("stop channel was not closed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewClientRateLimiter(rate.Limit(1), 1)
	defer limiter.Stop()

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "Rate limit exceeded")
}

func TestLoggingMiddleware(t *testing.T) {
	logs := helpers.NewTestLogger()
	m := metrics.New()

	router := gin.New()
	router.Use(Logging(logs.Logger, m))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	logs.AssertLogContains(t, "Request processed")
	logs.AssertLogContains(t, `"path":"/ok"`)
	logs.AssertLogContains(t, `"path":"unmatched"`)
	logs.AssertLogLevel(t, "warn")

	assert.Equal(t, float64(1), m.CounterTotal("http_requests_total", "path", "/ok"))
	assert.Equal(t, float64(1), m.CounterTotal("http_requests_total", "status", "400"))
	assert.Equal(t, float64(3), m.CounterTotal("http_requests_total", "", ""))
}

func TestRecoveryMiddleware(t *testing.T) {
	logs := helpers.NewTestLogger()

	router := gin.New()
	router.Use(Recovery(logs.Logger))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	logs.AssertLogContains(t, "Recovered from panic")
}
