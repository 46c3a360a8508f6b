package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Clear any previously registered metrics
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	m := New()

	assert.NotNil(t, m)
	assert.Contains(t, m.counters, "weather_requests_total")
	assert.Contains(t, m.counters, "searches_total")
	assert.Contains(t, m.counters, "http_requests_total")

	assert.Contains(t, m.histograms, "weather_api_duration_seconds")
	assert.Contains(t, m.histograms, "http_request_duration_seconds")

	assert.Contains(t, m.gauges, "searches_in_flight")
}

func TestNew_RegisterTwice(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestMetrics_UnknownNamesDoNotPanic(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	m := New()

	assert.NotPanics(t, func() {
		m.IncrementCounter("nonexistent_counter", "test")
		m.ObserveHistogram("nonexistent_histogram", 1.0, "test")
		m.SetGauge("nonexistent_gauge", 1.0)
		m.AddGauge("nonexistent_gauge", 1.0)
	})
	assert.Equal(t, 0.0, m.CounterTotal("nonexistent_counter", "", ""))
}

func TestMetrics_SearchSuccessRate(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	m := New()

	t.Run("no searches yet", func(t *testing.T) {
		assert.Equal(t, 0.0, m.SearchSuccessRate())
	})

	t.Run("three of four succeeded", func(t *testing.T) {
		m.IncrementCounter("searches_total", "success")
		m.IncrementCounter("searches_total", "success")
		m.IncrementCounter("searches_total", "success")
		m.IncrementCounter("searches_total", "not_found")

		assert.Equal(t, 4.0, m.CounterTotal("searches_total", "", ""))
		assert.Equal(t, 1.0, m.CounterTotal("searches_total", "outcome", "not_found"))
		assert.InDelta(t, 75.0, m.SearchSuccessRate(), 0.001)
	})
}

func TestMetrics_GetAverageResponseTime(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	m := New()

	assert.Equal(t, 0.0, m.GetAverageResponseTime())

	m.ObserveHistogram("weather_api_duration_seconds", 0.1, "openweathermap")
	m.ObserveHistogram("weather_api_duration_seconds", 0.3, "openweathermap")

	assert.InDelta(t, 200.0, m.GetAverageResponseTime(), 0.001)
}

func TestMetrics_Handler(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	m := New()

	handler := m.Handler()
	assert.NotNil(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
