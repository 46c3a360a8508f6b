package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

type Metrics struct {
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}

	m.counters["weather_requests_total"] = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_requests_total",
			Help: "Total number of weather API requests",
		},
		[]string{"api", "status"},
	)

	m.counters["searches_total"] = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searches_total",
			Help: "Total number of city searches by outcome",
		},
		[]string{"outcome"},
	)

	m.counters["http_requests_total"] = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP API requests",
		},
		[]string{"path", "status"},
	)

	m.histograms["weather_api_duration_seconds"] = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_api_duration_seconds",
			Help:    "Duration of weather API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api"},
	)

	m.histograms["http_request_duration_seconds"] = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	m.gauges["searches_in_flight"] = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "searches_in_flight",
			Help: "Number of searches awaiting the weather API",
		},
		[]string{},
	)

	// Register all metrics (gracefully handle already registered metrics)
	for _, counter := range m.counters {
		register(counter)
	}
	for _, histogram := range m.histograms {
		register(histogram)
	}
	for _, gauge := range m.gauges {
		register(gauge)
	}

	return m
}

func register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		// Metric already registered, this is OK in tests
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			panic(err)
		}
	}
}

func (m *Metrics) IncrementCounter(name string, labelValues ...string) {
	if counter, exists := m.counters[name]; exists {
		counter.WithLabelValues(labelValues...).Inc()
	}
}

func (m *Metrics) ObserveHistogram(name string, value float64, labelValues ...string) {
	if histogram, exists := m.histograms[name]; exists {
		histogram.WithLabelValues(labelValues...).Observe(value)
	}
}

func (m *Metrics) SetGauge(name string, value float64, labelValues ...string) {
	if gauge, exists := m.gauges[name]; exists {
		gauge.WithLabelValues(labelValues...).Set(value)
	}
}

func (m *Metrics) AddGauge(name string, delta float64, labelValues ...string) {
	if gauge, exists := m.gauges[name]; exists {
		gauge.WithLabelValues(labelValues...).Add(delta)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// CounterTotal sums a counter across every label set whose label matches
// the given value. An empty label name sums all series.
func (m *Metrics) CounterTotal(name, labelName, labelValue string) float64 {
	counter, exists := m.counters[name]
	if !exists {
		return 0
	}

	metricChan := make(chan prometheus.Metric, 16)
	go func() {
		counter.Collect(metricChan)
		close(metricChan)
	}()

	var total float64
	for metric := range metricChan {
		dtoMetric := &dto.Metric{}
		if err := metric.Write(dtoMetric); err != nil || dtoMetric.Counter == nil {
			continue
		}
		if labelName == "" || hasLabel(dtoMetric, labelName, labelValue) {
			total += dtoMetric.Counter.GetValue()
		}
	}

	return total
}

// SearchSuccessRate returns the percentage (0-100) of searches that succeeded
func (m *Metrics) SearchSuccessRate() float64 {
	total := m.CounterTotal("searches_total", "", "")
	if total == 0 {
		return 0
	}
	return m.CounterTotal("searches_total", "outcome", "success") / total * 100.0
}

// GetAverageResponseTime calculates the average weather API latency in milliseconds
func (m *Metrics) GetAverageResponseTime() float64 {
	histogram, exists := m.histograms["weather_api_duration_seconds"]
	if !exists {
		return 0
	}

	metricChan := make(chan prometheus.Metric, 10)
	go func() {
		histogram.Collect(metricChan)
		close(metricChan)
	}()

	var totalSum float64
	var totalCount uint64

	for metric := range metricChan {
		dtoMetric := &dto.Metric{}
		if err := metric.Write(dtoMetric); err != nil {
			continue
		}
		if dtoMetric.Histogram != nil {
			totalSum += dtoMetric.Histogram.GetSampleSum()
			totalCount += dtoMetric.Histogram.GetSampleCount()
		}
	}

	if totalCount > 0 {
		return totalSum / float64(totalCount) * 1000.0
	}
	return 0
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, label := range metric.Label {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
