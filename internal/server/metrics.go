package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector tracks how the daemon is queried and how long state
// computation takes. Each collector owns its registry, so several servers
// can coexist in one process.
type MetricsCollector struct {
	registry *prometheus.Registry

	stateDuration  *prometheus.HistogramVec
	requestsTotal  *prometheus.CounterVec
	streamSessions prometheus.Gauge
	streamStates   prometheus.Counter
}

func NewMetricsCollector() *MetricsCollector {
	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		stateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "state_computation_duration_seconds",
				Help: "Time spent resolving a system state",
			},
			[]string{"endpoint"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requests_total",
				Help: "Total number of requests",
			},
			[]string{"endpoint", "status"},
		),
		streamSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "stream_sessions",
				Help: "Number of live state stream sessions",
			},
		),
		streamStates: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stream_states_total",
				Help: "Total states pushed over live streams",
			},
		),
	}

	m.registry.MustRegister(m.stateDuration)
	m.registry.MustRegister(m.requestsTotal)
	m.registry.MustRegister(m.streamSessions)
	m.registry.MustRegister(m.streamStates)

	return m
}

func (m *MetricsCollector) RecordRequest(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, http.StatusText(status)).Inc()
}

func (m *MetricsCollector) RecordStateComputation(endpoint string, duration time.Duration) {
	m.stateDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsCollector) StreamOpened() {
	m.streamSessions.Inc()
}

func (m *MetricsCollector) StreamClosed() {
	m.streamSessions.Dec()
}

func (m *MetricsCollector) RecordStreamedState() {
	m.streamStates.Inc()
}

// Handler returns the scrape endpoint for this collector's registry.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
