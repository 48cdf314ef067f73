package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by the pipeline.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	authFailures *prometheus.CounterVec
}

// NewMetrics creates the pipeline collectors and registers them with
// registry.
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oriole",
			Name:      "http_requests_total",
			Help:      "Count of all HTTP requests.",
		}, []string{"code", "method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "oriole",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oriole",
			Name:      "auth_failures_total",
			Help:      "Count of requests rejected by the authentication gate.",
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.authFailures} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("error registering Prometheus HTTP metrics: %w", err)
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.With(prometheus.Labels{"code": strconv.Itoa(code), "method": method}).Inc()
	m.duration.With(prometheus.Labels{"method": method}).Observe(d.Seconds())
}

func (m *Metrics) authFailed(reason string) {
	if m == nil {
		return
	}
	m.authFailures.With(prometheus.Labels{"reason": reason}).Inc()
}
