// Package metrics provides Prometheus metrics for the ETA service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus metrics and their registry.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RequestFailures     *prometheus.CounterVec
}

// New creates and registers all service metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eta_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	requestFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eta_request_failures_total",
			Help: "Failed itinerary computations by taxonomy kind",
		},
		[]string{"kind"},
	)

	registry.MustRegister(requestsTotal, requestDuration, requestFailures)

	return &Metrics{
		Registry:            registry,
		HTTPRequestsTotal:   requestsTotal,
		HTTPRequestDuration: requestDuration,
		RequestFailures:     requestFailures,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
