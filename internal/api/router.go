package api

import (
	"net/http"

	"fleet-eta-service/internal/api/handlers"
	"fleet-eta-service/internal/clock"
	"fleet-eta-service/internal/metrics"
	"fleet-eta-service/internal/ports"
	"fleet-eta-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	deps services.Deps,
	notifier ports.Notifier,
	clk clock.Clock,
	m *metrics.Metrics,
	rateLimitPerSecond int,
) http.Handler {
	mux := http.NewServeMux()

	etaHandler := &handlers.EtaHandler{
		Deps:     deps,
		Notifier: notifier,
		Clock:    clk,
		Metrics:  m,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/eta", etaHandler.Compute)
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	var h http.Handler = mux
	h = metricsMiddleware(m, h)
	h = rateLimitMiddleware(rateLimitPerSecond, h)
	h = loggingMiddleware(h)
	h = requestIDMiddleware(h)

	return h
}
