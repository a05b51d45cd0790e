// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the status routes.
//
//	GET /metrics         Prometheus exposition
//	GET /healthz         liveness
//	GET /api/status      overview snapshot and stream state
//	GET /api/logs        recent log events, oldest first
//	GET /api/ws          live log and overview relay (WebSocket)
func NewRouter(h *Handler, cfg MiddlewareConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(cfg))
		r.Get("/status", h.Status)
		r.Get("/logs", h.Logs)
		r.Get("/ws", h.Relay)
	})

	return r
}
