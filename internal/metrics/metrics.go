// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

// Package metrics holds the Prometheus collectors for the API client, the
// circuit breaker, the log stream and the status poller.
//
// Collectors register on the default registry through promauto; serve them
// with promhttp.Handler().
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API client metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_api_requests_total",
			Help: "Total number of backend API requests by outcome",
		},
		[]string{"method", "endpoint", "status"}, // status: HTTP code or "error"
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geodash_api_request_duration_seconds",
			Help:    "Backend API request latency in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geodash_api_requests_in_flight",
			Help: "Backend API requests currently in flight",
		},
	)

	APINotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geodash_api_notifications_total",
			Help: "User-visible failure notifications emitted by the normalizer",
		},
	)

	APIDiagnosticDumps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geodash_api_diagnostic_dumps_total",
			Help: "Raw error dumps emitted for HTTP 500 responses",
		},
	)

	RateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geodash_api_rate_limit_waits_total",
			Help: "Requests delayed by the client-side rate limiter",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "geodash_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Log stream metrics
	LogStreamConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geodash_logstream_connected",
			Help: "Log stream WebSocket state (0=disconnected, 1=connected)",
		},
	)

	LogStreamEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_logstream_events_total",
			Help: "Log events received from the backend",
		},
		[]string{"level"},
	)

	LogStreamReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geodash_logstream_reconnects_total",
			Help: "Log stream reconnect attempts",
		},
	)

	// Status poller metrics
	PollerRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_monitor_refreshes_total",
			Help: "Overview refreshes by result",
		},
		[]string{"result"}, // success, failure
	)

	PollerLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geodash_monitor_last_success_timestamp",
			Help: "Unix timestamp of the last successful overview refresh",
		},
	)

	// Relay metrics
	RelayClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geodash_relay_clients",
			Help: "WebSocket clients subscribed to the local relay",
		},
	)

	RelayMessagesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geodash_relay_messages_dropped_total",
			Help: "Relay messages dropped because a buffer was full",
		},
		[]string{"reason"}, // hub_full, slow_client
	)
)

// RecordAPIRequest records one completed backend call. statusCode 0 means the
// request never produced an HTTP response.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPollerRefresh records an overview refresh.
func RecordPollerRefresh(err error) {
	if err != nil {
		PollerRefreshes.WithLabelValues("failure").Inc()
		return
	}
	PollerRefreshes.WithLabelValues("success").Inc()
	PollerLastSuccess.Set(float64(time.Now().Unix()))
}

// SetLogStreamConnected flips the log stream connection gauge.
func SetLogStreamConnected(connected bool) {
	if connected {
		LogStreamConnected.Set(1)
		return
	}
	LogStreamConnected.Set(0)
}
