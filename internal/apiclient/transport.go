// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/metrics"
)

// TransportWrapper decorates the client's round tripper.
type TransportWrapper func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RateLimited throttles outgoing requests to rps with the given burst.
// A request waiting for a token gives up when its context is done.
func RateLimited(rps float64, burst int) TransportWrapper {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			r := limiter.Reserve()
			if !r.OK() {
				return nil, fmt.Errorf("rate limit: burst %d exceeded", burst)
			}
			if delay := r.Delay(); delay > 0 {
				metrics.RateLimitWaits.Inc()
				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-req.Context().Done():
					timer.Stop()
					r.Cancel()
					if req.Body != nil {
						_ = req.Body.Close()
					}
					return nil, req.Context().Err()
				}
			}
			return next.RoundTrip(req)
		})
	}
}

// BreakerConfig configures CircuitBreaker.
type BreakerConfig struct {
	Name string

	// ConsecutiveFailures opens the circuit. Default 5.
	ConsecutiveFailures uint32

	// Timeout is how long the circuit stays open before probing. Default 1m.
	Timeout time.Duration
}

var errServerFailure = errors.New("server error")

// CircuitBreaker fails fast once the backend keeps returning 5xx or
// transport errors. A 5xx response still reaches the normalizer so its
// message is extracted as usual; a rejected call fails with
// gobreaker.ErrOpenState.
func CircuitBreaker(cfg BreakerConfig) TransportWrapper {
	if cfg.Name == "" {
		cfg.Name = "geodash-api"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			var failed *http.Response
			resp, err := cb.Execute(func() (*http.Response, error) {
				resp, err := next.RoundTrip(req)
				if err != nil {
					return nil, err
				}
				if resp.StatusCode >= 500 {
					failed = resp
					return nil, errServerFailure
				}
				return resp, nil
			})

			switch {
			case failed != nil:
				metrics.CircuitBreakerRequests.WithLabelValues(cfg.Name, "failure").Inc()
				return failed, nil
			case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
				metrics.CircuitBreakerRequests.WithLabelValues(cfg.Name, "rejected").Inc()
				return nil, err
			case err != nil:
				metrics.CircuitBreakerRequests.WithLabelValues(cfg.Name, "failure").Inc()
				return nil, err
			}
			metrics.CircuitBreakerRequests.WithLabelValues(cfg.Name, "success").Inc()
			return resp, nil
		})
	}
}

// Traced records an OpenTelemetry client span for every request.
func Traced() TransportWrapper {
	return func(next http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(next)
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
