// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"net/http"

	"github.com/tomtom215/geodash/internal/logging"
)

// RequestHook transforms an outgoing request. Returning an error rejects the
// call without sending it.
type RequestHook func(req *http.Request) error

// ResponseHook observes every HTTP response before normalization.
type ResponseHook func(resp *http.Response)

// BearerToken sets the Authorization header from token. An empty token
// leaves the request untouched.
func BearerToken(token func() string) RequestHook {
	return func(req *http.Request) error {
		if token == nil {
			return nil
		}
		if t := token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
		return nil
	}
}

// CorrelationHeader is set by CorrelationID.
const CorrelationHeader = "X-Correlation-ID"

// CorrelationID forwards the correlation ID carried in the request context.
func CorrelationID() RequestHook {
	return func(req *http.Request) error {
		if id := logging.CorrelationIDFromContext(req.Context()); id != "" {
			req.Header.Set(CorrelationHeader, id)
		}
		return nil
	}
}

// LogResponses logs every response at debug level.
func LogResponses() ResponseHook {
	return func(resp *http.Response) {
		logging.Ctx(resp.Request.Context()).Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL.Redacted()).
			Int("status", resp.StatusCode).
			Msg("Response received")
	}
}
