// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Error is the single rejection shape for every failed call.
type Error struct {
	// StatusCode is zero when no response was received.
	StatusCode int

	// Message is the human-readable text that was also sent to the Notifier.
	Message string

	Method string
	URL    string

	// Body is the raw response body, nil without a response.
	Body json.RawMessage

	// Err is the original failure: a transport error, a context error,
	// or a *StatusError.
	Err error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusError is the original error for a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == 404
}
