// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/metrics"
)

// FallbackMessage is used when no other message can be found.
const FallbackMessage = "request failed"

// messageProbes run in priority order against a decoded error body.
var messageProbes = []func(map[string]any) (string, bool){
	stringField("detail"),
	stringField("message"),
}

func stringField(name string) func(map[string]any) (string, bool) {
	return func(body map[string]any) (string, bool) {
		s, ok := body[name].(string)
		return s, ok && s != ""
	}
}

// ExtractMessage returns the first non-empty of body.detail, body.message,
// transportMsg, or FallbackMessage. Bodies that are not JSON objects, or that
// carry non-string fields, skip straight to transportMsg. It never panics.
func ExtractMessage(body []byte, transportMsg string) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = FallbackMessage
		}
	}()

	if len(body) > 0 {
		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err == nil {
			for _, probe := range messageProbes {
				if s, ok := probe(decoded); ok {
					return s
				}
			}
		}
	}
	if transportMsg != "" {
		return transportMsg
	}
	return FallbackMessage
}

type statusFailure struct {
	code int
	body []byte
}

// reject builds the *Error for a failed call, dumps diagnostics for a 500,
// and emits exactly one notification.
func (c *Client) reject(ctx context.Context, req Request, u *url.URL, status *statusFailure, cause error) error {
	apiErr := &Error{
		Method: req.Method,
		URL:    req.Path,
		Err:    cause,
	}
	if u != nil {
		apiErr.URL = u.String()
	}

	var body []byte
	if status != nil {
		apiErr.StatusCode = status.code
		body = status.body
		if len(body) > 0 {
			apiErr.Body = json.RawMessage(append([]byte(nil), body...))
		}
	}

	transportMsg := ""
	if cause != nil {
		transportMsg = cause.Error()
	}
	apiErr.Message = ExtractMessage(body, transportMsg)

	if apiErr.StatusCode == http.StatusInternalServerError {
		c.dumpDiagnostics(apiErr)
	}
	c.notify(ctx, apiErr)

	return apiErr
}

func (c *Client) dumpDiagnostics(apiErr *Error) {
	metrics.APIDiagnosticDumps.Inc()
	d := Diagnostic{
		Method:     apiErr.Method,
		URL:        apiErr.URL,
		StatusCode: apiErr.StatusCode,
		Body:       apiErr.Body,
		Err:        apiErr.Err,
	}
	sink := c.diagnostics
	go func() {
		defer func() { _ = recover() }()
		sink.Dump(d)
	}()
}

func (c *Client) notify(ctx context.Context, apiErr *Error) {
	metrics.APINotifications.Inc()
	defer func() { _ = recover() }()
	c.notifier.Notify(ctx, Notification{
		Level:      LevelError,
		Message:    apiErr.Message,
		StatusCode: apiErr.StatusCode,
		Method:     apiErr.Method,
		URL:        apiErr.URL,
	})
}
