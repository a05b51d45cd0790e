// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/logging"
)

// Level is the severity of a Notification.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is a fire-and-forget user-visible message. It is never
// retried or queued.
type Notification struct {
	Level      Level
	Message    string
	StatusCode int
	Method     string
	URL        string
}

// Notifier receives one Notification per failed call.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// LogNotifier writes notifications to the global logger.
type LogNotifier struct{}

// Notify logs n at warn level.
func (LogNotifier) Notify(ctx context.Context, n Notification) {
	logging.Ctx(ctx).Warn().
		Str("method", n.Method).
		Str("url", n.URL).
		Int("status", n.StatusCode).
		Msg(n.Message)
}

// Diagnostic is the raw failure dumped for HTTP 500 responses.
type Diagnostic struct {
	Method     string
	URL        string
	StatusCode int
	Body       json.RawMessage
	Err        error
}

// DiagnosticSink receives Diagnostic dumps. Dump runs on its own goroutine
// and a panic inside it is discarded.
type DiagnosticSink interface {
	Dump(d Diagnostic)
}

// DiagnosticFunc adapts a function to DiagnosticSink.
type DiagnosticFunc func(d Diagnostic)

// Dump calls f.
func (f DiagnosticFunc) Dump(d Diagnostic) {
	f(d)
}

// LogDiagnostics writes dumps to the global logger at error level.
type LogDiagnostics struct{}

// Dump logs d with the raw body.
func (LogDiagnostics) Dump(d Diagnostic) {
	event := logging.Error().
		Err(d.Err).
		Str("method", d.Method).
		Str("url", d.URL).
		Int("status", d.StatusCode)
	if len(d.Body) > 0 && json.Valid(d.Body) {
		event = event.RawJSON("body", d.Body)
	} else {
		event = event.Bytes("body", d.Body)
	}
	event.Msg("Server error")
}
