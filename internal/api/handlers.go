// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/logstream"
	"github.com/tomtom215/geodash/internal/monitor"
	ws "github.com/tomtom215/geodash/internal/websocket"
)

// SnapshotSource is satisfied by *monitor.Poller.
type SnapshotSource interface {
	Latest() (monitor.Snapshot, bool)
}

// EventSource is satisfied by *logstream.Recent.
type EventSource interface {
	Snapshot() []logstream.Event
}

// ConnectionState is satisfied by *logstream.Client.
type ConnectionState interface {
	Connected() bool
}

// Handler serves the status endpoints. Any source may be nil.
type Handler struct {
	Snapshots SnapshotSource
	Events    EventSource
	Stream    ConnectionState
	BaseURL   string
	StartedAt time.Time

	// Hub backs GET /api/ws; nil answers 503.
	Hub *ws.Hub

	// AllowedOrigins may open the relay from a browser.
	AllowedOrigins []string
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	BaseURL         string            `json:"base_url"`
	Uptime          string            `json:"uptime"`
	StreamConnected bool              `json:"stream_connected"`
	Overview        *monitor.Snapshot `json:"overview"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Status returns the latest overview and stream state.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	resp := StatusResponse{BaseURL: h.BaseURL}
	if !h.StartedAt.IsZero() {
		resp.Uptime = time.Since(h.StartedAt).Truncate(time.Second).String()
	}
	if h.Stream != nil {
		resp.StreamConnected = h.Stream.Connected()
	}
	if h.Snapshots != nil {
		if snap, ok := h.Snapshots.Latest(); ok {
			resp.Overview = &snap
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logs returns recent events. ?limit=N keeps the newest N.
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	events := []logstream.Event{}
	if h.Events != nil {
		events = h.Events.Snapshot()
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "limit must be a non-negative integer"})
			return
		}
		if limit < len(events) {
			events = events[len(events)-limit:]
		}
	}
	writeJSON(w, http.StatusOK, events)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("Failed to encode status response")
	}
}
