// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/logstream"
	"github.com/tomtom215/geodash/internal/models"
	"github.com/tomtom215/geodash/internal/monitor"
)

type fixedSnapshot struct {
	snap monitor.Snapshot
	ok   bool
}

func (f fixedSnapshot) Latest() (monitor.Snapshot, bool) { return f.snap, f.ok }

type fixedState bool

func (f fixedState) Connected() bool { return bool(f) }

func newTestRouter(h *Handler, cfg MiddlewareConfig) http.Handler {
	return NewRouter(h, cfg)
}

func TestStatusEndpoint(t *testing.T) {
	h := &Handler{
		Snapshots: fixedSnapshot{snap: monitor.Snapshot{Overview: models.Overview{TotalProjects: 4, OverallHitRate: 37.5}}, ok: true},
		Stream:    fixedState(true),
		BaseURL:   "http://127.0.0.1:8001/api",
		StartedAt: time.Now().Add(-time.Minute),
	}
	router := newTestRouter(h, DefaultMiddlewareConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.StreamConnected {
		t.Error("expected stream_connected true")
	}
	if resp.Overview == nil || resp.Overview.Overview.TotalProjects != 4 {
		t.Errorf("unexpected overview %+v", resp.Overview)
	}
	if resp.BaseURL != h.BaseURL {
		t.Errorf("expected base url %q, got %q", h.BaseURL, resp.BaseURL)
	}
}

func TestStatusWithoutSnapshot(t *testing.T) {
	router := newTestRouter(&Handler{Snapshots: fixedSnapshot{}}, DefaultMiddlewareConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	if !strings.Contains(rec.Body.String(), `"overview":null`) {
		t.Errorf("expected null overview, got %s", rec.Body.String())
	}
}

func TestLogsEndpoint(t *testing.T) {
	recent := logstream.NewRecent(10)
	for _, msg := range []string{"one", "two", "three"} {
		recent.Add(logstream.Event{Level: "INFO", Message: msg})
	}
	router := newTestRouter(&Handler{Events: recent}, DefaultMiddlewareConfig())

	tests := []struct {
		query    string
		status   int
		messages []string
	}{
		{"", http.StatusOK, []string{"one", "two", "three"}},
		{"?limit=2", http.StatusOK, []string{"two", "three"}},
		{"?limit=10", http.StatusOK, []string{"one", "two", "three"}},
		{"?limit=-1", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs"+tt.query, nil))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.status != http.StatusOK {
				return
			}
			var events []logstream.Event
			if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(events) != len(tt.messages) {
				t.Fatalf("expected %d events, got %d", len(tt.messages), len(events))
			}
			for i, m := range tt.messages {
				if events[i].Message != m {
					t.Errorf("event %d: expected %q, got %q", i, m, events[i].Message)
				}
			}
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(&Handler{}, DefaultMiddlewareConfig())

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultMiddlewareConfig()
	cfg.RateLimitRequests = 2
	router := newTestRouter(&Handler{}, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
}

func TestCORS(t *testing.T) {
	cfg := DefaultMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://grafana.example.com"}
	router := newTestRouter(&Handler{}, cfg)

	tests := []struct {
		origin string
		want   string
	}{
		{"https://grafana.example.com", "https://grafana.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.Header.Set("Origin", tt.origin)
		router.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: expected allow-origin %q, got %q", tt.origin, tt.want, got)
		}
	}
}
