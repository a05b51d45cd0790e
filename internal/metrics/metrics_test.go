// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantLabel  string
	}{
		{name: "success", statusCode: 200, wantLabel: "200"},
		{name: "server error", statusCode: 500, wantLabel: "500"},
		{name: "transport failure", statusCode: 0, wantLabel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues("GET", "/test/"+tt.name, tt.wantLabel)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest("GET", "/test/"+tt.name, tt.statusCode, 15*time.Millisecond)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("expected counter to increase by 1, got %v", got)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("expected in-flight delta 1, got %v", got)
	}
	TrackActiveRequest(false)
}

func TestRecordPollerRefresh(t *testing.T) {
	okBefore := testutil.ToFloat64(PollerRefreshes.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(PollerRefreshes.WithLabelValues("failure"))

	RecordPollerRefresh(nil)
	RecordPollerRefresh(errors.New("boom"))

	if got := testutil.ToFloat64(PollerRefreshes.WithLabelValues("success")) - okBefore; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PollerRefreshes.WithLabelValues("failure")) - failBefore; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}
	if testutil.ToFloat64(PollerLastSuccess) == 0 {
		t.Error("expected last success timestamp to be set")
	}
}

func TestSetLogStreamConnected(t *testing.T) {
	SetLogStreamConnected(true)
	if got := testutil.ToFloat64(LogStreamConnected); got != 1 {
		t.Errorf("connected gauge = %v, want 1", got)
	}
	SetLogStreamConnected(false)
	if got := testutil.ToFloat64(LogStreamConnected); got != 0 {
		t.Errorf("connected gauge = %v, want 0", got)
	}
}
