// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package logstream

import "testing"

func TestRecentEvictsOldest(t *testing.T) {
	r := NewRecent(3)
	if got := r.Snapshot(); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %v", got)
	}

	for _, msg := range []string{"a", "b"} {
		r.Add(Event{Message: msg})
	}
	if got := r.Snapshot(); len(got) != 2 || got[0].Message != "a" || got[1].Message != "b" {
		t.Errorf("unexpected partial snapshot %v", got)
	}

	for _, msg := range []string{"c", "d", "e"} {
		r.Add(Event{Message: msg})
	}
	got := r.Snapshot()
	want := []string{"c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Message != w {
			t.Errorf("snapshot[%d]: expected %q, got %q", i, w, got[i].Message)
		}
	}
}
