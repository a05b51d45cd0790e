// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package logstream

import "sync"

// Recent keeps the last N events for late readers such as the status
// endpoint. It is safe for concurrent use.
type Recent struct {
	mu     sync.RWMutex
	events []Event
	next   int
	full   bool
}

// NewRecent returns a buffer holding up to size events.
func NewRecent(size int) *Recent {
	if size < 1 {
		size = 1
	}
	return &Recent{events: make([]Event, size)}
}

// Add stores ev, evicting the oldest event when full. Its signature matches
// Handler so it can be chained.
func (r *Recent) Add(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[r.next] = ev
	r.next = (r.next + 1) % len(r.events)
	if r.next == 0 {
		r.full = true
	}
}

// Snapshot returns the buffered events, oldest first.
func (r *Recent) Snapshot() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.full {
		return append([]Event(nil), r.events[:r.next]...)
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	return append(out, r.events[:r.next]...)
}

// Tee returns a Handler that records into r before calling next.
func (r *Recent) Tee(next Handler) Handler {
	return func(ev Event) {
		r.Add(ev)
		if next != nil {
			next(ev)
		}
	}
}
