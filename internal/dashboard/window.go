// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"net/url"
	"strconv"
)

// Window selects the day range of a trend or leaderboard read. The zero
// value sends the facade's default, Days(n) sends n, and ServerDefault sends
// no days parameter at all.
type Window struct {
	days int
	omit bool
}

// Days requests an explicit n-day window.
func Days(n int) Window {
	return Window{days: n}
}

// ServerDefault leaves the day window to the backend.
var ServerDefault = Window{omit: true}

func (w Window) apply(q url.Values, facadeDefault int) url.Values {
	if w.omit {
		return q
	}
	if q == nil {
		q = url.Values{}
	}
	days := facadeDefault
	if w.days > 0 {
		days = w.days
	}
	q.Set("days", strconv.Itoa(days))
	return q
}

// String describes w for logs and CLI output.
func (w Window) String() string {
	switch {
	case w.omit:
		return "server default"
	case w.days > 0:
		return strconv.Itoa(w.days) + "d"
	default:
		return "facade default"
	}
}
