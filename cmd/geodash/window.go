// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
)

// windowFlags binds --days and --server-default.
type windowFlags struct {
	days          int
	serverDefault bool
}

func (w *windowFlags) bind(cmd *cobra.Command, facadeDefault int) {
	cmd.Flags().IntVar(&w.days, "days", facadeDefault, "Day window")
	cmd.Flags().BoolVar(&w.serverDefault, "server-default", false, "Let the backend pick the day window")
}

// window maps the flags onto a dashboard.Window. An untouched --days keeps
// the facade default.
func (w *windowFlags) window(cmd *cobra.Command) (dashboard.Window, error) {
	changed := cmd.Flags().Changed("days")
	if w.serverDefault {
		if changed {
			return dashboard.Window{}, fmt.Errorf("--days and --server-default are mutually exclusive")
		}
		return dashboard.ServerDefault, nil
	}
	if !changed {
		return dashboard.Window{}, nil
	}
	if w.days <= 0 {
		return dashboard.Window{}, fmt.Errorf("--days must be positive, got %d", w.days)
	}
	return dashboard.Days(w.days), nil
}
