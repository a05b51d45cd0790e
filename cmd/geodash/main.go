// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

// Command geodash is a terminal client for the GEO content-operations backend.
//
//	geodash projects list
//	geodash articles generate --keyword 12 --platform zhihu
//	geodash reports trends --days 7
//	geodash watch --listen 127.0.0.1:9464
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tomtom215/geodash/internal/apiclient"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if shouldPrintError(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// shouldPrintError is false for API failures, which the notifier already
// reported once.
func shouldPrintError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *apiclient.Error
	return !errors.As(err, &apiErr)
}
