// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package models

import "github.com/goccy/go-json"

// ActionResult is the {success, message, data} envelope returned by
// mutating endpoints (generate, check-quality, distill, delete, ...).
type ActionResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Record is an untyped JSON object. Accounts and scheduler jobs are passed
// through without a schema.
type Record = map[string]any
