// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import "testing"

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		transport string
		want      string
	}{
		{"detail", `{"detail":"a","message":"b"}`, "c", "a"},
		{"message", `{"message":"b"}`, "c", "b"},
		{"empty detail falls through", `{"detail":"","message":"b"}`, "c", "b"},
		{"transport", `{"code":17}`, "c", "c"},
		{"fallback", `{"code":17}`, "", FallbackMessage},
		{"malformed json", `{"detail":`, "", FallbackMessage},
		{"array body", `["detail"]`, "", FallbackMessage},
		{"null body", `null`, "timeout of 30000ms exceeded", "timeout of 30000ms exceeded"},
		{"no body", ``, "", FallbackMessage},
		{"numeric message", `{"message":42}`, "", FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkStringEqual(t, "message", ExtractMessage([]byte(tt.body), tt.transport), tt.want)
		})
	}
}
