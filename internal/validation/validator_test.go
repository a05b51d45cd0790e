// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type sampleAPI struct {
	BaseURL string        `koanf:"base_url" validate:"required,baseurl"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type sampleConfig struct {
	API   sampleAPI `koanf:"api"`
	Level string    `koanf:"level" validate:"oneof=debug info"`
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      sampleConfig
		wantFields []string
	}{
		{
			name:  "relative base url",
			input: sampleConfig{API: sampleAPI{BaseURL: "/api", Timeout: time.Second}, Level: "info"},
		},
		{
			name:  "absolute base url",
			input: sampleConfig{API: sampleAPI{BaseURL: "https://geo.example.com/api", Timeout: time.Second}, Level: "debug"},
		},
		{
			name:       "missing base url",
			input:      sampleConfig{API: sampleAPI{Timeout: time.Second}, Level: "info"},
			wantFields: []string{"api.base_url"},
		},
		{
			name:       "protocol relative url rejected",
			input:      sampleConfig{API: sampleAPI{BaseURL: "//evil.example.com", Timeout: time.Second}, Level: "info"},
			wantFields: []string{"api.base_url"},
		},
		{
			name:       "ftp scheme rejected and zero timeout",
			input:      sampleConfig{API: sampleAPI{BaseURL: "ftp://files.example.com"}, Level: "trace"},
			wantFields: []string{"api.base_url", "api.timeout", "level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %T (%v)", err, err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("expected %d field errors, got %d: %v", len(tt.wantFields), len(verr.Fields), verr)
			}
			for i, want := range tt.wantFields {
				if verr.Fields[i].Field != want {
					t.Errorf("field[%d] = %q, want %q", i, verr.Fields[i].Field, want)
				}
				if !strings.HasPrefix(verr.Fields[i].Message, want) {
					t.Errorf("message %q should start with %q", verr.Fields[i].Message, want)
				}
			}
		})
	}
}

func TestErrorMessageJoin(t *testing.T) {
	e := &Error{Fields: []FieldError{{Message: "a is required"}, {Message: "b must be greater than 0"}}}
	if got := e.Error(); got != "a is required; b must be greater than 0" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&Error{}).Error(); got != "validation failed" {
		t.Errorf("empty Error() = %q", got)
	}
}
