// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// listFields are probed in order when a list endpoint returns an object.
var listFields = []string{"data", "items", "records", "list"}

// ListOf normalizes a list response. A bare array is used as-is; an object
// with an array under data, items, records, or list yields that array;
// anything else, null included, is an empty list.
func ListOf[T any](raw json.RawMessage) ([]T, error) {
	arr := listPayload(raw)
	if arr == nil {
		return []T{}, nil
	}

	out := []T{}
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

func listPayload(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '[':
		return trimmed
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil
		}
		for _, field := range listFields {
			if v := bytes.TrimSpace(envelope[field]); len(v) > 0 && v[0] == '[' {
				return v
			}
		}
	}
	return nil
}

// decode reads a single object response.
func decode[T any](raw json.RawMessage) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %T: %w", out, err)
	}
	return &out, nil
}
