// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"net/http"
	"net/url"
	"time"
)

// Request describes one call. Verb helpers build a fresh Request for every
// call; it is never shared or reused.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Timeout overrides the client default for this call only.
	Timeout time.Duration

	// Header values replace the defaults key by key.
	Header http.Header
}

// CallOption adjusts a single Request.
type CallOption func(*Request)

// WithTimeout overrides the client timeout for one call.
//
//	c.Post(ctx, "/geo/generate", body, apiclient.WithTimeout(5*time.Minute))
func WithTimeout(d time.Duration) CallOption {
	return func(r *Request) {
		r.Timeout = d
	}
}

// WithHeader sets a header for one call, replacing any default.
func WithHeader(key, value string) CallOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set(key, value)
	}
}

func newRequest(method, path string, query url.Values, body any, opts []CallOption) Request {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	if len(query) > 0 {
		req.Query = cloneValues(query)
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
