// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

// Package dashboard maps every dashboard operation onto one backend call.
//
// Each facade is a fixed table of (method, path, parameter placement). None
// of them retry, cache, validate, or reload a list after a mutation; callers
// decide what to refresh. Errors are the *apiclient.Error values produced by
// the normalizer, which has already notified the user.
package dashboard

import (
	"context"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/apiclient"
)

// DefaultGenerateTimeout bounds article generation, a long-running backend
// operation.
const DefaultGenerateTimeout = 5 * time.Minute

// Caller is the subset of *apiclient.Client the facades use.
type Caller interface {
	Get(ctx context.Context, path string, query url.Values, opts ...apiclient.CallOption) (json.RawMessage, error)
	Delete(ctx context.Context, path string, query url.Values, opts ...apiclient.CallOption) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any, opts ...apiclient.CallOption) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any, opts ...apiclient.CallOption) (json.RawMessage, error)
}

// Services groups every facade over one shared client.
type Services struct {
	Accounts   *Accounts
	Keywords   *Keywords
	Articles   *Articles
	IndexCheck *IndexCheck
	Reports    *Reports
	Scheduler  *Scheduler
}

// Option configures Services.
type Option func(*options)

type options struct {
	generateTimeout time.Duration
}

// WithGenerateTimeout overrides DefaultGenerateTimeout.
func WithGenerateTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.generateTimeout = d
		}
	}
}

// New builds all facades on c.
func New(c Caller, opts ...Option) *Services {
	o := options{generateTimeout: DefaultGenerateTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	return &Services{
		Accounts:   &Accounts{c: c},
		Keywords:   &Keywords{c: c},
		Articles:   &Articles{c: c, generateTimeout: o.generateTimeout},
		IndexCheck: &IndexCheck{c: c},
		Reports:    &Reports{c: c},
		Scheduler:  &Scheduler{c: c},
	}
}
