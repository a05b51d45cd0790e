// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

/*
Package apiclient is the transport layer every GeoDash facade is built on.

A Client is constructed once with a base URL and default timeout and is then
shared, read-only, by every caller. Each call flows through a fixed pipeline:

	request hooks -> round-tripper wrappers -> HTTP -> response hooks -> normalizer

The normalizer runs on every call and produces exactly one outcome:

  - 2xx: the response body, verbatim, as json.RawMessage
  - anything else: an *Error whose Message is the first non-empty value of
    body.detail, body.message, the transport error text, or "request failed"

Every failure emits exactly one Notification. A status of exactly 500 also
dumps the raw error to the DiagnosticSink, asynchronously and without being
able to mask the returned error.

Verb helpers keep the dashboard's parameter placement: GET and DELETE take a
query bag, POST and PUT take a JSON body.

	c, err := apiclient.New(apiclient.Config{BaseURL: "/api"},
	    apiclient.WithRequestHook(apiclient.BearerToken(tokenFn)))
	raw, err := c.Get(ctx, "/reports/trends", url.Values{"days": {"30"}})
	raw, err = c.Post(ctx, "/geo/generate", body, apiclient.WithTimeout(5*time.Minute))

There is no retry and no cancellation primitive beyond ctx; a call is bounded
by its timeout.
*/
package apiclient
