// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geodash/internal/metrics"
)

const (
	// DefaultBaseURL is used when Config.BaseURL is empty.
	DefaultBaseURL = "/api"

	// DefaultOrigin resolves a path-only base URL.
	DefaultOrigin = "http://127.0.0.1:8001"

	// DefaultTimeout bounds every call without a per-call override.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "geodash/1.0"
)

// Config holds the process-wide client settings.
type Config struct {
	BaseURL   string
	Origin    string
	Timeout   time.Duration
	UserAgent string
}

// Client issues requests against the backend API. It is immutable after New
// and safe for concurrent use.
type Client struct {
	baseURL       *url.URL
	timeout       time.Duration
	userAgent     string
	httpClient    *http.Client
	wrappers      []TransportWrapper
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	notifier      Notifier
	diagnostics   DiagnosticSink
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Its Timeout should be zero;
// call deadlines are enforced through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRequestHook appends an outgoing-request transform.
func WithRequestHook(h RequestHook) Option {
	return func(c *Client) {
		if h != nil {
			c.requestHooks = append(c.requestHooks, h)
		}
	}
}

// WithResponseHook appends an observer for every HTTP response received.
func WithResponseHook(h ResponseHook) Option {
	return func(c *Client) {
		if h != nil {
			c.responseHooks = append(c.responseHooks, h)
		}
	}
}

// WithNotifier replaces the default log notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithDiagnostics replaces the default diagnostic sink for HTTP 500 dumps.
func WithDiagnostics(d DiagnosticSink) Option {
	return func(c *Client) {
		if d != nil {
			c.diagnostics = d
		}
	}
}

// WithTransport wraps the HTTP transport. The first wrapper is outermost.
func WithTransport(wrappers ...TransportWrapper) Option {
	return func(c *Client) {
		c.wrappers = append(c.wrappers, wrappers...)
	}
}

// New builds a Client. An empty BaseURL falls back to /api; a path-only base
// is resolved against Origin.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := resolveBaseURL(cfg.BaseURL, cfg.Origin)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:     base,
		timeout:     cfg.Timeout,
		userAgent:   cfg.UserAgent,
		httpClient:  &http.Client{},
		notifier:    LogNotifier{},
		diagnostics: LogDiagnostics{},
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.wrappers) > 0 {
		rt := c.httpClient.Transport
		if rt == nil {
			rt = http.DefaultTransport
		}
		for i := len(c.wrappers) - 1; i >= 0; i-- {
			rt = c.wrappers[i](rt)
		}
		hc := *c.httpClient
		hc.Transport = rt
		c.httpClient = &hc
	}

	return c, nil
}

func resolveBaseURL(base, origin string) (*url.URL, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultBaseURL
	}
	if strings.HasPrefix(base, "/") {
		if origin == "" {
			origin = DefaultOrigin
		}
		base = strings.TrimSuffix(origin, "/") + base
	}

	u, err := url.Parse(strings.TrimSuffix(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", base)
	}
	return u, nil
}

// BaseURL returns the resolved absolute base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Timeout returns the default per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get issues a GET with query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values, opts ...CallOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodGet, path, query, nil, opts))
}

// Delete issues a DELETE with query parameters. It never sends a body.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, opts ...CallOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodDelete, path, query, nil, opts))
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodPost, path, nil, body, opts))
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (json.RawMessage, error) {
	return c.Do(ctx, newRequest(http.MethodPut, path, nil, body, opts))
}

// Do executes req through the hook pipeline and the normalizer. It returns
// either the response body or an *Error, never both.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := endpointLabel(req.Path)
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	start := time.Now()

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		metrics.RecordAPIRequest(req.Method, endpoint, 0, time.Since(start))
		return nil, c.reject(ctx, req, nil, nil, err)
	}
	for _, hook := range c.requestHooks {
		if err := hook(httpReq); err != nil {
			metrics.RecordAPIRequest(req.Method, endpoint, 0, time.Since(start))
			return nil, c.reject(ctx, req, httpReq.URL, nil, fmt.Errorf("request hook: %w", err))
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordAPIRequest(req.Method, endpoint, 0, time.Since(start))
		return nil, c.reject(ctx, req, httpReq.URL, nil, err)
	}
	defer func() { _ = resp.Body.Close() }()

	for _, hook := range c.responseHooks {
		hook(resp)
	}

	body, err := io.ReadAll(resp.Body)
	metrics.RecordAPIRequest(req.Method, endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, c.reject(ctx, req, httpReq.URL, nil, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.reject(ctx, req, httpReq.URL, &statusFailure{code: resp.StatusCode, body: body},
			&StatusError{StatusCode: resp.StatusCode, Status: resp.Status})
	}

	return payload(body), nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := *c.baseURL
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u.Path = c.baseURL.Path + path
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader = http.NoBody
	if req.Body != nil && req.Method != http.MethodGet && req.Method != http.MethodDelete {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	return httpReq, nil
}

// payload returns the body verbatim; an empty body becomes JSON null.
func payload(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(trimmed)
}

// endpointLabel collapses numeric path segments so metric cardinality stays
// bounded: /geo/articles/42/check-index -> /geo/articles/:id/check-index.
func endpointLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && isIdentifier(p) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isIdentifier(segment string) bool {
	digits := true
	for _, r := range segment {
		if r < '0' || r > '9' {
			digits = false
			break
		}
	}
	if digits {
		return true
	}
	// uuid-shaped task IDs
	return len(segment) == 36 && strings.Count(segment, "-") == 4
}
