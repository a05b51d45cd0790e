// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

/*
Package logstream tails the backend's live log channel.

WebSocket Endpoint: ws://{origin}/ws?client_id=client_{8 hex}

The backend pushes one JSON frame per log line:

	{"time": "12:00:01", "level": "INFO", "module": "publisher", "message": "..."}

After any close or read error the client waits exactly ReconnectDelay and
dials again. The delay never grows and there is no retry cap; only context
cancellation stops the loop.
*/
package logstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/metrics"
)

// DefaultReconnectDelay is the fixed wait between connection attempts.
const DefaultReconnectDelay = 5 * time.Second

// Event is one backend log line.
type Event struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Module  string `json:"module,omitempty"`
	Message string `json:"message"`
}

// Handler receives events in arrival order on the client's goroutine.
type Handler func(Event)

// Config configures a Client.
type Config struct {
	// BaseURL is the API base URL; the stream lives at /ws on its host.
	BaseURL string

	// ClientID defaults to NewClientID().
	ClientID string

	ReconnectDelay   time.Duration
	HandshakeTimeout time.Duration
}

// Client is a reconnecting log stream consumer. It implements suture.Service.
type Client struct {
	url            string
	clientID       string
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	handler        Handler
	log            zerolog.Logger

	mu        sync.RWMutex
	connected bool
}

// NewClientID returns "client_" followed by 8 random hex characters.
func NewClientID() string {
	return "client_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// StreamURL derives the WebSocket URL from an http(s) API base URL.
func StreamURL(baseURL, clientID string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("base URL %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q: missing host", baseURL)
	}
	u.Path = "/ws"
	u.RawQuery = url.Values{"client_id": {clientID}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// New builds a Client. handler must not be nil.
func New(cfg Config, handler Handler) (*Client, error) {
	if handler == nil {
		return nil, errors.New("logstream: nil handler")
	}
	if cfg.ClientID == "" {
		cfg.ClientID = NewClientID()
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}

	wsURL, err := StreamURL(cfg.BaseURL, cfg.ClientID)
	if err != nil {
		return nil, err
	}

	return &Client{
		url:            wsURL,
		clientID:       cfg.ClientID,
		reconnectDelay: cfg.ReconnectDelay,
		dialer:         &websocket.Dialer{HandshakeTimeout: cfg.HandshakeTimeout},
		handler:        handler,
		log:            logging.WithComponent("logstream"),
	}, nil
}

// URL returns the stream URL including client_id.
func (c *Client) URL() string {
	return c.url
}

// Connected reports whether a connection is currently open.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Serve connects and reconnects until ctx is done. It implements
// suture.Service and only returns ctx.Err().
func (c *Client) Serve(ctx context.Context) error {
	for {
		err := c.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.log.Warn().Err(err).Dur("delay", c.reconnectDelay).Msg("Log stream disconnected, reconnecting")
		metrics.LogStreamReconnects.Inc()

		timer := time.NewTimer(c.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// String implements fmt.Stringer for suture logs.
func (c *Client) String() string {
	return "logstream"
}

// session runs one connection until it fails or ctx is done.
func (c *Client) session(ctx context.Context) error {
	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket dial failed (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("websocket dial failed: %w", err)
	}

	c.setConnected(true)
	c.log.Info().Str("client_id", c.clientID).Msg("Log stream connected")
	defer c.setConnected(false)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()
	defer func() { _ = conn.Close() }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("closed by server: %w", err)
			}
			return fmt.Errorf("read: %w", err)
		}
		c.deliver(data)
	}
}

func (c *Client) deliver(data []byte) {
	ev, ok := parseEvent(data)
	if !ok {
		c.log.Debug().Int("bytes", len(data)).Msg("Skipping empty log frame")
		return
	}
	metrics.LogStreamEvents.WithLabelValues(normalizeLevel(ev.Level)).Inc()
	c.handler(ev)
}

// parseEvent decodes a frame. A frame that is not a JSON object is kept as
// the message of an info event.
func parseEvent(data []byte) (Event, bool) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Event{}, false
	}
	var ev Event
	if strings.HasPrefix(text, "{") && json.Unmarshal([]byte(text), &ev) == nil {
		if ev.Level == "" {
			ev.Level = "INFO"
		}
		return ev, true
	}
	return Event{Level: "INFO", Message: text}, true
}

// normalizeLevel bounds the level label set.
func normalizeLevel(level string) string {
	switch l := strings.ToLower(level); l {
	case "trace", "debug", "info", "success", "warning", "error", "critical":
		return l
	case "warn":
		return "warning"
	default:
		return "other"
	}
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
	metrics.SetLogStreamConnected(v)
}
