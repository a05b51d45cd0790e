// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

/*
Package config loads GeoDash configuration.

Sources are layered with Koanf v2, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (--config flag, CONFIG_PATH, geodash.yaml, /etc/geodash/config.yaml)
 3. Environment variables, after a .env file in the working directory is merged
    into the process environment

The backend base URL follows the dashboard's build-time convention: it is read
from GEODASH_API_BASE_URL, or from VITE_API_BASE_URL when the former is unset,
and falls back to "/api".
*/
package config

import "time"

// Config is the root configuration.
type Config struct {
	API        APIConfig        `koanf:"api"`
	Resilience ResilienceConfig `koanf:"resilience"`
	Tracing    TracingConfig    `koanf:"tracing"`
	LogStream  LogStreamConfig  `koanf:"logstream"`
	Monitor    MonitorConfig    `koanf:"monitor"`
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// APIConfig configures the transport client.
type APIConfig struct {
	// BaseURL is either absolute (https://geo.example.com/api) or a path
	// resolved against Origin.
	BaseURL string `koanf:"base_url" validate:"required,baseurl"`

	// Origin is the scheme://host[:port] used when BaseURL is a path.
	Origin string `koanf:"origin" validate:"required,url"`

	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	GenerateTimeout time.Duration `koanf:"generate_timeout" validate:"gt=0"`
	UserAgent       string        `koanf:"user_agent"`

	// AuthToken, when set, is injected as a bearer token by a request hook.
	AuthToken string `koanf:"auth_token"`
}

// ResilienceConfig enables optional round-tripper wrappers.
type ResilienceConfig struct {
	// RateLimitRPS of 0 disables client-side rate limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"gte=0"`

	CircuitBreaker bool          `koanf:"circuit_breaker"`
	BreakerTimeout time.Duration `koanf:"breaker_timeout" validate:"gte=0"`
}

// TracingConfig toggles OpenTelemetry HTTP client instrumentation.
type TracingConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LogStreamConfig configures the WebSocket log tail.
type LogStreamConfig struct {
	Enabled        bool          `koanf:"enabled"`
	ReconnectDelay time.Duration `koanf:"reconnect_delay" validate:"gt=0"`
}

// MonitorConfig configures the overview poller.
type MonitorConfig struct {
	Interval time.Duration `koanf:"interval" validate:"gt=0"`
}

// ServerConfig configures the status server run in watch mode. It serves
// /metrics, the latest overview snapshot, and recent log events.
type ServerConfig struct {
	// Listen is host:port; empty disables the server.
	Listen string `koanf:"listen" validate:"omitempty,hostname_port"`

	// CORSOrigins lists browser origins allowed to read the status API. "*"
	// allows any origin.
	CORSOrigins []string `koanf:"cors_origins" validate:"dive,required"`

	// RateLimit is requests per minute per client IP; 0 disables it.
	RateLimit int `koanf:"rate_limit" validate:"gte=0"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
