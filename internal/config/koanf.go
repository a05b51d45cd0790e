// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/validation"
)

// DefaultConfigPaths are searched in order when no explicit path is given.
var DefaultConfigPaths = []string{
	"geodash.yaml",
	"geodash.yml",
	"/etc/geodash/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is merged into the environment before env vars are read.
const DotEnvFile = ".env"

// Defaults that other packages reference.
const (
	DefaultBaseURL         = "/api"
	DefaultOrigin          = "http://127.0.0.1:8001"
	DefaultTimeout         = 30 * time.Second
	DefaultGenerateTimeout = 5 * time.Minute
	DefaultReconnectDelay  = 5 * time.Second
)

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:         DefaultBaseURL,
			Origin:          DefaultOrigin,
			Timeout:         DefaultTimeout,
			GenerateTimeout: DefaultGenerateTimeout,
			UserAgent:       "geodash/1.0",
		},
		Resilience: ResilienceConfig{
			RateLimitRPS:   0,
			RateLimitBurst: 5,
			CircuitBreaker: false,
			BreakerTimeout: time.Minute,
		},
		LogStream: LogStreamConfig{
			Enabled:        true,
			ReconnectDelay: DefaultReconnectDelay,
		},
		Monitor: MonitorConfig{
			Interval: 10 * time.Second,
		},
		Server: ServerConfig{
			RateLimit:       120,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		logging.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks struct rules and cross-field constraints.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	if c.API.GenerateTimeout < c.API.Timeout {
		return fmt.Errorf("api.generate_timeout (%s) must not be shorter than api.timeout (%s)",
			c.API.GenerateTimeout, c.API.Timeout)
	}
	return nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// findConfigFile returns "" when no file is configured or found. An explicit
// path that does not exist is an error; the search paths are best effort.
func findConfigFile(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

var envMappings = map[string]string{
	"geodash_api_base_url":              "api.base_url",
	"geodash_api_origin":                "api.origin",
	"geodash_api_timeout":               "api.timeout",
	"geodash_api_generate_timeout":      "api.generate_timeout",
	"geodash_api_user_agent":            "api.user_agent",
	"geodash_api_token":                 "api.auth_token",
	"geodash_rate_limit_rps":            "resilience.rate_limit_rps",
	"geodash_rate_limit_burst":          "resilience.rate_limit_burst",
	"geodash_circuit_breaker":           "resilience.circuit_breaker",
	"geodash_breaker_timeout":           "resilience.breaker_timeout",
	"geodash_tracing_enabled":           "tracing.enabled",
	"geodash_logstream_enabled":         "logstream.enabled",
	"geodash_logstream_reconnect_delay": "logstream.reconnect_delay",
	"geodash_monitor_interval":          "monitor.interval",
	"geodash_server_listen":             "server.listen",
	"geodash_server_rate_limit":         "server.rate_limit",
	"log_level":                         "logging.level",
	"log_format":                        "logging.format",
	"log_caller":                        "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths. Unknown
// names return "" and are ignored.
//
//	GEODASH_API_TIMEOUT -> api.timeout
//	VITE_API_BASE_URL   -> api.base_url (only when GEODASH_API_BASE_URL is unset)
func envTransformFunc(key string) string {
	lower := strings.ToLower(key)
	if lower == "vite_api_base_url" {
		if os.Getenv("GEODASH_API_BASE_URL") != "" {
			return ""
		}
		return "api.base_url"
	}
	return envMappings[lower]
}

// Setting is one effective configuration value.
type Setting struct {
	Key   string
	Value string
}

var secretKeys = map[string]bool{
	"api.auth_token": true,
}

// Effective flattens c into sorted koanf keys. Secrets are masked.
func (c *Config) Effective() ([]Setting, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(c, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to flatten configuration: %w", err)
	}
	keys := k.Keys()
	sort.Strings(keys)

	settings := make([]Setting, 0, len(keys))
	for _, key := range keys {
		value := fmt.Sprint(k.Get(key))
		if secretKeys[key] && value != "" {
			value = "********"
		}
		settings = append(settings, Setting{Key: key, Value: value})
	}
	return settings, nil
}
