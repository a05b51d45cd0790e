// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/apiclient"
	"github.com/tomtom215/geodash/internal/config"
	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/telemetry"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	errOut io.Writer

	configOnce sync.Once
	config     *config.Config
	configErr  error

	servicesOnce sync.Once
	client       *apiclient.Client
	services     *dashboard.Services
	servicesErr  error

	shutdownTracing func(context.Context) error
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
		errOut:       os.Stderr,
	}
}

func (c *commandContext) setErrOutput(w io.Writer) {
	if w != nil {
		c.errOut = w
	}
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// ensureConfig loads configuration once and initializes logging from it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && *c.logLevelFlag != "" {
			if !logging.ValidLevel(*c.logLevelFlag) {
				c.configErr = fmt.Errorf("unknown log level %q", *c.logLevelFlag)
				return
			}
			cfg.Logging.Level = *c.logLevelFlag
		}
		logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Caller: cfg.Logging.Caller,
			Output: c.errOut,
		})
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureServices builds the API client and facades once.
func (c *commandContext) ensureServices() (*dashboard.Services, error) {
	c.servicesOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.servicesErr = err
			return
		}
		if cfg.Tracing.Enabled {
			shutdown, err := telemetry.InitTracer(telemetry.ServiceName, c.errOut)
			if err != nil {
				c.servicesErr = err
				return
			}
			c.shutdownTracing = shutdown
		}
		client, err := apiclient.New(apiclient.Config{
			BaseURL:   cfg.API.BaseURL,
			Origin:    cfg.API.Origin,
			Timeout:   cfg.API.Timeout,
			UserAgent: cfg.API.UserAgent,
		}, clientOptions(cfg, c.errOut)...)
		if err != nil {
			c.servicesErr = err
			return
		}
		c.client = client
		c.services = dashboard.New(client, dashboard.WithGenerateTimeout(cfg.API.GenerateTimeout))
	})
	return c.services, c.servicesErr
}

func (c *commandContext) withServices(fn func(*dashboard.Services) error) error {
	svc, err := c.ensureServices()
	if err != nil {
		return err
	}
	return fn(svc)
}

func (c *commandContext) close(ctx context.Context) error {
	if c.shutdownTracing == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown := c.shutdownTracing
	c.shutdownTracing = nil
	return shutdown(ctx)
}

// clientOptions maps configuration onto request hooks and transport
// wrappers. Tracing wraps outermost so rejected calls still get a span.
func clientOptions(cfg *config.Config, errOut io.Writer) []apiclient.Option {
	opts := []apiclient.Option{
		apiclient.WithNotifier(consoleNotifier{out: errOut}),
		apiclient.WithRequestHook(apiclient.CorrelationID()),
		apiclient.WithResponseHook(apiclient.LogResponses()),
	}
	if token := cfg.API.AuthToken; token != "" {
		opts = append(opts, apiclient.WithRequestHook(apiclient.BearerToken(func() string { return token })))
	}

	var wrappers []apiclient.TransportWrapper
	if cfg.Tracing.Enabled {
		wrappers = append(wrappers, apiclient.Traced())
	}
	if cfg.Resilience.CircuitBreaker {
		wrappers = append(wrappers, apiclient.CircuitBreaker(apiclient.BreakerConfig{
			Timeout: cfg.Resilience.BreakerTimeout,
		}))
	}
	if cfg.Resilience.RateLimitRPS > 0 {
		wrappers = append(wrappers, apiclient.RateLimited(cfg.Resilience.RateLimitRPS, cfg.Resilience.RateLimitBurst))
	}
	if len(wrappers) > 0 {
		opts = append(opts, apiclient.WithTransport(wrappers...))
	}
	return opts
}

// consoleNotifier prints each failure once to the command's stderr.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Notify(ctx context.Context, note apiclient.Notification) {
	fmt.Fprintf(n.out, "%s: %s\n", note.Level, note.Message)
	logging.Ctx(ctx).Debug().
		Int("status", note.StatusCode).
		Str("method", note.Method).
		Str("url", note.URL).
		Msg("Request failed")
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
