// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/api"
	"github.com/tomtom215/geodash/internal/config"
	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/logstream"
	"github.com/tomtom215/geodash/internal/monitor"
	"github.com/tomtom215/geodash/internal/supervisor"
	ws "github.com/tomtom215/geodash/internal/websocket"
)

// recentEvents is how many log events the status API keeps.
const recentEvents = 200

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var listen string
	var noLogs bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the overview and log stream, optionally serving a status API",
		Long: `Watch refreshes the report overview every monitor.interval and follows the
backend log stream. With --listen (or server.listen) it also serves /healthz,
/metrics, /api/status, /api/logs and the /api/ws live relay. Runs until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			svc, err := ctx.ensureServices()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Server.Listen = listen
			}
			if noLogs {
				cfg.LogStream.Enabled = false
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printer := newEventPrinter(cmd.OutOrStdout(), ctx.jsonOutput())
			w := &watcher{
				cfg:     cfg,
				baseURL: ctx.client.BaseURL(),
				source:  svc.Reports,
				printer: printer,
			}
			tree, err := w.build()
			if err != nil {
				return err
			}
			if err := tree.Serve(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Serve the status API on host:port")
	cmd.Flags().BoolVar(&noLogs, "no-logs", false, "Do not follow the log stream")
	return cmd
}

// watcher assembles the supervised services for watch mode.
type watcher struct {
	cfg     *config.Config
	baseURL string
	source  monitor.OverviewSource
	printer *eventPrinter

	poller *monitor.Poller
	stream *logstream.Client
	recent *logstream.Recent
	hub    *ws.Hub
}

func (w *watcher) build() (*supervisor.SupervisorTree, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: w.cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return nil, err
	}

	if w.cfg.Server.Listen != "" {
		w.hub = ws.NewHub()
	}

	w.recent = logstream.NewRecent(recentEvents)
	if w.cfg.LogStream.Enabled {
		w.stream, err = logstream.New(logstream.Config{
			BaseURL:        w.baseURL,
			ReconnectDelay: w.cfg.LogStream.ReconnectDelay,
		}, w.recent.Tee(w.handleEvent))
		if err != nil {
			return nil, err
		}
		tree.AddStreamService(w.stream)
	}

	w.poller = monitor.New(w.source, w.cfg.Monitor.Interval, w.handleSnapshot)
	tree.AddStreamService(w.poller)

	if w.hub != nil {
		tree.AddHTTPService(w.hub)
		tree.AddHTTPService(supervisor.NewHTTPServerService(w.statusServer(), w.cfg.Server.ShutdownTimeout))
		logging.Info().Str("addr", w.cfg.Server.Listen).Msg("Status server enabled")
	}
	return tree, nil
}

func (w *watcher) statusServer() *http.Server {
	h := &api.Handler{
		Snapshots:      w.poller,
		Events:         w.recent,
		BaseURL:        w.baseURL,
		StartedAt:      time.Now(),
		Hub:            w.hub,
		AllowedOrigins: w.cfg.Server.CORSOrigins,
	}
	// A nil *logstream.Client must not become a non-nil interface.
	if w.stream != nil {
		h.Stream = w.stream
	}

	mw := api.DefaultMiddlewareConfig()
	mw.CORSAllowedOrigins = w.cfg.Server.CORSOrigins
	mw.RateLimitRequests = w.cfg.Server.RateLimit

	return &http.Server{
		Addr:              w.cfg.Server.Listen,
		Handler:           api.NewRouter(h, mw),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (w *watcher) handleEvent(ev logstream.Event) {
	w.printer.print(ev)
	if w.hub != nil {
		w.hub.BroadcastLog(ev)
	}
}

func (w *watcher) handleSnapshot(s monitor.Snapshot) {
	if w.hub != nil {
		w.hub.BroadcastOverview(s)
	}
	w.printSnapshot(s)
}

func (w *watcher) printSnapshot(s monitor.Snapshot) {
	if w.printer.asJSON {
		b, err := json.Marshal(s)
		if err != nil {
			return
		}
		w.printer.println(string(b))
		return
	}
	o := s.Overview
	w.printer.println(fmt.Sprintf("%s overview: projects=%d keywords=%d keyword_hits=%d company_hits=%d hit_rate=%s",
		s.UpdatedAt.Format("15:04:05"), o.TotalProjects, o.TotalKeywords, o.KeywordFound, o.CompanyFound, percent(o.OverallHitRate)))
}
