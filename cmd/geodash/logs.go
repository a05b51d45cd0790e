// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/logstream"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Backend log stream",
	}
	logsCmd.AddCommand(newLogsTailCommand(ctx))
	return logsCmd
}

func newLogsTailCommand(ctx *commandContext) *cobra.Command {
	var module string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Follow backend log events until interrupted",
		Long:  "Follow backend log events. The stream reconnects after logstream.reconnect_delay whenever the connection drops.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := ctx.ensureServices(); err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printer := newEventPrinter(cmd.OutOrStdout(), ctx.jsonOutput())
			handler := func(ev logstream.Event) {
				if module != "" && !strings.EqualFold(ev.Module, module) {
					return
				}
				printer.print(ev)
			}

			client, err := logstream.New(logstream.Config{
				BaseURL:        ctx.client.BaseURL(),
				ReconnectDelay: cfg.LogStream.ReconnectDelay,
			}, handler)
			if err != nil {
				return err
			}
			if err := client.Serve(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Only show events from this module")
	return cmd
}

// eventPrinter serializes writes from the stream and poller goroutines.
type eventPrinter struct {
	mu     sync.Mutex
	out    io.Writer
	asJSON bool
}

func newEventPrinter(out io.Writer, asJSON bool) *eventPrinter {
	return &eventPrinter{out: out, asJSON: asJSON}
}

func (p *eventPrinter) print(ev logstream.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.asJSON {
		_ = json.NewEncoder(p.out).Encode(ev)
		return
	}
	fmt.Fprintln(p.out, formatEvent(ev))
}

func (p *eventPrinter) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

func formatEvent(ev logstream.Event) string {
	var b strings.Builder
	if ev.Time != "" {
		b.WriteString(ev.Time)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-7s", ev.Level)
	if ev.Module != "" {
		b.WriteString(" [")
		b.WriteString(ev.Module)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(ev.Message)
	return b.String()
}
