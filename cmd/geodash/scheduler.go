// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newSchedulerCommand(ctx *commandContext) *cobra.Command {
	schedulerCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Inspect and control the backend scheduler",
	}

	schedulerCmd.AddCommand(&cobra.Command{
		Use:   "jobs",
		Short: "List scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				jobs, err := svc.Scheduler.Jobs(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(jobs))
				for _, j := range jobs {
					rows = append(rows, []string{
						recordString(j, "id"),
						recordString(j, "name"),
						recordString(j, "next_run_time"),
						recordString(j, "trigger"),
					})
				}
				return printTable(cmd, ctx, jobs,
					[]string{"ID", "Name", "Next run", "Trigger"},
					rows, nil, "No jobs")
			})
		},
	})
	schedulerCmd.AddCommand(newSchedulerToggleCommand(ctx, "start", "Start the scheduler",
		func(svc *dashboard.Services, cmd *cobra.Command) (models.Record, error) {
			return svc.Scheduler.Start(cmd.Context())
		}))
	schedulerCmd.AddCommand(newSchedulerToggleCommand(ctx, "stop", "Stop the scheduler",
		func(svc *dashboard.Services, cmd *cobra.Command) (models.Record, error) {
			return svc.Scheduler.Stop(cmd.Context())
		}))

	return schedulerCmd
}

func newSchedulerToggleCommand(ctx *commandContext, use, short string, fn func(*dashboard.Services, *cobra.Command) (models.Record, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := fn(svc, cmd)
				if err != nil {
					return err
				}
				return printRecord(cmd, ctx, res)
			})
		},
	}
}
