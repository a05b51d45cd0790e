// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newIndexCheckCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index-check",
		Short: "Check keyword visibility in AI answer engines",
	}

	indexCmd.AddCommand(newIndexCheckRunCommand(ctx))
	indexCmd.AddCommand(newIndexCheckRecordsCommand(ctx))
	indexCmd.AddCommand(newIndexCheckTrendCommand(ctx))

	return indexCmd
}

func newIndexCheckRunCommand(ctx *commandContext) *cobra.Command {
	var req models.CheckRequest

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an index check for a keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.KeywordID <= 0 || req.CompanyName == "" {
				return errors.New("--keyword and --company are required")
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := svc.IndexCheck.Check(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}

	cmd.Flags().IntVar(&req.KeywordID, "keyword", 0, "Keyword id")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringSliceVar(&req.Platforms, "platform", nil, "Platforms to query (default: backend's list)")
	return cmd
}

func newIndexCheckRecordsCommand(ctx *commandContext) *cobra.Command {
	var keywordID int
	var limit int

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List index check records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				records, err := svc.IndexCheck.Records(cmd.Context(), keywordID, limit)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					rows = append(rows, []string{
						strconv.Itoa(r.ID),
						strconv.Itoa(r.KeywordID),
						r.Platform,
						r.Question,
						yesNo(r.KeywordFound),
						yesNo(r.CompanyFound),
						r.CheckTime.String(),
					})
				}
				return printTable(cmd, ctx, records,
					[]string{"ID", "Keyword", "Platform", "Question", "Keyword hit", "Company hit", "Checked"},
					rows,
					[]columnAlignment{alignRight, alignRight},
					"No records")
			})
		},
	}

	cmd.Flags().IntVar(&keywordID, "keyword", 0, "Filter by keyword id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records")
	return cmd
}

func newIndexCheckTrendCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags

	cmd := &cobra.Command{
		Use:   "trend <keyword-id>",
		Short: "Show the daily hit trend for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "keyword id")
			if err != nil {
				return err
			}
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				points, err := svc.IndexCheck.Trend(cmd.Context(), id, w)
				if err != nil {
					return err
				}
				return printTrend(cmd, ctx, points)
			})
		},
	}

	wf.bind(cmd, dashboard.DefaultIndexTrendDays)
	return cmd
}
