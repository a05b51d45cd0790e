// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newReportsCommand(ctx *commandContext) *cobra.Command {
	reportsCmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Show GEO reports",
	}

	reportsCmd.AddCommand(newReportsOverviewCommand(ctx))
	reportsCmd.AddCommand(newReportsTrendsCommand(ctx))
	reportsCmd.AddCommand(newReportsIndexTrendCommand(ctx))
	reportsCmd.AddCommand(newReportsStatsCommand(ctx))
	reportsCmd.AddCommand(newReportsPlatformsCommand(ctx))
	reportsCmd.AddCommand(newReportsLeaderboardCommand(ctx))
	reportsCmd.AddCommand(newReportsContentCommand(ctx))

	return reportsCmd
}

func overviewRows(o *models.Overview) [][]string {
	return [][]string{
		{"Projects", strconv.Itoa(o.TotalProjects)},
		{"Keywords", strconv.Itoa(o.TotalKeywords)},
		{"Keyword hits", strconv.Itoa(o.KeywordFound)},
		{"Company hits", strconv.Itoa(o.CompanyFound)},
		{"Hit rate", percent(o.OverallHitRate)},
	}
}

func newReportsOverviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show overall totals and hit rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				o, err := svc.Reports.Overview(cmd.Context())
				if err != nil {
					return err
				}
				return printTable(cmd, ctx, o, []string{"Metric", "Value"}, overviewRows(o),
					[]columnAlignment{alignLeft, alignRight}, "")
			})
		},
	}
}

// printTrend renders points with a bar per day scaled to the largest count.
func printTrend(cmd *cobra.Command, ctx *commandContext, points []models.TrendPoint) error {
	labels, counts := dashboard.TrendSeries(points)
	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	rows := make([][]string, 0, len(points))
	for i, p := range points {
		rows = append(rows, []string{
			labels[i],
			strconv.Itoa(counts[i]),
			strconv.Itoa(p.TotalChecks),
			bar(counts[i], maxCount, 30),
		})
	}
	return printTable(cmd, ctx, points,
		[]string{"Date", "Hits", "Checks", ""},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
		"No data")
}

func bar(n, maxN, width int) string {
	if n <= 0 || maxN <= 0 {
		return ""
	}
	return strings.Repeat("#", max(1, n*width/maxN))
}

func newReportsTrendsCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show the daily keyword hit trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				points, err := svc.Reports.Trends(cmd.Context(), w)
				if err != nil {
					return err
				}
				return printTrend(cmd, ctx, points)
			})
		},
	}

	wf.bind(cmd, dashboard.DefaultReportDays)
	return cmd
}

func newReportsIndexTrendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "index-trend",
		Short: "Show the index trend across all keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				points, err := svc.Reports.IndexTrend(cmd.Context())
				if err != nil {
					return err
				}
				return printTrend(cmd, ctx, points)
			})
		},
	}
}

func newReportsStatsCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags
	var projectID int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show article, publish and hit statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				s, err := svc.Reports.Stats(cmd.Context(), projectID, w)
				if err != nil {
					return err
				}
				ratio := func(hit, total int, rate float64) string {
					return fmt.Sprintf("%d/%d (%s)", hit, total, percent(rate))
				}
				rows := [][]string{
					{"Articles", strconv.Itoa(s.TotalArticles)},
					{"Common articles", strconv.Itoa(s.CommonArticles)},
					{"GEO articles", strconv.Itoa(s.GeoArticles)},
					{"Published", ratio(s.PublishSuccessCount, s.PublishTotalCount, s.PublishSuccessRate)},
					{"Keyword hits", ratio(s.KeywordHitCount, s.KeywordCheckCount, s.KeywordHitRate)},
					{"Company hits", ratio(s.CompanyHitCount, s.CompanyCheckCount, s.CompanyHitRate)},
				}
				return printTable(cmd, ctx, s, []string{"Metric", "Value"}, rows,
					[]columnAlignment{alignLeft, alignRight}, "")
			})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Limit to a project")
	wf.bind(cmd, dashboard.DefaultReportDays)
	return cmd
}

func newReportsPlatformsCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags
	var projectID int

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Compare hit rates across AI platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				items, err := svc.Reports.PlatformComparison(cmd.Context(), projectID, w)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(items))
				for _, p := range items {
					rows = append(rows, []string{
						p.Platform,
						strconv.Itoa(p.HitCount),
						strconv.Itoa(p.TotalCount),
						percent(p.HitRate),
					})
				}
				return printTable(cmd, ctx, items,
					[]string{"Platform", "Hits", "Checks", "Hit rate"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
					"No data")
			})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Limit to a project")
	wf.bind(cmd, dashboard.DefaultReportDays)
	return cmd
}

func newReportsLeaderboardCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank projects by AI mention rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				entries, err := svc.Reports.ProjectLeaderboard(cmd.Context(), w)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						strconv.Itoa(e.Rank),
						e.ProjectName,
						e.CompanyName,
						strconv.Itoa(e.ContentVolume),
						percent(e.AIMentionRate),
						percent(e.BrandRelevance),
					})
				}
				return printTable(cmd, ctx, entries,
					[]string{"#", "Project", "Company", "Content", "AI mentions", "Relevance"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
					"No data")
			})
		},
	}

	wf.bind(cmd, dashboard.DefaultReportDays)
	return cmd
}

func newReportsContentCommand(ctx *commandContext) *cobra.Command {
	var wf windowFlags
	var projectID int

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Rank articles by AI answer contribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.window(cmd)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				items, err := svc.Reports.ContentAnalysis(cmd.Context(), projectID, w)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(items))
				for _, c := range items {
					rows = append(rows, []string{
						strconv.Itoa(c.Rank),
						c.Title,
						c.Platform,
						percent(c.AIContribution),
						c.PublishTime.String(),
					})
				}
				return printTable(cmd, ctx, items,
					[]string{"#", "Title", "Platform", "Contribution", "Published"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
					"No data")
			})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Limit to a project")
	wf.bind(cmd, dashboard.DefaultReportDays)
	return cmd
}
