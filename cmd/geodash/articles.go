// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newArticlesCommand(ctx *commandContext) *cobra.Command {
	articlesCmd := &cobra.Command{
		Use:     "articles",
		Aliases: []string{"article"},
		Short:   "Generate and inspect GEO articles",
	}

	articlesCmd.AddCommand(newArticlesListCommand(ctx))
	articlesCmd.AddCommand(newArticlesShowCommand(ctx))
	articlesCmd.AddCommand(newArticlesGenerateCommand(ctx))
	articlesCmd.AddCommand(newArticleActionCommand(ctx, "check-quality", "Run the quality check on an article",
		func(cmd *cobra.Command, svc *dashboard.Services, id int) (*models.ActionResult, error) {
			return svc.Articles.CheckQuality(cmd.Context(), id)
		}))
	articlesCmd.AddCommand(newArticleActionCommand(ctx, "check-index", "Check whether an article is indexed",
		func(cmd *cobra.Command, svc *dashboard.Services, id int) (*models.ActionResult, error) {
			return svc.Articles.CheckIndex(cmd.Context(), id)
		}))
	articlesCmd.AddCommand(newArticleActionCommand(ctx, "delete", "Delete an article",
		func(cmd *cobra.Command, svc *dashboard.Services, id int) (*models.ActionResult, error) {
			return svc.Articles.Delete(cmd.Context(), id)
		}))
	articlesCmd.AddCommand(newArticlesProjectsCommand(ctx))

	return articlesCmd
}

func newArticlesListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				articles, err := svc.Articles.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(articles))
				for i := range articles {
					a := &articles[i]
					rows = append(rows, []string{
						strconv.Itoa(a.ID),
						a.DisplayTitle(),
						a.Platform,
						a.QualityStatus,
						a.PublishStatus,
						a.IndexStatus,
						a.CreatedAt.String(),
					})
				}
				return printTable(cmd, ctx, articles,
					[]string{"ID", "Title", "Platform", "Quality", "Publish", "Index", "Created"},
					rows,
					[]columnAlignment{alignRight},
					"No articles")
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of articles (0 uses the server default)")
	return cmd
}

func newArticlesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "article id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				a, err := svc.Articles.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, a)
				}
				out := cmd.OutOrStdout()
				rows := [][]string{
					{"ID", strconv.Itoa(a.ID)},
					{"Title", a.DisplayTitle()},
					{"Keyword", strconv.Itoa(a.KeywordID)},
					{"Platform", a.Platform},
					{"Quality", a.QualityStatus + " (" + optionalInt(a.QualityScore) + ")"},
					{"AI score", optionalInt(a.AIScore)},
					{"Readability", optionalInt(a.ReadabilityScore)},
					{"Publish", a.PublishStatus},
					{"Published at", a.PublishTime.String()},
					{"URL", optional(a.PlatformURL)},
					{"Index", a.IndexStatus},
					{"Last check", a.LastCheckTime.String()},
					{"Retries", strconv.Itoa(a.RetryCount)},
					{"Error", optional(a.ErrorMsg)},
				}
				fmt.Fprint(out, renderTable([]string{"Field", "Value"}, rows, nil))
				if a.Content != nil && strings.TrimSpace(*a.Content) != "" {
					fmt.Fprintln(out)
					fmt.Fprintln(out, strings.TrimSpace(*a.Content))
				}
				return nil
			})
		},
	}
}

func newArticlesGenerateCommand(ctx *commandContext) *cobra.Command {
	var req models.GenerateArticleRequest
	var publishAt string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an article for a keyword",
		Long:  "Generate an article for a keyword. Generation runs under api.generate_timeout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.KeywordID <= 0 {
				return errors.New("--keyword is required")
			}
			if publishAt != "" {
				ts, err := models.ParseTimestamp(publishAt)
				if err != nil {
					return fmt.Errorf("invalid --publish-at: %w", err)
				}
				req.PublishTime = &ts
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := svc.Articles.Generate(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}

	cmd.Flags().IntVar(&req.KeywordID, "keyword", 0, "Keyword id")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&req.Platform, "platform", models.DefaultPlatform, "Target platform")
	cmd.Flags().StringVar(&publishAt, "publish-at", "", "Scheduled publish time (RFC3339 or 2006-01-02 15:04:05)")
	return cmd
}

type articleAction func(cmd *cobra.Command, svc *dashboard.Services, id int) (*models.ActionResult, error)

func newArticleActionCommand(ctx *commandContext, use, short string, action articleAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "article id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := action(cmd, svc, id)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}
}

func newArticlesProjectsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects available for generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				projects, err := svc.Articles.Projects(cmd.Context())
				if err != nil {
					return err
				}
				return printTable(cmd, ctx, projects, projectHeaders, projectRows(projects),
					[]columnAlignment{alignRight}, "No projects")
			})
		},
	}
}
