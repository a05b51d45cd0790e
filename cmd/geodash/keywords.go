// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newKeywordsCommand(ctx *commandContext) *cobra.Command {
	keywordsCmd := &cobra.Command{
		Use:     "keywords",
		Aliases: []string{"keyword"},
		Short:   "Add, distill and expand keywords",
	}

	keywordsCmd.AddCommand(newKeywordsAddCommand(ctx))
	keywordsCmd.AddCommand(newKeywordsDistillCommand(ctx))
	keywordsCmd.AddCommand(newKeywordsQuestionsCommand(ctx))
	keywordsCmd.AddCommand(newKeywordsDeleteCommand(ctx))

	return keywordsCmd
}

func newKeywordsAddCommand(ctx *commandContext) *cobra.Command {
	var difficulty int

	cmd := &cobra.Command{
		Use:   "add <project-id> <keyword>",
		Short: "Add a keyword to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			req := models.KeywordCreate{Keyword: args[1]}
			if cmd.Flags().Changed("difficulty") {
				req.DifficultyScore = &difficulty
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				kw, err := svc.Keywords.CreateKeyword(cmd.Context(), projectID, req)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, kw)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added keyword %d (%s)\n", kw.ID, kw.Keyword)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty score")
	return cmd
}

func newKeywordsDistillCommand(ctx *commandContext) *cobra.Command {
	var req models.DistillRequest

	cmd := &cobra.Command{
		Use:   "distill",
		Short: "Distill keywords for a project with the AI workflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.ProjectID <= 0 || req.CompanyName == "" {
				return errors.New("--project and --company are required")
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := svc.Keywords.Distill(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}

	cmd.Flags().IntVar(&req.ProjectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&req.Industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().IntVar(&req.Count, "count", models.DefaultDistillCount, "Number of keywords")
	return cmd
}

func newKeywordsQuestionsCommand(ctx *commandContext) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "questions <keyword-id>",
		Short: "Generate question variants for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "keyword id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := svc.Keywords.GenerateQuestions(cmd.Context(), models.GenerateQuestionsRequest{
					KeywordID: id,
					Count:     count,
				})
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", models.DefaultQuestionCount, "Number of questions")
	return cmd
}

func newKeywordsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <keyword-id>",
		Short: "Delete a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "keyword id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				res, err := svc.Keywords.DeleteKeyword(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, res)
			})
		},
	}
}
