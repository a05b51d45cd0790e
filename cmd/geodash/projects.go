// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newProjectsCommand(ctx *commandContext) *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage keyword projects",
	}

	projectsCmd.AddCommand(newProjectsListCommand(ctx))
	projectsCmd.AddCommand(newProjectsShowCommand(ctx))
	projectsCmd.AddCommand(newProjectsCreateCommand(ctx))
	projectsCmd.AddCommand(newProjectsKeywordsCommand(ctx))

	return projectsCmd
}

func projectRows(projects []models.Project) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.CompanyName,
			optional(p.Industry),
			p.CreatedAt.String(),
		})
	}
	return rows
}

var projectHeaders = []string{"ID", "Name", "Company", "Industry", "Created"}

func newProjectsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keyword projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				projects, err := svc.Keywords.ListProjects(cmd.Context())
				if err != nil {
					return err
				}
				return printTable(cmd, ctx, projects, projectHeaders, projectRows(projects),
					[]columnAlignment{alignRight}, "No projects")
			})
		},
	}
}

func newProjectsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				p, err := svc.Keywords.GetProject(cmd.Context(), id)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, p)
				}
				rows := [][]string{
					{"ID", strconv.Itoa(p.ID)},
					{"Name", p.Name},
					{"Company", p.CompanyName},
					{"Domain keyword", optional(p.DomainKeyword)},
					{"Industry", optional(p.Industry)},
					{"Description", optional(p.Description)},
					{"Created", p.CreatedAt.String()},
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
				return nil
			})
		},
	}
}

func newProjectsCreateCommand(ctx *commandContext) *cobra.Command {
	var req models.ProjectCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a keyword project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" || req.CompanyName == "" {
				return errors.New("--name and --company are required")
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				p, err := svc.Keywords.CreateProject(cmd.Context(), req)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, p)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %d (%s)\n", p.ID, p.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&req.DomainKeyword, "domain-keyword", "", "Core domain keyword")
	cmd.Flags().StringVar(&req.Industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newProjectsKeywordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords <project-id>",
		Short: "List a project's keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				keywords, err := svc.Keywords.ProjectKeywords(cmd.Context(), id)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(keywords))
				for _, k := range keywords {
					rows = append(rows, []string{
						strconv.Itoa(k.ID),
						k.Keyword,
						optionalInt(k.DifficultyScore),
						optional(k.Status),
					})
				}
				return printTable(cmd, ctx, keywords,
					[]string{"ID", "Keyword", "Difficulty", "Status"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
					"No keywords")
			})
		},
	}
}
