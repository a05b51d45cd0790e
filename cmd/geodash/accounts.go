// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/dashboard"
	"github.com/tomtom215/geodash/internal/models"
)

func newAccountsCommand(ctx *commandContext) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage publishing platform accounts",
	}

	accountsCmd.AddCommand(newAccountsListCommand(ctx))
	accountsCmd.AddCommand(newAccountsAuthCommand(ctx))
	accountsCmd.AddCommand(newAccountsAuthStatusCommand(ctx))
	accountsCmd.AddCommand(newAccountsUpdateCommand(ctx))
	accountsCmd.AddCommand(newAccountsDeleteCommand(ctx))

	return accountsCmd
}

func newAccountsListCommand(ctx *commandContext) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			for _, f := range filters {
				rec, err := parseAssignments([]string{f})
				if err != nil {
					return err
				}
				for k := range rec {
					query.Set(k, recordString(rec, k))
				}
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				accounts, err := svc.Accounts.List(cmd.Context(), query)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(accounts))
				for _, a := range accounts {
					rows = append(rows, []string{
						recordString(a, "id"),
						recordString(a, "platform"),
						recordString(a, "account_name"),
						recordString(a, "status"),
					})
				}
				return printTable(cmd, ctx, accounts,
					[]string{"ID", "Platform", "Name", "Status"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
					"No accounts")
			})
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Query filter as key=value (repeatable)")
	return cmd
}

func newAccountsAuthCommand(ctx *commandContext) *cobra.Command {
	var platform string
	var name string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Start a browser authorization for a platform account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platform == "" {
				return errors.New("--platform is required")
			}
			req := models.Record{"platform": platform}
			if name != "" {
				req["account_name"] = name
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				task, err := svc.Accounts.StartAuth(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printRecord(cmd, ctx, task)
			})
		},
	}

	cmd.Flags().StringVar(&platform, "platform", models.DefaultPlatform, "Platform to authorize")
	cmd.Flags().StringVar(&name, "name", "", "Account display name")
	return cmd
}

func newAccountsAuthStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-status <task-id>",
		Short: "Show the state of an authorization task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(svc *dashboard.Services) error {
				status, err := svc.Accounts.AuthStatus(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printRecord(cmd, ctx, status)
			})
		},
	}
}

func newAccountsUpdateCommand(ctx *commandContext) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update account fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account id")
			if err != nil {
				return err
			}
			body, err := parseAssignments(fields)
			if err != nil {
				return err
			}
			if len(body) == 0 {
				return errors.New("nothing to update; pass --set key=value")
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				updated, err := svc.Accounts.Update(cmd.Context(), id, body)
				if err != nil {
					return err
				}
				return printRecord(cmd, ctx, updated)
			})
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "Field to set as key=value (repeatable)")
	return cmd
}

func newAccountsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account id")
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *dashboard.Services) error {
				if err := svc.Accounts.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %d\n", id)
				return nil
			})
		},
	}
}
