// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/geodash/internal/models"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes v as JSON when --json is set, otherwise the table, or
// empty when there are no rows.
func printTable(cmd *cobra.Command, ctx *commandContext, v any, headers []string, rows [][]string, aligns []columnAlignment, empty string) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, v)
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), empty)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
	return nil
}

// printResult reports an action outcome.
func printResult(cmd *cobra.Command, ctx *commandContext, res *models.ActionResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, res)
	}
	status := "ok"
	if !res.Success {
		status = "failed"
	}
	msg := strings.TrimSpace(res.Message)
	if msg == "" {
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status, msg)
	return nil
}

// printRecord prints a loosely typed object as sorted key/value rows.
func printRecord(cmd *cobra.Command, ctx *commandContext, rec models.Record) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, rec)
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, recordString(rec, k)})
	}
	return printTable(cmd, ctx, rec, []string{"Field", "Value"}, rows, nil, "(empty)")
}

func recordString(rec models.Record, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return "-"
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return yesNo(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func optionalInt(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// percent formats a backend rate. Rates arrive as 0-100.
func percent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return id, nil
}

// parseAssignments turns key=value pairs into a record. Values that parse
// as JSON scalars keep their type.
func parseAssignments(pairs []string) (models.Record, error) {
	rec := models.Record{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			switch decoded.(type) {
			case float64, bool, nil:
				rec[key] = decoded
				continue
			}
		}
		rec[key] = value
	}
	return rec, nil
}
