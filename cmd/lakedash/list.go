// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
	"github.com/davetashner/lakedash/internal/listing"
)

// listJSON switches the list commands to JSON output.
var listJSON bool

// chartsCmd lists the chart registry.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List the dashboard charts",
	Args:  cobra.NoArgs,
	RunE:  runCharts,
}

// datasetsCmd lists datasets, or prints one.
var datasetsCmd = &cobra.Command{
	Use:   "datasets [name]",
	Short: "List the survey datasets, or print one",
	Long: `List the survey datasets behind the charts. With a name, print that
dataset's rows.

Examples:
  lakedash datasets
  lakedash datasets crop_types
  lakedash datasets gender_age --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDatasets,
}

// controlsCmd lists the sidebar controls.
var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the sidebar controls and the chart each one shows",
	Args:  cobra.NoArgs,
	RunE:  runControls,
}

func init() {
	for _, c := range []*cobra.Command{chartsCmd, datasetsCmd, controlsCmd} {
		c.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of a table")
	}
}

func runCharts(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&config.Config{})
	if err != nil {
		return err
	}
	_, charts, err := loadDashboard(cfg)
	if err != nil {
		return err
	}
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), charts.All())
	}
	return listing.Charts(cmd.OutOrStdout(), charts.All())
}

func runDatasets(cmd *cobra.Command, args []string) error {
	tbl := dataset.Builtin()
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		if listJSON {
			return writeJSON(w, tbl.All())
		}
		return listing.Datasets(w, tbl.All())
	}

	d, err := tbl.Get(args[0])
	if errors.Is(err, dataset.ErrUnknownDataset) {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}
	if err != nil {
		return err
	}
	if listJSON {
		return writeJSON(w, d)
	}
	return listing.Dataset(w, d)
}

func runControls(cmd *cobra.Command, _ []string) error {
	controls := dispatch.DefaultControls()
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), controls)
	}
	return listing.Controls(cmd.OutOrStdout(), controls)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
