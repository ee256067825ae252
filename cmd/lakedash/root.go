// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lakelog "github.com/davetashner/lakedash/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// rootCmd is the base command for lakedash.
var rootCmd = &cobra.Command{
	Use:   "lakedash",
	Short: "Serve and export the lake impact survey dashboard",
	Long: `Lakedash turns survey results about a lake's effect on the surrounding
community into an interactive dashboard. It serves the dashboard in grid,
sections or sidebar layouts, renders charts to PNG or SVG, and exports the
underlying data as JSON, YAML, TOML, Markdown, HTML or Excel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if noColor {
			color.NoColor = true
		}
		lakelog.Setup(verbose, quiet, logFormat())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./.lakedash.yaml, then ./.lakedash.toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
