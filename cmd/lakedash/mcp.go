// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running lakedash as an MCP server, exposing the survey datasets and charts to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing read-only tools:
  - list_charts:     List every dashboard chart
  - get_chart:       Full specification of one chart
  - list_datasets:   List the survey datasets
  - get_dataset:     Rows of one dataset
  - export:          Export everything as json, yaml, toml, markdown, or html
  - resolve_control: Which chart the sidebar shows for a set of controls`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(&config.Config{})
		if err != nil {
			return err
		}
		tbl, charts, err := loadDashboard(cfg)
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, mcpserver.Deps{
			Datasets: tbl,
			Charts:   charts,
		}, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
