// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/page"
	"github.com/davetashner/lakedash/internal/server"
)

// Serve-specific flag values.
var (
	serveHost       string
	servePort       int
	serveLayout     string
	serveSessionTTL string
)

// serveCmd runs the dashboard web server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Start the dashboard web server.

The root page shows the configured layout. Every layout is also reachable
directly at /grid, /sections and /sidebar. Sidebar selections are kept per
browser session.

Examples:
  lakedash serve
  lakedash serve --port 9000 --layout sidebar
  lakedash serve --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default 127.0.0.1)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default 8050)")
	serveCmd.Flags().StringVarP(&serveLayout, "layout", "l", "", "default layout: grid, sections, or sidebar")
	serveCmd.Flags().StringVar(&serveSessionTTL, "session-ttl", "", "idle time before a sidebar session is forgotten (e.g. 30m)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&config.Config{
		Host:       serveHost,
		Port:       servePort,
		Layout:     serveLayout,
		SessionTTL: serveSessionTTL,
	})
	if err != nil {
		return err
	}
	tbl, charts, err := loadDashboard(cfg)
	if err != nil {
		return err
	}
	ttl, err := cfg.TTL()
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}

	srv, err := server.New(server.Options{
		Addr:       cfg.Addr(),
		Layout:     page.Layout(cfg.Layout),
		Theme:      cfg.PageTheme(),
		Datasets:   tbl,
		Charts:     charts,
		SessionTTL: ttl,
	})
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return exitError(ExitServeFailure, "lakedash: %v", err)
	}
	return nil
}
