// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/dataset"
	lakelog "github.com/davetashner/lakedash/internal/log"
)

// loadFileConfig reads the project layer: the --config file when given,
// otherwise .lakedash.yaml or .lakedash.toml in the working directory.
func loadFileConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load(".")
}

// resolveConfig stacks defaults, the global file, the project file and the
// flag overrides in cli, then validates the result.
func resolveConfig(cli *config.Config) (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "lakedash: loading global config: %v", err)
	}
	project, err := loadFileConfig()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "lakedash: loading config: %v", err)
	}

	cfg := config.Resolve(global, project, cli)
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "lakedash: %v", err)
	}
	slog.Debug("config resolved", "addr", cfg.Addr(), "layout", cfg.Layout, "chart_height", cfg.ChartHeight)
	return cfg, nil
}

// logFormat picks the log format from config before any command runs. A
// broken config falls back to text; the command reports the real error.
func logFormat() lakelog.Format {
	global, _ := config.LoadGlobal()
	project, _ := loadFileConfig()
	f, err := lakelog.ParseFormat(config.Merge(global, project).LogFormat)
	if err != nil {
		return lakelog.FormatText
	}
	return f
}

// loadDashboard builds the dataset table and chart registry. A chart that
// references a missing dataset or palette fails here.
func loadDashboard(cfg *config.Config) (*dataset.Table, *chart.Registry, error) {
	tbl := dataset.Builtin()
	charts, err := chart.NewRegistry(tbl, chart.Definitions(cfg.ChartHeight))
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "lakedash: %v", err)
	}
	return tbl, charts, nil
}
