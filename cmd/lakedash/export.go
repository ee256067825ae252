// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/output"
)

// Export-specific flag values.
var (
	exportFormat string
	exportOutput string
)

// exportCmd writes the dashboard data in one of the registered formats.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"render"},
	Short:   "Export datasets and charts to a file or stdout",
	Long: `Export every dataset and chart specification.

Formats: ` + strings.Join(output.FormatNames(), ", ") + `.

The html format writes the static grid page. The site format writes a
directory with the grid and sections pages, data.json and one PNG per chart;
it requires --output.

Examples:
  lakedash export --format markdown
  lakedash export -f xlsx -o survey.xlsx
  lakedash export -f site -o public/`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file or directory (default: stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	f, err := output.GetFormatter(strings.ToLower(exportFormat))
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}

	cfg, err := resolveConfig(&config.Config{})
	if err != nil {
		return err
	}
	tbl, charts, err := loadDashboard(cfg)
	if err != nil {
		return err
	}
	b := output.NewBundle(tbl, charts)
	b.Theme = cfg.PageTheme()

	if df, ok := f.(output.DirectoryFormatter); ok {
		if exportOutput == "" {
			return exitError(ExitInvalidArgs, "lakedash: format %q writes a directory; pass --output (-o)", f.Name())
		}
		if err := df.FormatDir(b, exportOutput); err != nil {
			return exitError(ExitRenderFailure, "lakedash: export %s: %v", f.Name(), err)
		}
		slog.Info("export written", "format", f.Name(), "dir", exportOutput)
		return nil
	}

	if exportOutput == "" {
		if err := f.Format(b, cmd.OutOrStdout()); err != nil {
			return exitError(ExitRenderFailure, "lakedash: export %s: %v", f.Name(), err)
		}
		return nil
	}

	if err := writeExportFile(exportOutput, func(w io.Writer) error { return f.Format(b, w) }); err != nil {
		return exitError(ExitRenderFailure, "lakedash: export %s: %v", f.Name(), err)
	}
	slog.Info("export written", "format", f.Name(), "file", exportOutput)
	return nil
}

// writeExportFile writes through a temp file so a failed export never leaves
// a truncated file behind.
func writeExportFile(path string, fn func(io.Writer) error) error {
	tmp := path + ".tmp"
	fh, err := os.Create(tmp) //nolint:gosec // user-specified output path
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(fh); err != nil {
		_ = fh.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}
