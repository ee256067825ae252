// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/page"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the bundle as a human-readable Markdown report.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// ContentType returns the MIME type.
func (m *MarkdownFormatter) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Format writes the bundle as Markdown to w.
//
// The output includes:
//   - A title heading and generation timestamp
//   - A chart index table
//   - One section per dataset with its rows as a table
func (m *MarkdownFormatter) Format(b Bundle, w io.Writer) error {
	title := b.Theme.Title
	if title == "" {
		title = page.DefaultTheme().Title
	}
	if _, err := fmt.Fprintf(w, "# %s\n\nGenerated %s. %d datasets, %d charts.\n\n",
		title, b.generatedAt(), len(b.Datasets), len(b.Charts)); err != nil {
		return fmt.Errorf("write markdown header: %w", err)
	}

	if len(b.Charts) > 0 {
		var sb strings.Builder
		sb.WriteString("## Charts\n\n| Chart | Kind | Dataset | Title |\n|-------|------|---------|-------|\n")
		for _, c := range b.Charts {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", c.Name, c.Kind, c.Dataset, escapeCell(c.Title))
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("write chart index: %w", err)
		}
	}

	for _, d := range b.Datasets {
		if err := writeDatasetSection(w, d); err != nil {
			return err
		}
	}
	return nil
}

func writeDatasetSection(w io.Writer, d *dataset.Dataset) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n`%s`, %d rows\n\n", escapeCell(d.Title), d.Name, len(d.Rows))

	if len(d.Rows) == 0 {
		sb.WriteString("_No rows._\n\n")
	} else if d.Grouped() {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n|---|---|---:|\n", escapeCell(d.CategoryLabel), escapeCell(d.GroupLabel), escapeCell(d.ValueLabel))
		for _, r := range d.Rows {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(r.Category), escapeCell(r.Group), formatValue(r.Value))
		}
		sb.WriteString("\n")
	} else {
		fmt.Fprintf(&sb, "| %s | %s |\n|---|---:|\n", escapeCell(d.CategoryLabel), escapeCell(d.ValueLabel))
		for _, r := range d.Rows {
			fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(r.Category), formatValue(r.Value))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write dataset %s: %w", d.Name, err)
	}
	return nil
}

// escapeCell keeps a value from breaking the table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
