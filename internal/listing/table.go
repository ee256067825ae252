// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package listing renders the CLI's aligned terminal tables of charts,
// datasets and controls.
package listing

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are dropped; missing
// values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w with computed column widths. Widths count
// runes, so labels with accented characters still line up.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(col.Header, widths[i], col.Align, bold.Sprint)
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			var paint func(...any) string
			if col.Color != nil {
				paint = func(a ...any) string { return col.Color(fmt.Sprint(a...)) }
			}
			parts[i] = pad(row[i], widths[i], col.Align, paint)
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

// pad justifies val to width. Padding is computed from the raw value so ANSI
// color codes do not skew alignment.
func pad(val string, width int, align Alignment, paint func(...any) string) string {
	display := val
	if paint != nil {
		display = paint(val)
	}
	fill := strings.Repeat(" ", max(width-utf8.RuneCountInString(val), 0))
	if align == AlignRight {
		return fill + display
	}
	return display + fill
}

func writeLine(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
