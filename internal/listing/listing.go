// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package listing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

// Charts writes one row per chart spec.
func Charts(w io.Writer, specs []chart.Spec) error {
	t := NewTable(
		Column{Header: "NAME"},
		Column{Header: "KIND", Color: ColorKind},
		Column{Header: "DATASET"},
		Column{Header: "SERIES", Align: AlignRight},
		Column{Header: "TITLE"},
	)
	for _, s := range specs {
		t.AddRow(s.Name, string(s.Kind), s.Dataset, strconv.Itoa(len(s.Series)), s.Title)
	}
	return t.Render(w)
}

// Datasets writes one row per dataset.
func Datasets(w io.Writer, sets []*dataset.Dataset) error {
	t := NewTable(
		Column{Header: "NAME"},
		Column{Header: "ROWS", Align: AlignRight},
		Column{Header: "GROUPED", Color: ColorGrouped},
		Column{Header: "TOTAL", Align: AlignRight},
		Column{Header: "TITLE"},
	)
	for _, d := range sets {
		grouped := "no"
		if d.Grouped() {
			grouped = "yes"
		}
		t.AddRow(d.Name, strconv.Itoa(len(d.Rows)), grouped, formatValue(d.Total()), d.Title)
	}
	return t.Render(w)
}

// Dataset writes a titled table of one dataset's rows.
func Dataset(w io.Writer, d *dataset.Dataset) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n\n", SectionTitle(d.Title), d.Name); err != nil {
		return fmt.Errorf("render dataset: %w", err)
	}
	cols := []Column{{Header: d.CategoryLabel}}
	if d.Grouped() {
		cols = append(cols, Column{Header: d.GroupLabel})
	}
	cols = append(cols, Column{Header: d.ValueLabel, Align: AlignRight})
	t := NewTable(cols...)
	for _, r := range d.Rows {
		if d.Grouped() {
			t.AddRow(r.Category, r.Group, formatValue(r.Value))
		} else {
			t.AddRow(r.Category, formatValue(r.Value))
		}
	}
	return t.Render(w)
}

// Controls writes the sidebar controls and the chart each one shows.
func Controls(w io.Writer, controls []dispatch.Control) error {
	t := NewTable(
		Column{Header: "CONTROL"},
		Column{Header: "CHART"},
		Column{Header: "LABEL"},
	)
	for _, c := range controls {
		t.AddRow(c.ID, c.Chart, c.Label)
	}
	return t.Render(w)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
