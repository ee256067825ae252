// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/davetashner/lakedash/internal/dataset"
)

func init() {
	RegisterFormatter(NewXLSXFormatter())
}

// ChartsSheet is the name of the workbook's chart index sheet.
const ChartsSheet = "charts"

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// XLSXFormatter writes the bundle as an Excel workbook: a chart index sheet
// followed by one sheet per dataset.
type XLSXFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*XLSXFormatter)(nil)

// NewXLSXFormatter returns a new XLSXFormatter.
func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Name returns the format name.
func (x *XLSXFormatter) Name() string {
	return "xlsx"
}

// ContentType returns the MIME type.
func (x *XLSXFormatter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Format writes the workbook for b to w.
func (x *XLSXFormatter) Format(b Bundle, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", ChartsSheet); err != nil {
		return fmt.Errorf("xlsx rename sheet: %w", err)
	}
	rows := [][]any{{"Chart", "Kind", "Dataset", "Title", "Series", "Points"}}
	for _, c := range b.Charts {
		points := 0
		for _, s := range c.Series {
			points += len(s.Points)
		}
		rows = append(rows, []any{c.Name, string(c.Kind), c.Dataset, c.Title, len(c.Series), points})
	}
	if err := writeSheet(f, ChartsSheet, rows, bold); err != nil {
		return err
	}

	for _, d := range b.Datasets {
		name := sheetName(d.Name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, datasetRows(d), bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func datasetRows(d *dataset.Dataset) [][]any {
	grouped := d.Grouped()
	header := []any{d.CategoryLabel, d.ValueLabel}
	if grouped {
		header = []any{d.CategoryLabel, d.GroupLabel, d.ValueLabel}
	}
	rows := [][]any{header}
	for _, r := range d.Rows {
		if grouped {
			rows = append(rows, []any{r.Category, r.Group, r.Value})
		} else {
			rows = append(rows, []any{r.Category, r.Value})
		}
	}
	return rows
}

// writeSheet writes rows starting at A1 and bolds the first one.
func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", end, headerStyle); err != nil {
		return fmt.Errorf("xlsx %s header style: %w", sheet, err)
	}
	return nil
}

func sheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}
