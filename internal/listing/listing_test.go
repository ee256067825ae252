// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTable_Alignment(t *testing.T) {
	noColor(t)
	tbl := NewTable(
		Column{Header: "Left"},
		Column{Header: "Right", Align: AlignRight},
	)
	tbl.AddRow("a", "1")
	tbl.AddRow("bb", "22")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Equal(t, []string{
		"  Left  Right",
		"  ----  -----",
		"  a         1",
		"  bb       22",
	}, lines(buf.String()))
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_MissingAndExtraValues(t *testing.T) {
	noColor(t)
	tbl := NewTable(Column{Header: "A"}, Column{Header: "B"})
	tbl.AddRow("only-one")
	tbl.AddRow("x", "y", "dropped")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "only-one")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestTable_RuneWidths(t *testing.T) {
	noColor(t)
	tbl := NewTable(Column{Header: "Name"}, Column{Header: "N", Align: AlignRight})
	tbl.AddRow("Café", "1")
	tbl.AddRow("Tea", "2")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	l := lines(buf.String())
	assert.Equal(t, "  Café  1", l[2])
	assert.Equal(t, "  Tea   2", l[3])
}

func TestTable_ColorDoesNotSkewPadding(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	tbl := NewTable(Column{Header: "KIND", Color: ColorKind}, Column{Header: "X"})
	tbl.AddRow("pie", "1")
	tbl.AddRow("line", "2")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	l := lines(buf.String())
	assert.Contains(t, l[2], "\x1b[")
	assert.True(t, strings.HasSuffix(l[2], "pie\x1b[0m   1"), l[2])
}

func TestTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable().Render(&buf))
	assert.Zero(t, buf.Len())
}

func TestCharts(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, Charts(&buf, chart.Builtin(dataset.Builtin(), 0).All()))
	l := lines(buf.String())
	require.Len(t, l, 15)
	assert.Contains(t, l[0], "NAME")
	assert.Contains(t, buf.String(), "demographics")
	assert.Contains(t, buf.String(), "gender_age")
}

func TestDatasets(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, Datasets(&buf, dataset.Builtin().All()))
	require.Len(t, lines(buf.String()), 15)
	assert.Contains(t, buf.String(), "yes")
	assert.Contains(t, buf.String(), "190")
}

func TestDataset(t *testing.T) {
	noColor(t)
	d, err := dataset.Builtin().Get(dataset.CropTypes)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dataset(&buf, d))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, d.Title+" (crop_types)\n"))
	assert.Contains(t, out, d.GroupLabel)
	assert.Len(t, lines(out), len(d.Rows)+4)
}

func TestControls(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, Controls(&buf, dispatch.DefaultControls()))
	assert.Contains(t, buf.String(), "livestock-btn")
	assert.Contains(t, buf.String(), "employment")
}
