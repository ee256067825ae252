// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/dataset"
)

func TestBuild_GenderAgePie(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.GenderAge)
	require.NoError(t, err)

	spec, err := Build(d, KindPie, Style{Palette: "RdBu"})
	require.NoError(t, err)

	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Points, 5)
	assert.InDelta(t, 190, spec.Total(), 0.001, "values are independent percentages, not a 100% split")
	assert.Equal(t, d.Categories(), spec.Labels())
	assert.Equal(t, KindPie, spec.Kind)
	assert.False(t, spec.ShowGrid, "pies have no grid")
	assert.Empty(t, spec.XAxis)
	assert.Empty(t, spec.YAxis)
	assert.Equal(t, "Demographics Overview", spec.Title)
	assert.Len(t, spec.Colors, 5, "pies get one color per slice")
	assert.Empty(t, spec.Series[0].Color, "slices take their color from Colors")
	seen := map[string]bool{}
	for _, c := range spec.Colors {
		assert.False(t, seen[c], "slice color %s repeats", c)
		seen[c] = true
	}
}

func TestBuild_KindAliases(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.YieldChanges)
	require.NoError(t, err)

	tests := []struct {
		in   Kind
		want Kind
	}{
		{"bar-horizontal", KindBarH},
		{"bar-vertical", KindBar},
		{" Pie ", KindPie},
	}
	for _, tt := range tests {
		spec, err := Build(d, tt.in, Style{})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, spec.Kind, tt.in)
	}

	spec, err := Build(d, "bar-horizontal", Style{})
	require.NoError(t, err)
	assert.True(t, spec.Kind.Horizontal())
	assert.Equal(t, "Percentage", spec.XAxis, "horizontal bars swap the axes")
	assert.Equal(t, "Category", spec.YAxis)
}

func TestBuild_RoundTripAllDatasets(t *testing.T) {
	tbl := dataset.Builtin()
	for _, d := range tbl.All() {
		for _, kind := range kinds {
			for _, grouped := range []bool{false, true} {
				spec, err := Build(d, kind, Style{GroupBy: grouped})
				require.NoError(t, err, "%s/%s", d.Name, kind)
				assert.Equal(t, d.Values(), spec.Values(), "%s/%s grouped=%v", d.Name, kind, grouped)
			}
		}
	}
}

func TestBuild_GroupedSeriesOrder(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.CropTypes)
	require.NoError(t, err)

	spec, err := Build(d, KindBar, Style{Palette: "Plotly", GroupBy: true})
	require.NoError(t, err)

	require.Len(t, spec.Series, 2)
	assert.Equal(t, "2021", spec.Series[0].Name)
	assert.Equal(t, "2024", spec.Series[1].Name)
	assert.Equal(t, []Point{
		{Label: "Mixed Cropping", Value: 45, Index: 0},
		{Label: "Cotton", Value: 55, Index: 2},
	}, spec.Series[0].Points)
	assert.Equal(t, "#636efa", spec.Series[0].Color)
	assert.Equal(t, "#ef553b", spec.Series[1].Color)
	assert.Equal(t, "Year", spec.LegendTitle)
	assert.True(t, spec.Grouped)
	assert.Equal(t, []string{"Mixed Cropping", "Cotton"}, spec.Categories())
}

func TestBuild_GroupByIgnoredForUngroupedDataset(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.Irrigation)
	require.NoError(t, err)

	spec, err := Build(d, KindBar, Style{GroupBy: true})
	require.NoError(t, err)
	assert.False(t, spec.Grouped)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, "Percentage", spec.Series[0].Name)
}

func TestBuild_GroupedDatasetAsSingleSeries(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.WaterAvailability)
	require.NoError(t, err)

	spec, err := Build(d, KindPie, Style{})
	require.NoError(t, err)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, "Shortages (2021)", spec.Series[0].Points[0].Label)
}

func TestBuild_HorizontalBarSwapsAxes(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.YieldChanges)
	require.NoError(t, err)

	spec, err := Build(d, KindBarH, Style{})
	require.NoError(t, err)
	assert.Equal(t, "Percentage", spec.XAxis)
	assert.Equal(t, "Category", spec.YAxis)

	explicit, err := Build(d, KindBarH, Style{XAxis: "X", YAxis: "Y"})
	require.NoError(t, err)
	assert.Equal(t, "X", explicit.XAxis)
	assert.Equal(t, "Y", explicit.YAxis)
}

func TestBuild_Defaults(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.Suggestions)
	require.NoError(t, err)

	spec, err := Build(d, KindBar, Style{})
	require.NoError(t, err)
	assert.Equal(t, DefaultHeight, spec.Height)
	assert.Equal(t, "Suggestion", spec.XAxis)
	assert.Equal(t, "Frequency", spec.YAxis)
	assert.True(t, spec.ShowGrid)
	assert.True(t, spec.ShowLegend)
	assert.Equal(t, palettes[DefaultPalette][0], spec.Colors[0])
}

func TestBuild_StyleOverrides(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.Benefits)
	require.NoError(t, err)

	spec, err := Build(d, KindPie, Style{Title: "Custom", Height: 420, LegendTitle: "Benefits"})
	require.NoError(t, err)
	assert.Equal(t, "Custom", spec.Title)
	assert.Equal(t, 420, spec.Height)
	assert.Equal(t, "Benefits", spec.LegendTitle)
}

func TestBuild_EmptyDataset(t *testing.T) {
	d := &dataset.Dataset{Name: "empty", CategoryLabel: "c", ValueLabel: "v"}
	spec, err := Build(d, KindBar, Style{})
	require.NoError(t, err)
	assert.True(t, spec.Empty())
	assert.Empty(t, spec.Series)
	assert.Empty(t, spec.Values())
	assert.Zero(t, spec.Max())
}

func TestBuild_Errors(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.Benefits)
	require.NoError(t, err)

	_, err = Build(d, Kind("radar"), Style{})
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = Build(d, KindPie, Style{Palette: "nope"})
	assert.True(t, errors.Is(err, ErrUnknownPalette))
}

func TestMustBuild_Panics(t *testing.T) {
	d := &dataset.Dataset{Name: "x", CategoryLabel: "c", ValueLabel: "v"}
	assert.Panics(t, func() { MustBuild(d, Kind("radar"), Style{}) })
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		err  bool
	}{
		{"pie", KindPie, false},
		{"BAR", KindBar, false},
		{" barh ", KindBarH, false},
		{"bar-vertical", KindBar, false},
		{"bar-horizontal", KindBarH, false},
		{"line", KindLine, false},
		{"area", KindArea, false},
		{"scatter", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_CloneIsDeep(t *testing.T) {
	d, err := dataset.Builtin().Get(dataset.Income)
	require.NoError(t, err)
	spec, err := Build(d, KindArea, Style{GroupBy: true})
	require.NoError(t, err)

	c := spec.Clone()
	c.Series[0].Points[0].Value = -1
	c.Colors[0] = "#000000"
	assert.InDelta(t, 70, spec.Series[0].Points[0].Value, 0.001)
	assert.NotEqual(t, "#000000", spec.Colors[0])
}

func TestPalette(t *testing.T) {
	p, err := Palette("SET1")
	require.NoError(t, err)
	assert.Equal(t, "#e41a1c", p[0])

	p[0] = "mutated"
	again, err := Palette("set1")
	require.NoError(t, err)
	assert.Equal(t, "#e41a1c", again[0])

	def, err := Palette("")
	require.NoError(t, err)
	assert.Equal(t, palettes[DefaultPalette], def)

	assert.Contains(t, PaletteNames(), "viridis")
	assert.Equal(t, []string{"a", "b", "a"}, cycle([]string{"a", "b"}, 3))
}
