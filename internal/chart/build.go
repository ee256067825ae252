// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"github.com/davetashner/lakedash/internal/dataset"
)

// DefaultHeight is the pixel height used when a style leaves Height unset.
const DefaultHeight = 300

// Style carries the presentation options applied while building a spec.
// Zero values fall back to what the dataset itself describes.
type Style struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Height      int    `json:"height,omitempty" yaml:"height,omitempty"`
	Palette     string `json:"palette,omitempty" yaml:"palette,omitempty"`
	XAxis       string `json:"x_axis,omitempty" yaml:"x_axis,omitempty"`
	YAxis       string `json:"y_axis,omitempty" yaml:"y_axis,omitempty"`
	LegendTitle string `json:"legend_title,omitempty" yaml:"legend_title,omitempty"`

	// GroupBy splits a grouped dataset into one series per group key.
	GroupBy bool `json:"group_by,omitempty" yaml:"group_by,omitempty"`
}

// Build produces a spec for d drawn as kind. An empty dataset yields a spec
// with no series rather than an error.
func Build(d *dataset.Dataset, kind Kind, style Style) (Spec, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return Spec{}, err
	}
	colors, err := Palette(style.Palette)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Kind:        kind,
		Dataset:     d.Name,
		Title:       firstNonEmpty(style.Title, d.Title),
		Height:      style.Height,
		LegendTitle: style.LegendTitle,
		ShowLegend:  true,
		ShowGrid:    kind != KindPie,
	}
	if spec.Height <= 0 {
		spec.Height = DefaultHeight
	}

	if kind != KindPie {
		spec.XAxis = firstNonEmpty(style.XAxis, d.CategoryLabel)
		spec.YAxis = firstNonEmpty(style.YAxis, d.ValueLabel)
		if kind.Horizontal() && style.XAxis == "" && style.YAxis == "" {
			spec.XAxis, spec.YAxis = spec.YAxis, spec.XAxis
		}
	}

	if len(d.Rows) == 0 {
		spec.Series = []Series{}
		spec.Colors = []string{}
		return spec, nil
	}

	if style.GroupBy && d.Grouped() {
		spec.Grouped = true
		spec.Series = buildGroupedSeries(d)
		if spec.LegendTitle == "" {
			spec.LegendTitle = d.GroupLabel
		}
		spec.Colors = cycle(colors, len(spec.Series))
		for i := range spec.Series {
			spec.Series[i].Color = spec.Colors[i]
		}
		return spec, nil
	}

	// One color per point; the series itself stays uncolored.
	spec.Series = buildSingleSeries(d)
	spec.Colors = cycle(colors, len(d.Rows))
	return spec, nil
}

// MustBuild is like Build but panics on error. Only for static definitions.
func MustBuild(d *dataset.Dataset, kind Kind, style Style) Spec {
	s, err := Build(d, kind, style)
	if err != nil {
		panic(fmt.Sprintf("chart: build %s: %v", d.Name, err))
	}
	return s
}

func buildSingleSeries(d *dataset.Dataset) []Series {
	points := make([]Point, 0, len(d.Rows))
	for i, r := range d.Rows {
		label := r.Category
		if r.Group != "" {
			label = fmt.Sprintf("%s (%s)", r.Category, r.Group)
		}
		points = append(points, Point{Label: label, Value: r.Value, Index: i})
	}
	return []Series{{Name: d.ValueLabel, Points: points}}
}

// buildGroupedSeries emits one series per group, in order of first
// appearance, so output is stable across runs.
func buildGroupedSeries(d *dataset.Dataset) []Series {
	groups := d.Groups()
	index := make(map[string]int, len(groups))
	series := make([]Series, len(groups))
	for i, g := range groups {
		index[g] = i
		series[i] = Series{Name: g, Points: []Point{}}
	}
	for i, r := range d.Rows {
		s := &series[index[r.Group]]
		s.Points = append(s.Points, Point{Label: r.Category, Value: r.Value, Index: i})
	}
	return series
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
