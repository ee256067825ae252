// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package chart turns survey datasets into immutable chart specifications
// and keeps the startup-built registry of every chart the dashboard shows.
package chart

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by the builder and registry.
var (
	ErrUnknownKind    = errors.New("unknown chart kind")
	ErrUnknownPalette = errors.New("unknown palette")
	ErrUnknownChart   = errors.New("unknown chart")
)

// Kind identifies how a spec is drawn.
type Kind string

// Supported chart kinds.
const (
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
	KindBarH Kind = "barh"
	KindLine Kind = "line"
	KindArea Kind = "area"
)

var kinds = []Kind{KindPie, KindBar, KindBarH, KindLine, KindArea}

// ParseKind validates a kind name. "bar-vertical" and "bar-horizontal" are
// accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPie, KindBar, KindBarH, KindLine, KindArea:
		return k, nil
	case "bar-vertical":
		return KindBar, nil
	case "bar-horizontal":
		return KindBarH, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownKind, s, kindList())
	}
}

// Horizontal reports whether categories run down the Y axis.
func (k Kind) Horizontal() bool { return k == KindBarH }

func kindList() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Point is one labelled value. Index is the position of the source row in
// its dataset, which keeps dataset order recoverable for grouped charts.
type Point struct {
	Label string  `json:"label" yaml:"label" toml:"label"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
	Index int     `json:"index" yaml:"index" toml:"index"`
}

// Series is a named run of points drawn in one color.
type Series struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Points []Point `json:"points" yaml:"points" toml:"points"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Spec is a renderable chart description. Specs are built once and shared;
// use Clone before handing one to code that might modify it.
type Spec struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Kind        Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Dataset     string   `json:"dataset" yaml:"dataset" toml:"dataset"`
	Grouped     bool     `json:"grouped" yaml:"grouped" toml:"grouped"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Height      int      `json:"height" yaml:"height" toml:"height"`
	XAxis       string   `json:"x_axis,omitempty" yaml:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis       string   `json:"y_axis,omitempty" yaml:"y_axis,omitempty" toml:"y_axis,omitempty"`
	LegendTitle string   `json:"legend_title,omitempty" yaml:"legend_title,omitempty" toml:"legend_title,omitempty"`
	ShowLegend  bool     `json:"show_legend" yaml:"show_legend" toml:"show_legend"`
	ShowGrid    bool     `json:"show_grid" yaml:"show_grid" toml:"show_grid"`
	Colors      []string `json:"colors" yaml:"colors" toml:"colors"`
	Series      []Series `json:"series" yaml:"series" toml:"series"`
}

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	c := s
	c.Colors = append([]string(nil), s.Colors...)
	c.Series = make([]Series, len(s.Series))
	for i, ser := range s.Series {
		c.Series[i] = ser
		c.Series[i].Points = append([]Point(nil), ser.Points...)
	}
	return c
}

// points returns every point across all series, sorted by source row.
func (s Spec) points() []Point {
	var all []Point
	for _, ser := range s.Series {
		all = append(all, ser.Points...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

// Values returns the series values in the order of the source dataset's rows.
func (s Spec) Values() []float64 {
	pts := s.points()
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}

// Labels returns point labels in the order of the source dataset's rows.
func (s Spec) Labels() []string {
	pts := s.points()
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = p.Label
	}
	return out
}

// Categories returns the distinct point labels in first-seen order. For
// grouped charts these are the shared X axis ticks.
func (s Spec) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.points() {
		if !seen[p.Label] {
			seen[p.Label] = true
			out = append(out, p.Label)
		}
	}
	return out
}

// Total returns the sum of every point value.
func (s Spec) Total() float64 {
	var sum float64
	for _, ser := range s.Series {
		for _, p := range ser.Points {
			sum += p.Value
		}
	}
	return sum
}

// Max returns the largest point value, or 0 for an empty spec.
func (s Spec) Max() float64 {
	var m float64
	for _, ser := range s.Series {
		for _, p := range ser.Points {
			if p.Value > m {
				m = p.Value
			}
		}
	}
	return m
}

// Empty reports whether the spec has no points to draw.
func (s Spec) Empty() bool {
	for _, ser := range s.Series {
		if len(ser.Points) > 0 {
			return false
		}
	}
	return true
}
