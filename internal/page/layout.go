// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davetashner/lakedash/internal/chart"
)

// ErrUnknownLayout is returned for a layout name that is not supported.
var ErrUnknownLayout = errors.New("unknown layout")

// Layout selects how charts are arranged on the page.
type Layout string

// Supported layouts.
const (
	// LayoutGrid shows every chart in rows of three panels.
	LayoutGrid Layout = "grid"
	// LayoutSections groups charts under anchored headings with summary cards.
	LayoutSections Layout = "sections"
	// LayoutSidebar shows one chart chosen by the sidebar buttons.
	LayoutSidebar Layout = "sidebar"
)

// Layouts lists every supported layout.
func Layouts() []Layout {
	return []Layout{LayoutGrid, LayoutSections, LayoutSidebar}
}

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Layouts() {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be grid, sections, or sidebar)", ErrUnknownLayout, s)
}

// Section is a titled block of chart rows, reachable by its anchor ID.
type Section struct {
	ID    string
	Title string
	Rows  [][]string
}

// SummaryCard is a headline metric shown above the sections.
type SummaryCard struct {
	Title  string
	Value  string
	Change string
}

// GridRows is the chart arrangement of the grid layout.
func GridRows() [][]string {
	return [][]string{
		{chart.Demographics, chart.WaterAvailability, chart.AgriWater},
		{chart.Irrigation, chart.CropTypes, chart.YieldChanges},
		{chart.Income, chart.Economic, chart.Employment},
		{chart.Wellbeing, chart.Community, chart.Benefits},
		{chart.Suggestions},
	}
}

// Sections is the chart arrangement of the sections layout.
func Sections() []Section {
	return []Section{
		{ID: "overview", Title: "Overview", Rows: [][]string{
			{chart.Demographics, chart.WaterAvailability},
		}},
		{ID: "water", Title: "Water Resources", Rows: [][]string{
			{chart.AgriWater},
		}},
		{ID: "agriculture", Title: "Agriculture", Rows: [][]string{
			{chart.Irrigation, chart.CropTypes},
			{chart.YieldChanges},
		}},
		{ID: "economic", Title: "Economic Impact", Rows: [][]string{
			{chart.Income},
			{chart.Economic, chart.Employment},
		}},
		{ID: "community", Title: "Community Impact", Rows: [][]string{
			{chart.Wellbeing},
			{chart.Community, chart.Benefits},
		}},
		{ID: "feedback", Title: "Feedback & Suggestions", Rows: [][]string{
			{chart.Suggestions},
		}},
	}
}

// DefaultSummary is the headline card row of the sections layout.
func DefaultSummary() []SummaryCard {
	return []SummaryCard{
		{Title: "Water Improvement", Value: "60%", Change: "+40%"},
		{Title: "Agricultural Growth", Value: "55%", Change: "+25%"},
		{Title: "Community Impact", Value: "75%", Change: "+45%"},
		{Title: "Economic Growth", Value: "40%", Change: "+30%"},
	}
}

// Theme holds the page-level text and colors. Chart-level styling lives in
// the chart specs themselves.
type Theme struct {
	Title      string `json:"title" yaml:"title"`
	Subtitle   string `json:"subtitle" yaml:"subtitle"`
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Background string `json:"background" yaml:"background"`
}

// DefaultTheme returns the dashboard's stock look.
func DefaultTheme() Theme {
	return Theme{
		Title:      "Alkod Lake Dashboard",
		Subtitle:   "Comprehensive analysis of lake impact on community and environment",
		Primary:    "#2c3e50",
		Secondary:  "#3498db",
		Background: "#f8f9fa",
	}
}

// merge fills empty fields of t from def.
func (t Theme) merge(def Theme) Theme {
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Subtitle == "" {
		t.Subtitle = def.Subtitle
	}
	if t.Primary == "" {
		t.Primary = def.Primary
	}
	if t.Secondary == "" {
		t.Secondary = def.Secondary
	}
	if t.Background == "" {
		t.Background = def.Background
	}
	return t
}
