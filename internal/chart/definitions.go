// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/davetashner/lakedash/internal/dataset"

// Names of the built-in charts.
const (
	Demographics      = "demographics"
	WaterAvailability = "water_availability"
	AgriWater         = "agri_water"
	Irrigation        = "irrigation"
	CropTypes         = "crop_types"
	YieldChanges      = "yield_changes"
	Income            = "income"
	Economic          = "economic"
	Employment        = "employment"
	Wellbeing         = "wellbeing"
	Community         = "community"
	Benefits          = "benefits"
	Suggestions       = "suggestions"
)

// Definitions returns the dashboard's chart list. height overrides the
// per-chart height when positive.
func Definitions(height int) []Definition {
	if height <= 0 {
		height = DefaultHeight
	}
	defs := []Definition{
		{Name: Demographics, Dataset: dataset.GenderAge, Kind: KindPie,
			Style: Style{Palette: "RdBu", LegendTitle: "Categories"}},
		{Name: WaterAvailability, Dataset: dataset.WaterAvailability, Kind: KindBar,
			Style: Style{Palette: "Set1", GroupBy: true}},
		{Name: AgriWater, Dataset: dataset.AgriWater, Kind: KindLine,
			Style: Style{Palette: "Dark2", GroupBy: true}},
		{Name: Irrigation, Dataset: dataset.Irrigation, Kind: KindBar,
			Style: Style{Palette: "Viridis"}},
		{Name: CropTypes, Dataset: dataset.CropTypes, Kind: KindBar,
			Style: Style{Palette: "Plotly", GroupBy: true}},
		{Name: YieldChanges, Dataset: dataset.YieldChanges, Kind: KindBarH,
			Style: Style{Palette: "Blues"}},
		{Name: Income, Dataset: dataset.Income, Kind: KindArea,
			Style: Style{Palette: "Sunset", GroupBy: true}},
		{Name: Economic, Dataset: dataset.Economic, Kind: KindPie,
			Style: Style{Palette: "Emrld", LegendTitle: "Economic Activities"}},
		{Name: Employment, Dataset: dataset.Employment, Kind: KindBar,
			Style: Style{Palette: "Set3"}},
		{Name: Wellbeing, Dataset: dataset.Wellbeing, Kind: KindBar,
			Style: Style{Palette: "T10", GroupBy: true}},
		{Name: Community, Dataset: dataset.Community, Kind: KindBarH,
			Style: Style{Palette: "Mint"}},
		{Name: Benefits, Dataset: dataset.Benefits, Kind: KindPie,
			Style: Style{Palette: "Bold", LegendTitle: "Benefits"}},
		{Name: Suggestions, Dataset: dataset.Suggestions, Kind: KindBar,
			Style: Style{Palette: "Safe"}},
	}
	for i := range defs {
		defs[i].Style.Height = height
	}
	return defs
}

// Builtin builds the registry for the built-in survey table.
func Builtin(tbl *dataset.Table, height int) *Registry {
	return MustRegistry(tbl, Definitions(height))
}
