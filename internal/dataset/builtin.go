// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package dataset

// Names of the built-in survey datasets.
const (
	GenderAge         = "gender_age"
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

// Builtin returns the Alkod Lake survey tables.
//
// Wide tables (agricultural water, income, well-being) are stored melted:
// Category is the year and Group is the measured condition, so each group
// becomes one line/area/bar series keyed by year.
func Builtin() *Table {
	return MustTable(builtinSets()...)
}

func builtinSets() []*Dataset {
	return []*Dataset{
		{
			Name: GenderAge, Title: "Demographics Overview",
			CategoryLabel: "Category", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "Female", Value: 50},
				{Category: "Male", Value: 40},
				{Category: "Age 46-60", Value: 60},
				{Category: "Age 30-45", Value: 30},
				{Category: "Other", Value: 10},
			},
		},
		{
			Name: WaterAvailability, Title: "Water Availability Changes",
			CategoryLabel: "Category", ValueLabel: "Respondents", GroupLabel: "Year",
			Rows: []Row{
				{Group: "2021", Category: "Shortages", Value: 55},
				{Group: "2021", Category: "Improved", Value: 20},
				{Group: "2024", Category: "Shortages", Value: 15},
				{Group: "2024", Category: "Improved", Value: 60},
			},
		},
		{
			Name: AgriWater, Title: "Agricultural Water Availability",
			CategoryLabel: "Year", ValueLabel: "Percentage", GroupLabel: "Condition",
			Rows: []Row{
				{Group: "Shortages", Category: "2021", Value: 80},
				{Group: "Shortages", Category: "2024", Value: 20},
				{Group: "Improved", Category: "2021", Value: 20},
				{Group: "Improved", Category: "2024", Value: 80},
			},
		},
		{
			Name: Irrigation, Title: "Change in Irrigation Practices",
			CategoryLabel: "Practice", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "Improved", Value: 60},
				{Category: "No Change", Value: 25},
				{Category: "Others", Value: 15},
			},
		},
		{
			Name: CropTypes, Title: "Crop Types (2021 vs. 2024)",
			CategoryLabel: "Crop", ValueLabel: "Percentage", GroupLabel: "Year",
			Rows: []Row{
				{Group: "2021", Category: "Mixed Cropping", Value: 45},
				{Group: "2024", Category: "Mixed Cropping", Value: 55},
				{Group: "2021", Category: "Cotton", Value: 55},
				{Group: "2024", Category: "Cotton", Value: 45},
			},
		},
		{
			Name: YieldChanges, Title: "Yield Changes",
			CategoryLabel: "Category", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "10-20%", Value: 40},
				{Category: "20-30%", Value: 35},
				{Category: ">30%", Value: 25},
			},
		},
		{
			Name: Income, Title: "Income Changes Over Time",
			CategoryLabel: "Year", ValueLabel: "Percentage", GroupLabel: "Income Level",
			Rows: []Row{
				{Group: "Low", Category: "2021", Value: 70},
				{Group: "Low", Category: "2024", Value: 40},
				{Group: "Moderate", Category: "2021", Value: 20},
				{Group: "Moderate", Category: "2024", Value: 40},
				{Group: "Significant", Category: "2021", Value: 10},
				{Group: "Significant", Category: "2024", Value: 20},
			},
		},
		{
			Name: Economic, Title: "Economic Activities",
			CategoryLabel: "Activity", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "New Businesses", Value: 40},
				{Category: "No Change", Value: 60},
			},
		},
		{
			Name: Employment, Title: "Employment Opportunities",
			CategoryLabel: "Activity", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "Fewer Jobs", Value: 10},
				{Category: "Same Jobs", Value: 30},
				{Category: "More Jobs", Value: 60},
			},
		},
		{
			Name: Wellbeing, Title: "Well-being Ratings",
			CategoryLabel: "Year", ValueLabel: "Percentage", GroupLabel: "Rating",
			Rows: []Row{
				{Group: "Poor", Category: "2021", Value: 50},
				{Group: "Poor", Category: "2024", Value: 15},
				{Group: "Better", Category: "2021", Value: 30},
				{Group: "Better", Category: "2024", Value: 55},
				{Group: "Much Better", Category: "2021", Value: 20},
				{Group: "Much Better", Category: "2024", Value: 30},
			},
		},
		{
			Name: Community, Title: "Community Benefits",
			CategoryLabel: "Improvement", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "Access to Water", Value: 55},
				{Category: "Crop Productivity", Value: 35},
				{Category: "Others", Value: 10},
			},
		},
		{
			Name: Benefits, Title: "Significant Benefits",
			CategoryLabel: "Category", ValueLabel: "Percentage",
			Rows: []Row{
				{Category: "Increased Productivity", Value: 75},
				{Category: "Others", Value: 25},
			},
		},
		{
			Name: Suggestions, Title: "Suggestions Distribution",
			CategoryLabel: "Suggestion", ValueLabel: "Frequency",
			Rows: []Row{
				{Category: "Storage of Water", Value: 40},
				{Category: "Maintain Lake", Value: 30},
				{Category: "Others", Value: 20},
				{Category: "New Initiatives", Value: 10},
			},
		},
	}
}
