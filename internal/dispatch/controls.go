// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package dispatch

import "github.com/davetashner/lakedash/internal/chart"

// WelcomeMessage is shown in the content pane before any control is pressed
// or when the pressed control is not recognized.
const WelcomeMessage = "Welcome to the Dashboard!"

// DefaultControls is the interactive sidebar, in display and priority order.
func DefaultControls() []Control {
	return []Control{
		{ID: "demograph-btn", Label: "Demograph", Chart: chart.Demographics},
		{ID: "household-water-btn", Label: "Household Water Improvement", Chart: chart.WaterAvailability},
		{ID: "agriculture-water-btn", Label: "Agriculture and Irrigation Water Improvement", Chart: chart.AgriWater},
		{ID: "yield-btn", Label: "Yield from Agriculture", Chart: chart.YieldChanges},
		{ID: "crops-btn", Label: "Crops", Chart: chart.CropTypes},
		{ID: "economic-growth-btn", Label: "Economic Growth", Chart: chart.Economic},
		{ID: "livestock-btn", Label: "Livestock", Chart: chart.Employment},
		{ID: "well-being-btn", Label: "Well-being and Community Benefits", Chart: chart.Wellbeing},
		{ID: "suggestions-btn", Label: "Suggestions", Chart: chart.Suggestions},
	}
}
