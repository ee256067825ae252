// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package listing

import (
	"github.com/fatih/color"

	"github.com/davetashner/lakedash/internal/chart"
)

// Shared color printers.
var (
	colorCyan    = color.New(color.FgCyan)
	colorMagenta = color.New(color.FgMagenta)
	colorGreen   = color.New(color.FgGreen)
	colorYellow  = color.New(color.FgYellow)
	colorBold    = color.New(color.Bold)
)

// ColorKind colors a chart kind by family.
func ColorKind(val string) string {
	switch chart.Kind(val) {
	case chart.KindPie:
		return colorMagenta.Sprint(val)
	case chart.KindBar, chart.KindBarH:
		return colorCyan.Sprint(val)
	case chart.KindLine, chart.KindArea:
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// ColorGrouped highlights "yes" in grouped columns.
func ColorGrouped(val string) string {
	if val == "yes" {
		return colorYellow.Sprint(val)
	}
	return val
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
