// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPalette is used when a style names no palette.
const DefaultPalette = "default"

// palettes holds the qualitative and sequential color sequences the survey
// charts are drawn with.
var palettes = map[string][]string{
	DefaultPalette: {
		"#4f46e5", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
		"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#6366f1",
	},
	"rdbu": {
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	},
	"set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"dark2": {
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
		"#66a61e", "#e6ab02", "#a6761d", "#666666",
	},
	"viridis": {
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	},
	"plotly": {
		"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
		"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
	},
	"blues": {
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	},
	"sunset": {
		"#f3e79b", "#fac484", "#f8a07e", "#eb7f86", "#ce6693", "#a059a0", "#5c53a5",
	},
	"emrld": {
		"#d3f2a3", "#97e196", "#6cc08b", "#4c9b82", "#217a79", "#105965", "#074050",
	},
	"set3": {
		"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
		"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
	},
	"t10": {
		"#4c78a8", "#f58518", "#e45756", "#72b7b2", "#54a24b",
		"#eeca3b", "#b279a2", "#ff9da6", "#9d755d", "#bab0ac",
	},
	"mint": {
		"#e4f1e1", "#b4d9cc", "#89c0b6", "#63a6a0", "#448c8a", "#287274", "#0d585f",
	},
	"bold": {
		"#7f3c8d", "#11a579", "#3969ac", "#f2b701", "#e73f74", "#80ba5a",
		"#e68310", "#008695", "#cf1c90", "#f97b72", "#a5aa99",
	},
	"safe": {
		"#88ccee", "#cc6677", "#ddcc77", "#117733", "#332288", "#aa4499",
		"#44aa99", "#999933", "#882255", "#661100", "#888888",
	},
}

// Palette returns a copy of the named color sequence. Names are
// case-insensitive; an empty name selects DefaultPalette.
func Palette(name string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultPalette
	}
	p, ok := palettes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}
	return append([]string(nil), p...), nil
}

// PaletteNames returns every palette name, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// cycle returns n colors taken from p, wrapping around as needed.
func cycle(p []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = p[i%len(p)]
	}
	return out
}
