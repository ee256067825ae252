// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package chartimg renders chart specs to PNG or SVG images on the server.
// Grouped bar charts are drawn stacked, one segment per group.
package chartimg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/davetashner/lakedash/internal/chart"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrEmptyChart    = errors.New("chart has no data to draw")
)

// Format is an image encoding.
type Format string

// Supported image formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// DefaultWidth is the image width in pixels.
const DefaultWidth = 800

// ParseFormat validates an image format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be png or svg)", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Render draws spec as an image of the given width and writes it to w. A
// non-positive width selects DefaultWidth.
func Render(w io.Writer, spec chart.Spec, format Format, width int) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	if spec.Empty() || spec.Max() <= 0 {
		return fmt.Errorf("render %s: %w", spec.Name, ErrEmptyChart)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	height := spec.Height
	if height <= 0 {
		height = chart.DefaultHeight
	}

	var err error
	switch {
	case spec.Kind == chart.KindPie:
		err = renderPie(w, spec, format, width, height)
	case spec.Kind == chart.KindLine || spec.Kind == chart.KindArea:
		err = renderLines(w, spec, format, width, height)
	case spec.Kind == chart.KindBar && len(spec.Series) == 1:
		err = renderBars(w, spec, format, width, height)
	default:
		err = renderStacked(w, spec, format, width, height)
	}
	if err != nil {
		return fmt.Errorf("render %s as %s: %w", spec.Name, format, err)
	}
	return nil
}

// hexColor converts "#rrggbb" or "#rgb" to a drawing color.
func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// pointColor returns the fill for point i of series si, matching the
// client-side renderer. Ungrouped specs color each point from the palette;
// grouped specs use the series color.
func pointColor(spec chart.Spec, si, i int) drawing.Color {
	if !spec.Grouped && len(spec.Colors) > 0 {
		return hexColor(spec.Colors[i%len(spec.Colors)])
	}
	if c := spec.Series[si].Color; c != "" {
		return hexColor(c)
	}
	if len(spec.Colors) == 0 {
		return gochart.ColorBlue
	}
	return hexColor(spec.Colors[i%len(spec.Colors)])
}

func seriesColor(spec chart.Spec, si int) drawing.Color {
	if c := spec.Series[si].Color; c != "" {
		return hexColor(c)
	}
	if len(spec.Colors) == 0 {
		return gochart.ColorBlue
	}
	return hexColor(spec.Colors[si%len(spec.Colors)])
}

func titleStyle() gochart.Style {
	return gochart.Style{FontSize: 12}
}

func renderPie(w io.Writer, spec chart.Spec, format Format, width, height int) error {
	values := make([]gochart.Value, 0, len(spec.Series[0].Points))
	for i, p := range spec.Series[0].Points {
		if p.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: gochart.Style{FillColor: pointColor(spec, 0, i), StrokeColor: drawing.ColorWhite, FontSize: 9},
		})
	}
	pie := gochart.PieChart{
		Title:      spec.Title,
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Values:     values,
	}
	return pie.Render(format.provider(), w)
}

func renderBars(w io.Writer, spec chart.Spec, format Format, width, height int) error {
	pts := spec.Series[0].Points
	bars := make([]gochart.Value, len(pts))
	for i, p := range pts {
		bars[i] = gochart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: gochart.Style{FillColor: pointColor(spec, 0, i), StrokeColor: pointColor(spec, 0, i)},
		}
	}
	bc := gochart.BarChart{
		Title:      spec.Title,
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarWidth:   barWidth(width, len(pts)),
		YAxis:      gochart.YAxis{Name: spec.YAxis, Range: &gochart.ContinuousRange{Min: 0, Max: spec.Max() * 1.1}},
		Bars:       bars,
	}
	return bc.Render(format.provider(), w)
}

// renderStacked covers horizontal bars and grouped bars. Each category is one
// stacked bar; each series contributes one segment.
func renderStacked(w io.Writer, spec chart.Spec, format Format, width, height int) error {
	cats := spec.Categories()
	idx := make(map[string]int, len(cats))
	bars := make([]gochart.StackedBar, len(cats))
	for i, c := range cats {
		idx[c] = i
		bars[i] = gochart.StackedBar{Name: c}
	}
	for si, s := range spec.Series {
		for pi, p := range s.Points {
			if p.Value <= 0 {
				continue
			}
			col := pointColor(spec, si, pi)
			b := &bars[idx[p.Label]]
			b.Values = append(b.Values, gochart.Value{
				Label: s.Name,
				Value: p.Value,
				Style: gochart.Style{FillColor: col, StrokeColor: col},
			})
		}
	}
	kept := bars[:0]
	for _, b := range bars {
		if len(b.Values) > 0 {
			kept = append(kept, b)
		}
	}
	sbc := gochart.StackedBarChart{
		Title:        spec.Title,
		TitleStyle:   titleStyle(),
		Width:        width,
		Height:       height,
		Background:   gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarSpacing:   8,
		IsHorizontal: spec.Kind.Horizontal(),
		Bars:         kept,
	}
	return sbc.Render(format.provider(), w)
}

func renderLines(w io.Writer, spec chart.Spec, format Format, width, height int) error {
	cats := spec.Categories()
	idx := make(map[string]int, len(cats))
	ticks := make([]gochart.Tick, len(cats))
	for i, c := range cats {
		idx[c] = i
		ticks[i] = gochart.Tick{Value: float64(i), Label: c}
	}

	series := make([]gochart.Series, 0, len(spec.Series))
	for si, s := range spec.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, float64(idx[p.Label]))
			ys = append(ys, p.Value)
		}
		col := seriesColor(spec, si)
		st := gochart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 3}
		if spec.Kind == chart.KindArea {
			st.FillColor = col.WithAlpha(90)
		}
		series = append(series, gochart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}

	maxX := float64(len(cats) - 1)
	if maxX < 1 {
		maxX = 1
	}
	ch := gochart.Chart{
		Title:      spec.Title,
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: spec.XAxis, Ticks: ticks, Range: &gochart.ContinuousRange{Min: 0, Max: maxX}},
		YAxis:      gochart.YAxis{Name: spec.YAxis, Range: &gochart.ContinuousRange{Min: 0, Max: spec.Max() * 1.1}},
		Series:     series,
	}
	if spec.ShowLegend {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	}
	return ch.Render(format.provider(), w)
}

func barWidth(width, n int) int {
	if n == 0 {
		return 0
	}
	bw := (width - 80) / n * 3 / 4
	if bw < 8 {
		bw = 8
	}
	return bw
}
