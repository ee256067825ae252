// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package page renders the dashboard HTML. It performs no I/O beyond writing
// to the supplied writer: everything it shows arrives in a Model.
package page

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dispatch"
)

// DefaultSelectAction is where sidebar buttons post their control id.
const DefaultSelectAction = "/select"

// Model is everything a page render needs.
type Model struct {
	Layout Layout
	Theme  Theme

	// Charts holds every spec the layout may reference, keyed by Spec.Name.
	Charts []chart.Spec

	// Controls and Selection drive the sidebar layout.
	Controls     []dispatch.Control
	Selection    dispatch.Target
	SelectAction string

	// Summary overrides the sections layout's card row.
	Summary []SummaryCard

	// Nav adds links between the three layouts to the header.
	Nav bool

	GeneratedAt time.Time
}

type panel struct {
	Name  string
	Title string
}

type sectionData struct {
	ID    string
	Title string
	Rows  [][]panel
}

type controlData struct {
	ID     string
	Label  string
	Active bool
}

// chartView is the client-side payload for one chart.
type chartView struct {
	Spec       chart.Spec `json:"spec"`
	Categories []string   `json:"categories"`
	Max        float64    `json:"max"`
}

type pageData struct {
	Layout       string
	Theme        Theme
	Nav          bool
	GeneratedAt  string
	Rows         [][]panel
	Sections     []sectionData
	Cards        []SummaryCard
	Controls     []controlData
	SelectAction string
	Selected     *panel
	Welcome      string
	ChartData    map[string]chartView
}

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

func tmpl() *template.Template {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // json.Marshal escapes <, > and &
			},
		}).Parse(pageTemplate))
	})
	return pageTmpl
}

// Render writes the page for m to w.
func Render(w io.Writer, m Model) error {
	layout, err := ParseLayout(string(m.Layout))
	if err != nil {
		return err
	}
	data, err := buildPageData(layout, m)
	if err != nil {
		return err
	}
	if err := tmpl().Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

func buildPageData(layout Layout, m Model) (pageData, error) {
	specs := make(map[string]chart.Spec, len(m.Charts))
	for _, s := range m.Charts {
		specs[s.Name] = s
	}

	data := pageData{
		Layout:    string(layout),
		Theme:     m.Theme.merge(DefaultTheme()),
		Nav:       m.Nav,
		ChartData: make(map[string]chartView),
	}
	if !m.GeneratedAt.IsZero() {
		data.GeneratedAt = m.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")
	}

	use := func(name string) (panel, error) {
		s, ok := specs[name]
		if !ok {
			return panel{}, fmt.Errorf("%s layout: %w: %q", layout, chart.ErrUnknownChart, name)
		}
		data.ChartData[name] = chartView{
			Spec:       s,
			Categories: nonNil(s.Categories()),
			Max:        s.Max(),
		}
		return panel{Name: name, Title: s.Title}, nil
	}
	useRows := func(rows [][]string) ([][]panel, error) {
		out := make([][]panel, 0, len(rows))
		for _, row := range rows {
			ps := make([]panel, 0, len(row))
			for _, name := range row {
				p, err := use(name)
				if err != nil {
					return nil, err
				}
				ps = append(ps, p)
			}
			out = append(out, ps)
		}
		return out, nil
	}

	switch layout {
	case LayoutGrid:
		rows, err := useRows(GridRows())
		if err != nil {
			return pageData{}, err
		}
		data.Rows = rows

	case LayoutSections:
		for _, sec := range Sections() {
			rows, err := useRows(sec.Rows)
			if err != nil {
				return pageData{}, err
			}
			data.Sections = append(data.Sections, sectionData{ID: sec.ID, Title: sec.Title, Rows: rows})
		}
		data.Cards = m.Summary
		if data.Cards == nil {
			data.Cards = DefaultSummary()
		}

	case LayoutSidebar:
		data.SelectAction = m.SelectAction
		if data.SelectAction == "" {
			data.SelectAction = DefaultSelectAction
		}
		for _, c := range m.Controls {
			data.Controls = append(data.Controls, controlData{
				ID:     c.ID,
				Label:  c.Label,
				Active: !m.Selection.Placeholder && c.ID == m.Selection.Control,
			})
		}
		if m.Selection.Placeholder || m.Selection.Chart == "" {
			data.Welcome = dispatch.WelcomeMessage
			break
		}
		p, err := use(m.Selection.Chart)
		if err != nil {
			return pageData{}, err
		}
		data.Selected = &p
	}
	return data, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
