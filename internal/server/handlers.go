// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/chartimg"
	"github.com/davetashner/lakedash/internal/dispatch"
	"github.com/davetashner/lakedash/internal/output"
	"github.com/davetashner/lakedash/internal/page"
)

// chartSummary is one entry of GET /api/charts.
type chartSummary struct {
	Name    string     `json:"name"`
	Kind    chart.Kind `json:"kind"`
	Title   string     `json:"title"`
	Dataset string     `json:"dataset"`
	Image   string     `json:"image"`
}

// selection is the body of GET /api/selection.
type selection struct {
	dispatch.Target
	Title string `json:"title,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handlePage renders layout, or the configured default when layout is empty.
func (s *Server) handlePage(layout page.Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := layout
		if l == "" {
			l = s.opts.Layout
		}
		m := page.Model{
			Layout: l,
			Theme:  s.opts.Theme,
			Charts: s.opts.Charts.All(),
			Nav:    true,
		}
		if l == page.LayoutSidebar {
			m.Controls = s.opts.Controls
			m.Selection = sessionFrom(r).Dispatcher.Resolve()
			m.SelectAction = "/select"
		}

		var buf bytes.Buffer
		if err := page.Render(&buf, m); err != nil {
			slog.Error("render page", "layout", l, "error", err)
			writeError(w, http.StatusInternalServerError, errors.New("page render failed"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

// handleSelect records a control activation for the caller's session and
// sends the browser back to the sidebar. Unknown ids select the placeholder;
// several ids posted together resolve by priority.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
			return
		}
		ids = r.PostForm["control"]
	} else {
		ids = []string{chi.URLParam(r, "control")}
	}

	d := sessionFrom(r).Dispatcher
	if len(ids) == 0 {
		d.Reset()
	} else {
		id := d.ActivateAll(ids...)
		slog.Debug("control activated", "control", id, "reported", len(ids))
	}
	http.Redirect(w, r, "/"+string(page.LayoutSidebar), http.StatusSeeOther)
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	sel := selection{Target: sessionFrom(r).Dispatcher.Resolve()}
	if spec, ok := s.opts.Charts.Get(sel.Chart); ok {
		sel.Title = spec.Title
	}
	writeJSON(w, http.StatusOK, sel)
}

func (s *Server) handleCharts(w http.ResponseWriter, _ *http.Request) {
	specs := s.opts.Charts.All()
	out := make([]chartSummary, len(specs))
	for i, spec := range specs {
		out[i] = chartSummary{
			Name:    spec.Name,
			Kind:    spec.Kind,
			Title:   spec.Title,
			Dataset: spec.Dataset,
			Image:   "/charts/" + spec.Name + ".png",
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	spec, err := s.opts.Charts.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Datasets.All())
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	d, err := s.opts.Datasets.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleControls(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Controls)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	format, err := chartimg.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	spec, err := s.opts.Charts.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	img, err := s.images.Get(spec, format)
	switch {
	case errors.Is(err, chartimg.ErrEmptyChart):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		slog.Error("render chart image", "chart", spec.Name, "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("image render failed"))
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(img)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "format"))
	f, err := output.GetFormatter(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if _, ok := f.(output.DirectoryFormatter); ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("format %q writes a directory; use the export command", name))
		return
	}

	b := output.NewBundle(s.opts.Datasets, s.opts.Charts)
	b.Theme = s.opts.Theme

	var buf bytes.Buffer
	if err := f.Format(b, &buf); err != nil {
		slog.Error("export", "format", name, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("export failed"))
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	if name == "xlsx" {
		w.Header().Set("Content-Disposition", `attachment; filename="lakedash.xlsx"`)
	}
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Warn("write json response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
