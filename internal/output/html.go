// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/davetashner/lakedash/internal/page"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the bundle as a self-contained static dashboard.
type HTMLFormatter struct {
	// Layout is the page arrangement. The sidebar layout needs a server to
	// post selections to, so only grid and sections make sense here.
	Layout page.Layout
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns an HTMLFormatter using the grid layout.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{Layout: page.LayoutGrid}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

// ContentType returns the MIME type.
func (h *HTMLFormatter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Format writes the static page for b to w.
func (h *HTMLFormatter) Format(b Bundle, w io.Writer) error {
	layout := h.Layout
	if layout == "" {
		layout = page.LayoutGrid
	}
	if layout == page.LayoutSidebar {
		return fmt.Errorf("html export: %s layout requires a running server", layout)
	}
	return page.Render(w, page.Model{
		Layout:      layout,
		Theme:       b.Theme,
		Charts:      b.Charts,
		GeneratedAt: b.GeneratedAt,
	})
}
