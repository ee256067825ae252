// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davetashner/lakedash/internal/chartimg"
	"github.com/davetashner/lakedash/internal/page"
)

func init() {
	RegisterFormatter(NewSiteFormatter())
}

// SiteFormatter writes a browsable directory: index.html (grid),
// sections.html, data.json and a PNG per chart under images/.
type SiteFormatter struct {
	// ImageWidth is the PNG width in pixels; zero selects the default.
	ImageWidth int
}

// Compile-time interface checks.
var (
	_ Formatter          = (*SiteFormatter)(nil)
	_ DirectoryFormatter = (*SiteFormatter)(nil)
)

// NewSiteFormatter returns a new SiteFormatter.
func NewSiteFormatter() *SiteFormatter {
	return &SiteFormatter{}
}

// Name returns the format name.
func (s *SiteFormatter) Name() string {
	return "site"
}

// ContentType returns the MIME type.
func (s *SiteFormatter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Format returns an error directing users to use --output (-o) with site.
func (s *SiteFormatter) Format(_ Bundle, _ io.Writer) error {
	return fmt.Errorf("site format requires --output (-o) flag to specify output directory")
}

// FormatDir writes the site for b into dir, creating it if needed.
func (s *SiteFormatter) FormatDir(b Bundle, dir string) error {
	imgDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imgDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pages := []struct {
		file   string
		layout page.Layout
	}{
		{"index.html", page.LayoutGrid},
		{"sections.html", page.LayoutSections},
	}
	for _, p := range pages {
		err := writeFile(filepath.Join(dir, p.file), func(w io.Writer) error {
			return (&HTMLFormatter{Layout: p.layout}).Format(b, w)
		})
		if err != nil {
			return err
		}
	}

	err := writeFile(filepath.Join(dir, "data.json"), func(w io.Writer) error {
		return (&JSONFormatter{}).Format(b, w)
	})
	if err != nil {
		return err
	}

	for _, spec := range b.Charts {
		if spec.Empty() || spec.Max() <= 0 {
			continue
		}
		path := filepath.Join(imgDir, spec.Name+".png")
		err := writeFile(path, func(w io.Writer) error {
			return chartimg.Render(w, spec, chartimg.FormatPNG, s.ImageWidth)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-specified output directory
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
