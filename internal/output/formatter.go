// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for exporting the dashboard's
// datasets and charts in various formats.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/page"
)

// ErrUnknownFormat is returned by GetFormatter for unregistered names.
var ErrUnknownFormat = errors.New("unknown format")

// Bundle is everything an export contains.
type Bundle struct {
	Datasets    []*dataset.Dataset
	Charts      []chart.Spec
	Theme       page.Theme
	GeneratedAt time.Time
}

// NewBundle collects every dataset and chart, stamped with the current time.
func NewBundle(tbl *dataset.Table, charts *chart.Registry) Bundle {
	return Bundle{
		Datasets:    tbl.All(),
		Charts:      charts.All(),
		GeneratedAt: time.Now(),
	}
}

func (b Bundle) generatedAt() string {
	t := b.GeneratedAt
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// Formatter writes a bundle to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "markdown", "xlsx").
	Name() string

	// ContentType returns the MIME type of the output.
	ContentType() string

	// Format writes the bundle to w.
	Format(b Bundle, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(b Bundle, dir string) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error
// wrapping ErrUnknownFormat if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, name, strings.Join(names(), ", "))
	}
	return f, nil
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
