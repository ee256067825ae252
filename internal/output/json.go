// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// Envelope wraps datasets and charts with metadata. The json, yaml and toml
// formats all write this shape.
type Envelope struct {
	Metadata Metadata           `json:"metadata" yaml:"metadata" toml:"metadata"`
	Datasets []*dataset.Dataset `json:"datasets" yaml:"datasets" toml:"datasets"`
	Charts   []chart.Spec       `json:"charts" yaml:"charts" toml:"charts"`
}

// Metadata describes an export.
type Metadata struct {
	DatasetCount int    `json:"dataset_count" yaml:"dataset_count" toml:"dataset_count"`
	ChartCount   int    `json:"chart_count" yaml:"chart_count" toml:"chart_count"`
	GeneratedAt  string `json:"generated_at" yaml:"generated_at" toml:"generated_at"`
}

// NewEnvelope builds the envelope for b. Nil slices become empty ones.
func NewEnvelope(b Bundle) Envelope {
	env := Envelope{
		Datasets: b.Datasets,
		Charts:   b.Charts,
		Metadata: Metadata{
			DatasetCount: len(b.Datasets),
			ChartCount:   len(b.Charts),
			GeneratedAt:  b.generatedAt(),
		},
	}
	if env.Datasets == nil {
		env.Datasets = []*dataset.Dataset{}
	}
	if env.Charts == nil {
		env.Charts = []chart.Spec{}
	}
	return env
}

// JSONFormatter writes the bundle as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), terminals get indented output and pipes get compact.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// ContentType returns the MIME type.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// Format writes the envelope for b to w.
func (f *JSONFormatter) Format(b Bundle, w io.Writer) error {
	env := NewEnvelope(b)

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(env)
	} else {
		data, err = json.MarshalIndent(env, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	// Non-file writers (buffers, HTTP responses) get pretty output.
	return false
}
