// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterFormatter(NewYAMLFormatter())
	RegisterFormatter(NewTOMLFormatter())
}

// YAMLFormatter writes the export envelope as YAML.
type YAMLFormatter struct{}

// TOMLFormatter writes the export envelope as TOML.
type TOMLFormatter struct{}

// Compile-time interface checks.
var (
	_ Formatter = (*YAMLFormatter)(nil)
	_ Formatter = (*TOMLFormatter)(nil)
)

// NewYAMLFormatter returns a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter { return &YAMLFormatter{} }

// NewTOMLFormatter returns a new TOMLFormatter.
func NewTOMLFormatter() *TOMLFormatter { return &TOMLFormatter{} }

// Name returns the format name.
func (f *YAMLFormatter) Name() string { return "yaml" }

// ContentType returns the MIME type.
func (f *YAMLFormatter) ContentType() string { return "application/yaml" }

// Format writes the envelope for b to w.
func (f *YAMLFormatter) Format(b Bundle, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewEnvelope(b)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}

// Name returns the format name.
func (f *TOMLFormatter) Name() string { return "toml" }

// ContentType returns the MIME type.
func (f *TOMLFormatter) ContentType() string { return "application/toml" }

// Format writes the envelope for b to w.
func (f *TOMLFormatter) Format(b Bundle, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(NewEnvelope(b)); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}
