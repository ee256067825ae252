// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the project config from dir. .lakedash.yaml is preferred; when
// it does not exist .lakedash.toml is tried. If neither exists, Load returns
// a zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}

// LoadFile reads one config file, choosing the decoder by extension. Missing
// files are reported with an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, isTOML(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, or TOML when asTOML is set.
func Parse(data []byte, asTOML bool) (*Config, error) {
	var cfg Config
	if asTOML {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// WriteTOML marshals the config to TOML and writes it to w.
func WriteTOML(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
