// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global lakedash configuration.
// It uses $XDG_CONFIG_HOME/lakedash if set, otherwise ~/.config/lakedash.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lakedash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lakedash")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := LoadFile(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}
