// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package config handles .lakedash.yaml and .lakedash.toml configuration
// files.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/davetashner/lakedash/internal/page"
	"github.com/davetashner/lakedash/internal/session"
)

// Config represents the contents of a lakedash config file. Zero values mean
// "not set" so files can be layered with Merge.
type Config struct {
	Host        string      `yaml:"host,omitempty" toml:"host,omitempty"`
	Port        int         `yaml:"port,omitempty" toml:"port,omitempty"`
	Layout      string      `yaml:"layout,omitempty" toml:"layout,omitempty"`
	ChartHeight int         `yaml:"chart_height,omitempty" toml:"chart_height,omitempty"`
	SessionTTL  string      `yaml:"session_ttl,omitempty" toml:"session_ttl,omitempty"`
	LogFormat   string      `yaml:"log_format,omitempty" toml:"log_format,omitempty"`
	Title       string      `yaml:"title,omitempty" toml:"title,omitempty"`
	Subtitle    string      `yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Theme       ThemeConfig `yaml:"theme,omitempty" toml:"theme,omitempty"`
	LLM         LLMConfig   `yaml:"llm,omitempty" toml:"llm,omitempty"`
}

// ThemeConfig holds page colors as #rgb or #rrggbb strings.
type ThemeConfig struct {
	Primary    string `yaml:"primary,omitempty" toml:"primary,omitempty"`
	Secondary  string `yaml:"secondary,omitempty" toml:"secondary,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
}

// LLMConfig holds settings for the insights command.
type LLMConfig struct {
	Model     string `yaml:"model,omitempty" toml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty" toml:"max_tokens,omitempty"`
}

// Config file names looked up in the working directory, in order.
const (
	FileName     = ".lakedash.yaml"
	TOMLFileName = ".lakedash.toml"
)

// Defaults used when no layer sets a value.
const (
	DefaultHost   = "127.0.0.1"
	DefaultPort   = 8050
	DefaultLayout = page.LayoutGrid
)

// Defaults returns the bottom configuration layer.
func Defaults() *Config {
	theme := page.DefaultTheme()
	return &Config{
		Host:       DefaultHost,
		Port:       DefaultPort,
		Layout:     string(DefaultLayout),
		SessionTTL: session.DefaultTTL.String(),
		LogFormat:  "text",
		Title:      theme.Title,
		Subtitle:   theme.Subtitle,
		Theme: ThemeConfig{
			Primary:    theme.Primary,
			Secondary:  theme.Secondary,
			Background: theme.Background,
		},
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// PageTheme converts the config's text and colors to a page theme. Unset
// fields are filled by the page package's defaults at render time.
func (c *Config) PageTheme() page.Theme {
	return page.Theme{
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		Primary:    c.Theme.Primary,
		Secondary:  c.Theme.Secondary,
		Background: c.Theme.Background,
	}
}

// TTL parses SessionTTL. An empty value selects session.DefaultTTL.
func (c *Config) TTL() (time.Duration, error) {
	if c.SessionTTL == "" {
		return session.DefaultTTL, nil
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("session_ttl: %w", err)
	}
	return d, nil
}
