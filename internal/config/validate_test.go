// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyIsValid(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"negative port", Config{Port: -1}, "port: must be between 1 and 65535"},
		{"huge port", Config{Port: 70000}, "port:"},
		{"bad host", Config{Host: "local host"}, "host: invalid value"},
		{"bad layout", Config{Layout: "carousel"}, "layout: unknown layout"},
		{"short chart", Config{ChartHeight: 20}, "chart_height: must be between 100 and 2000"},
		{"bad ttl", Config{SessionTTL: "soon"}, "session_ttl:"},
		{"zero ttl", Config{SessionTTL: "0s"}, "session_ttl: must be positive"},
		{"bad log format", Config{LogFormat: "xml"}, "log_format: unknown log format"},
		{"bad color", Config{Theme: ThemeConfig{Primary: "navy"}}, `theme.primary: invalid color "navy"`},
		{"bad background", Config{Theme: ThemeConfig{Background: "#12345"}}, "theme.background"},
		{"negative tokens", Config{LLM: LLMConfig{MaxTokens: -5}}, "llm.max_tokens"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	err := Validate(&Config{Port: -1, Layout: "x", Theme: ThemeConfig{Secondary: "blue"}})
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "config validation failed:\n  "))
	assert.Contains(t, msg, "port:")
	assert.Contains(t, msg, "layout:")
	assert.Contains(t, msg, "theme.secondary:")
}

func TestValidate_ShortHexColor(t *testing.T) {
	assert.NoError(t, Validate(&Config{Theme: ThemeConfig{Primary: "#abc", Secondary: "#A1B2C3"}}))
}
