// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/session"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
host: 0.0.0.0
port: 9000
layout: sidebar
chart_height: 420
session_ttl: 10m
title: Lake Survey
theme:
  primary: "#003366"
llm:
  model: claude-sonnet-4-5
  max_tokens: 2048
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "sidebar", cfg.Layout)
	assert.Equal(t, 420, cfg.ChartHeight)
	assert.Equal(t, "Lake Survey", cfg.Title)
	assert.Equal(t, "#003366", cfg.Theme.Primary)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, ttl)
}

func TestLoad_TOMLFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFileName, `
port = 8123
layout = "sections"

[theme]
secondary = "#ff8800"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Port)
	assert.Equal(t, "sections", cfg.Layout)
	assert.Equal(t, "#ff8800", cfg.Theme.Secondary)
}

func TestLoad_YAMLPreferredOverTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "port: 1111\n")
	writeFile(t, dir, TOMLFileName, "port = 2222\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1111, cfg.Port)
}

func TestLoad_InvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "{{invalid yaml")
	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), FileName)

	dir = t.TempDir()
	writeFile(t, dir, TOMLFileName, "port = = 3")
	_, err = Load(dir)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "")
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Port)
}

func TestWrite_RoundTrip(t *testing.T) {
	in := &Config{Port: 8080, Layout: "grid", Theme: ThemeConfig{Primary: "#123456"}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.NotContains(t, buf.String(), "host:", "unset fields are omitted")
	out, err := Parse(buf.Bytes(), false)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	buf.Reset()
	require.NoError(t, WriteTOML(&buf, in))
	out, err = Parse(buf.Bytes(), true)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "lakedash"), GlobalConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/lakedash", GlobalConfigDir())
	assert.Equal(t, "/custom/config/lakedash/config.yaml", GlobalConfigPath())
}

func TestLoadGlobal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lakedash"), 0o750))
	writeFile(t, filepath.Join(dir, "lakedash"), "config.yaml", "layout: sections\nlog_format: json\n")
	cfg, err = LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "sections", cfg.Layout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "127.0.0.1:8050", d.Addr())
	assert.Equal(t, "grid", d.Layout)
	ttl, err := d.TTL()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultTTL, ttl)
	assert.NoError(t, Validate(d))
}

func TestTTL_Empty(t *testing.T) {
	ttl, err := (&Config{}).TTL()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultTTL, ttl)
}

func TestPageTheme(t *testing.T) {
	cfg := &Config{Title: "T", Theme: ThemeConfig{Background: "#fff"}}
	th := cfg.PageTheme()
	assert.Equal(t, "T", th.Title)
	assert.Equal(t, "#fff", th.Background)
	assert.Empty(t, th.Primary)
}
