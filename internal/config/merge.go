// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers override on top of base and returns a new Config. Non-zero
// fields of override win; zero-value fields fall through to base. Neither
// argument is modified.
func Merge(base, override *Config) *Config {
	result := Config{}
	if base != nil {
		result = *base
	}
	if override == nil {
		return &result
	}

	if override.Host != "" {
		result.Host = override.Host
	}
	if override.Port != 0 {
		result.Port = override.Port
	}
	if override.Layout != "" {
		result.Layout = override.Layout
	}
	if override.ChartHeight != 0 {
		result.ChartHeight = override.ChartHeight
	}
	if override.SessionTTL != "" {
		result.SessionTTL = override.SessionTTL
	}
	if override.LogFormat != "" {
		result.LogFormat = override.LogFormat
	}
	if override.Title != "" {
		result.Title = override.Title
	}
	if override.Subtitle != "" {
		result.Subtitle = override.Subtitle
	}

	if override.Theme.Primary != "" {
		result.Theme.Primary = override.Theme.Primary
	}
	if override.Theme.Secondary != "" {
		result.Theme.Secondary = override.Theme.Secondary
	}
	if override.Theme.Background != "" {
		result.Theme.Background = override.Theme.Background
	}

	if override.LLM.Model != "" {
		result.LLM.Model = override.LLM.Model
	}
	if override.LLM.MaxTokens != 0 {
		result.LLM.MaxTokens = override.LLM.MaxTokens
	}
	return &result
}

// Resolve stacks the layers in precedence order: defaults, then global, then
// project, then cli. Any layer may be nil.
func Resolve(global, project, cli *Config) *Config {
	return Merge(Merge(Merge(Defaults(), global), project), cli)
}
