// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/davetashner/lakedash/internal/log"
	"github.com/davetashner/lakedash/internal/page"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks all fields in the config and returns all errors at once.
// Unset fields are valid.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Port < 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port: must be between 1 and 65535, got %d", cfg.Port))
	}

	if strings.ContainsAny(cfg.Host, " /") {
		errs = append(errs, fmt.Sprintf("host: invalid value %q", cfg.Host))
	}

	if cfg.Layout != "" {
		if _, err := page.ParseLayout(cfg.Layout); err != nil {
			errs = append(errs, fmt.Sprintf("layout: %v", err))
		}
	}

	if cfg.ChartHeight != 0 && (cfg.ChartHeight < 100 || cfg.ChartHeight > 2000) {
		errs = append(errs, fmt.Sprintf("chart_height: must be between 100 and 2000, got %d", cfg.ChartHeight))
	}

	if cfg.SessionTTL != "" {
		if d, err := cfg.TTL(); err != nil {
			errs = append(errs, err.Error())
		} else if d <= 0 {
			errs = append(errs, fmt.Sprintf("session_ttl: must be positive, got %s", cfg.SessionTTL))
		}
	}

	if _, err := log.ParseFormat(cfg.LogFormat); err != nil {
		errs = append(errs, fmt.Sprintf("log_format: %v", err))
	}

	for _, c := range []struct{ key, val string }{
		{"theme.primary", cfg.Theme.Primary},
		{"theme.secondary", cfg.Theme.Secondary},
		{"theme.background", cfg.Theme.Background},
	} {
		if c.val != "" && !hexColor.MatchString(c.val) {
			errs = append(errs, fmt.Sprintf("%s: invalid color %q (must be #rgb or #rrggbb)", c.key, c.val))
		}
	}

	if cfg.LLM.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("llm.max_tokens: must be non-negative, got %d", cfg.LLM.MaxTokens))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
