// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package redact strips credentials from text before it reaches stderr or a
// log line.
package redact

import (
	"os"
	"regexp"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// sensitiveEnvVars are read once; their values never appear in output.
var sensitiveEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_AUTH_TOKEN",
}

// minSecretLen keeps short, accidental values (like "1") from turning every
// digit in a message into a placeholder.
const minSecretLen = 8

// anthropicKey matches API keys that were never in the environment, such as
// one pasted into a config file.
var anthropicKey = regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{8,}`)

// Redactor replaces known secrets and key-shaped strings.
type Redactor struct {
	secrets []string
}

// New returns a Redactor for the sensitive variables found through getenv.
func New(getenv func(string) string) *Redactor {
	r := &Redactor{}
	for _, name := range sensitiveEnvVars {
		if v := strings.TrimSpace(getenv(name)); len(v) >= minSecretLen {
			r.secrets = append(r.secrets, v)
		}
	}
	return r
}

// String returns s with every secret replaced by Placeholder.
func (r *Redactor) String(s string) string {
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return anthropicKey.ReplaceAllString(s, Placeholder)
}

var std = sync.OnceValue(func() *Redactor { return New(os.Getenv) })

// String redacts s using the process environment, read on first use.
func String(s string) string {
	return std().String(s)
}
