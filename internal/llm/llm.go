// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package llm is a small provider-agnostic client for text completions. The
// insights command is its only caller.
package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned when a provider has no credentials to use.
var ErrNoAPIKey = errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt and returns the model's reply. Implementations
	// must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request. Zero fields select the
// provider's defaults.
type Request struct {
	SystemPrompt string
	Prompt       string
	Model        string
	MaxTokens    int
	Temperature  *float64
}

// Response holds the result of a completion call.
type Response struct {
	Content string
	// Model is the model that served the request, which may differ from the
	// one asked for.
	Model      string
	StopReason string
	Usage      Usage
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Truncated reports whether the reply was cut off by the token limit.
func (r *Response) Truncated() bool {
	return r.StopReason == "max_tokens"
}
