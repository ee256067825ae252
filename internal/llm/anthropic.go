// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Provider defaults.
const (
	DefaultModel     = "claude-sonnet-4-5-20250929"
	DefaultMaxTokens = 2048
	// defaultMaxRetries covers 429 and 5xx responses; the SDK backs off.
	defaultMaxRetries = 3
)

// AnthropicProvider implements Provider using the official Anthropic SDK.
type AnthropicProvider struct {
	client    anthropic.Client
	model     string
	maxTokens int
	retries   int
}

// Compile-time check that AnthropicProvider satisfies the Provider interface.
var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures an AnthropicProvider.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	retries   int
}

// WithAPIKey sets the API key. Without it the provider reads
// ANTHROPIC_API_KEY from the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) { c.apiKey = key }
}

// WithBaseURL points the client at another endpoint, such as a test server.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) { c.baseURL = url }
}

// WithModel overrides DefaultModel. Empty values are ignored.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithMaxTokens overrides DefaultMaxTokens. Non-positive values are ignored.
func WithMaxTokens(n int) AnthropicOption {
	return func(c *anthropicConfig) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithMaxRetries sets the retry budget for transient errors.
func WithMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) { c.retries = n }
}

// NewAnthropicProvider creates a provider. It returns ErrNoAPIKey when no key
// is available from either an option or the environment.
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	cfg := anthropicConfig{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		retries:   defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	}
	if cfg.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.apiKey),
		option.WithMaxRetries(cfg.retries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client:    anthropic.NewClient(clientOpts...),
		model:     cfg.model,
		maxTokens: cfg.maxTokens,
		retries:   cfg.retries,
	}, nil
}

// Complete sends one user message to the Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}
	maxTokens := p.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	return &Response{
		Content:    sb.String(),
		Model:      string(msg.Model),
		StopReason: string(msg.StopReason),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the provider's default model.
func (p *AnthropicProvider) Model() string { return p.model }

// MaxTokens returns the provider's default output limit.
func (p *AnthropicProvider) MaxTokens() int { return p.maxTokens }

// MaxRetries returns the configured retry budget.
func (p *AnthropicProvider) MaxRetries() int { return p.retries }
