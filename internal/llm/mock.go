// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockResponse is one canned reply for MockProvider.
type MockResponse struct {
	Content    string
	StopReason string
	Err        error
}

// MockProvider replays canned responses in order, repeating the last one once
// the list is exhausted, and records every request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	next      int
}

// Compile-time check that MockProvider satisfies the Provider interface.
var _ Provider = (*MockProvider)(nil)

// NewMockProvider returns a mock serving responses. With none, Complete
// returns an empty reply.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Complete records req and returns the next canned response.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{Model: "mock", StopReason: "end_turn"}, nil
	}
	r := m.responses[m.next]
	if m.next < len(m.responses)-1 {
		m.next++
	}
	if r.Err != nil {
		return nil, r.Err
	}

	stop := r.StopReason
	if stop == "" {
		stop = "end_turn"
	}
	return &Response{
		Content:    r.Content,
		Model:      "mock",
		StopReason: stop,
		Usage:      Usage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(r.Content) / 4},
	}, nil
}

// Calls returns a copy of every request received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
