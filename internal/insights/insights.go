// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package insights asks an LLM for a short narrative reading of the survey
// datasets.
package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/llm"
)

// ErrEmptyResponse is returned when the model replies with no text.
var ErrEmptyResponse = errors.New("insights: model returned an empty response")

// SystemPrompt frames every insights request.
const SystemPrompt = `You are a data analyst writing for a community that lives beside a lake.
You are given survey results about how the lake affects water access,
agriculture, income and community life. Write plain prose. Refer only to
numbers that appear in the data. Do not invent figures.`

// Options tune a Summarize call. The zero value uses provider defaults.
type Options struct {
	Model     string
	MaxTokens int
	// Focus names datasets to include. Empty means all of them.
	Focus []string
}

// Result is the narrative plus the bookkeeping from the model call.
type Result struct {
	Narrative string    `json:"narrative"`
	Datasets  []string  `json:"datasets"`
	Model     string    `json:"model"`
	Truncated bool      `json:"truncated"`
	Usage     llm.Usage `json:"usage"`
}

// Summarize builds a prompt from tbl and returns the model's narrative.
func Summarize(ctx context.Context, p llm.Provider, tbl *dataset.Table, opts Options) (*Result, error) {
	sets, err := selectDatasets(tbl, opts.Focus)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(sets)
	slog.Debug("requesting insights", "datasets", len(sets), "prompt_bytes", len(prompt))

	resp, err := p.Complete(ctx, llm.Request{
		SystemPrompt: SystemPrompt,
		Prompt:       prompt,
		Model:        opts.Model,
		MaxTokens:    opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	if resp.Truncated() {
		slog.Warn("insights narrative hit the token limit", "max_tokens", opts.MaxTokens)
	}

	names := make([]string, len(sets))
	for i, d := range sets {
		names[i] = d.Name
	}
	return &Result{
		Narrative: text,
		Datasets:  names,
		Model:     resp.Model,
		Truncated: resp.Truncated(),
		Usage:     resp.Usage,
	}, nil
}

func selectDatasets(tbl *dataset.Table, focus []string) ([]*dataset.Dataset, error) {
	if len(focus) == 0 {
		return tbl.All(), nil
	}
	seen := make(map[string]bool, len(focus))
	var out []*dataset.Dataset
	for _, name := range focus {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		d, err := tbl.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildPrompt renders sets as plain-text tables. Output is deterministic for
// a given slice so identical data produces identical requests.
func BuildPrompt(sets []*dataset.Dataset) string {
	var b strings.Builder
	b.WriteString("Survey results follow, one block per dataset.\n\n")
	for _, d := range sets {
		fmt.Fprintf(&b, "## %s (%s)\n", d.Title, d.Name)
		if d.Grouped() {
			fmt.Fprintf(&b, "%s | %s | %s\n", d.CategoryLabel, d.GroupLabel, d.ValueLabel)
			for _, r := range d.Rows {
				fmt.Fprintf(&b, "%s | %s | %s\n", r.Category, r.Group, number(r.Value))
			}
		} else {
			fmt.Fprintf(&b, "%s | %s\n", d.CategoryLabel, d.ValueLabel)
			for _, r := range d.Rows {
				fmt.Fprintf(&b, "%s | %s\n", r.Category, number(r.Value))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Write three to five short paragraphs on what these results say about the lake's impact. ")
	b.WriteString("Close with the two changes respondents most want.\n")
	return b.String()
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
