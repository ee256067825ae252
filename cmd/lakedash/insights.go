// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/lakedash/internal/config"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/insights"
	"github.com/davetashner/lakedash/internal/llm"
)

// Insights-specific flag values.
var (
	insightsModel     string
	insightsMaxTokens int
	insightsDatasets  []string
	insightsJSON      bool
)

// insightsCmd asks an LLM to narrate the survey results.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Write a narrative summary of the survey with an LLM",
	Long: `Send the survey datasets to Anthropic's Messages API and print a short
narrative reading of them. Requires ANTHROPIC_API_KEY.

The model and output limit come from the llm section of the config file,
overridden by flags.

Examples:
  lakedash insights
  lakedash insights --dataset income --dataset employment
  lakedash insights --model claude-haiku-4-5 --json`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsModel, "model", "", "model name (default: "+llm.DefaultModel+")")
	insightsCmd.Flags().IntVar(&insightsMaxTokens, "max-tokens", 0, "maximum tokens in the reply")
	insightsCmd.Flags().StringSliceVar(&insightsDatasets, "dataset", nil, "limit the summary to these datasets (repeatable)")
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "print the result as JSON")
}

// newProvider builds the LLM client. Tests replace it with a mock.
var newProvider = func(cfg *config.Config) (llm.Provider, error) {
	return llm.NewAnthropicProvider(
		llm.WithModel(cfg.LLM.Model),
		llm.WithMaxTokens(cfg.LLM.MaxTokens),
	)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&config.Config{
		LLM: config.LLMConfig{Model: insightsModel, MaxTokens: insightsMaxTokens},
	})
	if err != nil {
		return err
	}

	p, err := newProvider(cfg)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return exitError(ExitInvalidArgs, "lakedash: %v", err)
		}
		return err
	}

	res, err := insights.Summarize(cmd.Context(), p, dataset.Builtin(), insights.Options{
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Focus:     insightsDatasets,
	})
	switch {
	case errors.Is(err, dataset.ErrUnknownDataset):
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	case err != nil:
		return exitError(ExitRenderFailure, "lakedash: %v", err)
	}
	slog.Debug("insights complete", "model", res.Model,
		"input_tokens", res.Usage.InputTokens, "output_tokens", res.Usage.OutputTokens)

	w := cmd.OutOrStdout()
	if insightsJSON {
		return writeJSON(w, res)
	}
	_, err = fmt.Fprintln(w, res.Narrative)
	return err
}
