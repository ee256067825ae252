// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/lakedash/internal/dispatch"
	"github.com/davetashner/lakedash/internal/output"
)

// ListInput is the (empty) input schema of the list tools.
type ListInput struct{}

// ChartInput is the input schema for the get_chart tool.
type ChartInput struct {
	Name string `json:"name" jsonschema:"Chart name, as returned by list_charts"`
}

// DatasetInput is the input schema for the get_dataset tool.
type DatasetInput struct {
	Name string `json:"name" jsonschema:"Dataset name, as returned by list_datasets"`
}

// ExportInput is the input schema for the export tool.
type ExportInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: json, yaml, toml, markdown or html (default: json)"`
}

// ResolveInput is the input schema for the resolve_control tool.
type ResolveInput struct {
	Controls []string `json:"controls" jsonschema:"Control ids activated together, such as crops-btn. Known ids win over unknown ones in sidebar order; an unknown winner resolves to the welcome placeholder."`
}

// chartSummary is one entry of list_charts.
type chartSummary struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Dataset string `json:"dataset"`
}

// datasetSummary is one entry of list_datasets.
type datasetSummary struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Rows    int    `json:"rows"`
	Grouped bool   `json:"grouped"`
}

// resolution is the result of resolve_control.
type resolution struct {
	dispatch.Target
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

type handlers struct {
	deps Deps
}

func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all lakedash tools to the MCP server.
func registerTools(server *mcp.Server, h *handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_charts",
		Description: "List every dashboard chart with its kind, title and source dataset.",
		Annotations: readOnly(),
	}, h.listCharts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_chart",
		Description: "Return the full chart specification (series, points, colors, axes) for one chart.",
		Annotations: readOnly(),
	}, h.getChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_datasets",
		Description: "List the survey datasets behind the charts.",
		Annotations: readOnly(),
	}, h.listDatasets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dataset",
		Description: "Return every row of one survey dataset.",
		Annotations: readOnly(),
	}, h.getDataset)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Export all datasets and charts in a text format (json, yaml, toml, markdown, html).",
		Annotations: readOnly(),
	}, h.export)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_control",
		Description: "Report which chart the sidebar shows after the given controls are activated together.",
		Annotations: readOnly(),
	}, h.resolveControl)
}

func (h *handlers) listCharts(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	specs := h.deps.Charts.All()
	out := make([]chartSummary, len(specs))
	for i, s := range specs {
		out[i] = chartSummary{Name: s.Name, Kind: string(s.Kind), Title: s.Title, Dataset: s.Dataset}
	}
	return jsonResult(out)
}

func (h *handlers) getChart(_ context.Context, _ *mcp.CallToolRequest, in ChartInput) (*mcp.CallToolResult, any, error) {
	spec, err := h.deps.Charts.Lookup(strings.TrimSpace(in.Name))
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(spec)
}

func (h *handlers) listDatasets(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	sets := h.deps.Datasets.All()
	out := make([]datasetSummary, len(sets))
	for i, d := range sets {
		out[i] = datasetSummary{Name: d.Name, Title: d.Title, Rows: len(d.Rows), Grouped: d.Grouped()}
	}
	return jsonResult(out)
}

func (h *handlers) getDataset(_ context.Context, _ *mcp.CallToolRequest, in DatasetInput) (*mcp.CallToolResult, any, error) {
	d, err := h.deps.Datasets.Get(strings.TrimSpace(in.Name))
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(d)
}

func (h *handlers) export(_ context.Context, _ *mcp.CallToolRequest, in ExportInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if in.Format != "" {
		format = strings.ToLower(strings.TrimSpace(in.Format))
	}

	f, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}
	if !isText(f) {
		return nil, nil, fmt.Errorf("format %q is not text and cannot be returned over MCP; use the CLI export command", format)
	}

	var buf bytes.Buffer
	if err := f.Format(output.NewBundle(h.deps.Datasets, h.deps.Charts), &buf); err != nil {
		return nil, nil, fmt.Errorf("export %s: %w", format, err)
	}
	slog.Debug("mcp export", "format", format, "bytes", buf.Len())
	return textResult(buf.String()), nil, nil
}

func (h *handlers) resolveControl(_ context.Context, _ *mcp.CallToolRequest, in ResolveInput) (*mcp.CallToolResult, any, error) {
	d, err := dispatch.New(h.deps.Controls, h.deps.Charts)
	if err != nil {
		return nil, nil, err
	}
	d.ActivateAll(in.Controls...)

	res := resolution{Target: d.Resolve()}
	if res.Placeholder {
		res.Message = dispatch.WelcomeMessage
	} else if spec, ok := h.deps.Charts.Get(res.Chart); ok {
		res.Title = spec.Title
	}
	return jsonResult(res)
}

// isText reports whether f writes a single text stream.
func isText(f output.Formatter) bool {
	if _, ok := f.(output.DirectoryFormatter); ok {
		return false
	}
	ct := f.ContentType()
	return strings.HasPrefix(ct, "text/") ||
		strings.HasPrefix(ct, "application/json") ||
		strings.HasPrefix(ct, "application/yaml") ||
		strings.HasPrefix(ct, "application/toml")
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode result: %w", err)
	}
	return textResult(string(b)), nil, nil
}

func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}
