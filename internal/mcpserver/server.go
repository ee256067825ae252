// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the dashboard's datasets and charts to agents
// over the Model Context Protocol.
package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

// Deps is the read-only state the tools serve from.
type Deps struct {
	Datasets *dataset.Table
	Charts   *chart.Registry
	Controls []dispatch.Control
}

// New creates an MCP server with lakedash's tools registered.
func New(version string, d Deps) (*mcp.Server, error) {
	if d.Datasets == nil || d.Charts == nil {
		return nil, errors.New("mcpserver: datasets and charts are required")
	}
	if d.Controls == nil {
		d.Controls = dispatch.DefaultControls()
	}
	// Fail now on a bad binding rather than on the first resolve_control call.
	if _, err := dispatch.New(d.Controls, d.Charts); err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lakedash",
		Title:   "Lakedash: Lake Impact Survey Dashboard",
		Version: version,
	}, nil)

	registerTools(server, &handlers{deps: d})
	return server, nil
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, d Deps, transport mcp.Transport) error {
	server, err := New(version, d)
	if err != nil {
		return err
	}
	return server.Run(ctx, transport)
}
