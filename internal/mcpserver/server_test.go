// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

func testDeps() Deps {
	tbl := dataset.Builtin()
	return Deps{Datasets: tbl, Charts: chart.Builtin(tbl, 0)}
}

// connect runs a server on an in-memory transport and returns a client
// session bound to it.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, "v1.0.0-test", testDeps(), serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "v1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestNew_RequiresData(t *testing.T) {
	_, err := New("v1", Deps{})
	assert.Error(t, err)

	s, err := New("v1", testDeps())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNew_BadBinding(t *testing.T) {
	d := testDeps()
	d.Controls = []dispatch.Control{{ID: "fish-btn", Label: "Fish", Chart: "fish_stock"}}
	_, err := New("v1", d)
	assert.ErrorIs(t, err, dispatch.ErrUnboundChart)
}

func TestServer_ListsTools(t *testing.T) {
	session := connect(t)

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Tools, 6)

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
		require.NotNil(t, tool.Annotations)
		assert.True(t, tool.Annotations.ReadOnlyHint, "%s should be read-only", tool.Name)
	}
	for _, want := range []string{"list_charts", "get_chart", "list_datasets", "get_dataset", "export", "resolve_control"} {
		assert.True(t, names[want], "should have %s tool", want)
	}
}

func TestServer_CallResolveControl(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "resolve_control",
		Arguments: map[string]any{"controls": []string{"crops-btn"}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, `"chart": "crop_types"`)
}

func TestServer_CallGetChartUnknown(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_chart",
		Arguments: map[string]any{"name": "fish_stock"},
	})
	require.NoError(t, err, "tool errors are reported in the result")
	assert.True(t, res.IsError)
}
