// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
)

func TestCharts(t *testing.T) {
	inTempDir(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"charts"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "NAME")
	for _, name := range chart.Builtin(dataset.Builtin(), 0).Names() {
		assert.Contains(t, out, name)
	}
}

func TestCharts_JSONUsesConfigHeight(t *testing.T) {
	dir := inTempDir(t)
	writeTestFile(t, dir, ".lakedash.yaml", "chart_height: 450\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"charts", "--json"})
	require.NoError(t, cmd.Execute())

	var specs []chart.Spec
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &specs))
	require.Len(t, specs, 13)
	for _, s := range specs {
		assert.Equal(t, 450, s.Height, s.Name)
	}
}

func TestDatasets(t *testing.T) {
	inTempDir(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"datasets"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), dataset.GenderAge)

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"datasets", dataset.CropTypes})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Crop Types (2021 vs. 2024)")
	assert.Contains(t, stdout.String(), "Year")

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"datasets", dataset.GenderAge, "--json"})
	require.NoError(t, cmd.Execute())
	var d dataset.Dataset
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
	assert.Equal(t, 190.0, d.Total())
}

func TestDatasets_Unknown(t *testing.T) {
	inTempDir(t)
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"datasets", "fish_stock"})
	ece := assertExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "unknown dataset")
}

func TestControls(t *testing.T) {
	inTempDir(t)
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"controls", "--json"})
	require.NoError(t, cmd.Execute())

	var got []dispatch.Control
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, dispatch.DefaultControls(), got)
}
