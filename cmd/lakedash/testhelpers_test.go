// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmd redirects the shared rootCmd's I/O and clears flag state left
// over from earlier Execute calls.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetFlags(rootCmd)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag under cmd to its default and clears the
// Changed bit so tests do not contaminate each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}

	// pflag's StringSlice.Set("[]") appends a literal "[]" entry rather than
	// clearing, so slices are nil'd explicitly after the walk.
	insightsDatasets = nil
}

// inTempDir runs the test from an empty working directory with an empty
// global config directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return dir
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// assertExitCode checks that err carries the given exit code.
func assertExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "want exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode())
	return ece
}
