// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// versionCmd prints the lakedash version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the lakedash binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString(Version))
	},
}

// versionString marks builds whose version is not a semver tag.
func versionString(v string) string {
	if !semver.IsValid(v) {
		return fmt.Sprintf("lakedash %s (untagged build)", v)
	}
	if pre := semver.Prerelease(v); pre != "" {
		return fmt.Sprintf("lakedash %s (pre-release %s)", v, pre[1:])
	}
	return "lakedash " + v
}
