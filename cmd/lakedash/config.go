// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/lakedash/internal/config"
)

// Config command flags.
var (
	configGlobal   bool
	configResolved bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate lakedash configuration",
	Long: `Inspect and validate lakedash configuration.

Lakedash reads .lakedash.yaml (or .lakedash.toml) from the working directory,
or the file named by --config. A global config at
~/.config/lakedash/config.yaml provides defaults. Project settings override
global settings, and command flags override both.`,
}

// configValidateCmd checks config files and reports every problem at once.
var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate configuration files",
	Long: `Validate the global config, the project config and the merged result.

With a file argument only that file is checked.

Examples:
  lakedash config validate
  lakedash config validate deploy/lakedash.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by dot-notation key path.

Examples:
  lakedash config get port
  lakedash config get theme.primary
  lakedash config get theme
  lakedash config get --resolved layout
  lakedash config get --global llm.model`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every set configuration value, annotated with whether it comes
from the project config or the global config. Project values override
global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "read only the global config (~/.config/lakedash/config.yaml)")
	configGetCmd.Flags().BoolVar(&configResolved, "resolved", false, "include built-in defaults")

	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).SprintFunc()

	if len(args) == 1 {
		cfg, err := config.LoadFile(args[0])
		if err != nil {
			return exitError(ExitInvalidArgs, "lakedash: %v", err)
		}
		if err := config.Validate(cfg); err != nil {
			return exitError(ExitInvalidArgs, "%s: %v", args[0], err)
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", ok("valid"), args[0])
		return nil
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: loading global config: %v", err)
	}
	project, err := loadFileConfig()
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: loading config: %v", err)
	}
	if err := config.Validate(config.Resolve(global, project, nil)); err != nil {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}
	_, _ = fmt.Fprintf(w, "%s configuration\n", ok("valid"))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	switch {
	case configGlobal:
		g, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		cfg = g
	default:
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := loadFileConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Merge(global, project)
		if configResolved {
			cfg = config.Resolve(global, project, nil)
		}
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "lakedash: %v", err)
	}
	return printValue(cmd, val)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	projectCfg, err := loadFileConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	globalMap, err := flatMap(globalCfg)
	if err != nil {
		return err
	}
	projectMap, err := flatMap(projectCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range projectMap {
		seen[k] = entry{value: v, source: projectSource()}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set; built-in defaults apply.")
		_, _ = fmt.Fprintf(w, "Create %s to override them.\n", config.FileName)
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	projectColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		c := projectColor
		if e.source == "global" {
			c = globalColor
		}
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, c.Sprintf("(%s)", e.source))
	}
	return nil
}

// projectSource names the project layer for config list output.
func projectSource() string {
	if configPath != "" {
		return filepath.Base(configPath)
	}
	return "project"
}

func flatMap(cfg *config.Config) (map[string]any, error) {
	m, err := config.ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return config.FlattenMap(m, ""), nil
}

// printValue outputs a value: scalars as plain text, maps and slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
