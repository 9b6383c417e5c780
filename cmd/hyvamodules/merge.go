package main

import (
	"bytes"
	"fmt"
	"os"

	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge module Tailwind configuration into the theme configuration",
	Long: `Merge view/frontend/tailwind/tailwind.config.* of every module listed in
hyva-themes.json into the theme configuration. Module content paths are made
absolute; the theme configuration takes precedence.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMerge,
}

func init() {
	f := mergeCmd.Flags()
	f.String("base", "tailwind.config.json", "Theme Tailwind configuration (.json, .yaml, .yml, .toml)")
	f.StringP("output", "o", "", "Write the merged configuration to a file (default: stdout)")
	f.String("format", "", "Output format: json|yaml (default: from output extension, else json)")
}

func runMerge(cmd *cobra.Command, _ []string) error {
	g, err := buildGlobalConfig()
	if err != nil {
		return err
	}
	config := buildMergeConfig(g.Cwd)
	logger := newLogger(g)

	d, err := discover(g, logger)
	if err != nil {
		return err
	}

	base, err := modules.LoadConfigFile(config.Base, d.RequireDir())
	if err != nil {
		return fmt.Errorf("load theme configuration: %w", err)
	}

	merger := d.Merger()
	merger.Logger = modules.WithComponent(logger, "merge")
	result, err := merger.MergeWithResult(base)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	format := modules.DetermineOutputFormat(config.Format, config.Output)
	if err := writeOutput(cmd, config.Output, func(buf *bytes.Buffer) error {
		return modules.WriteConfig(buf, result.Config, format)
	}); err != nil {
		return err
	}

	if config.Output != "" && config.Output != "-" && !g.Quiet {
		modules.NewReporter(cmd.OutOrStdout(), g.Color).PrintMergeSummary(result, config.Output)
	}

	return nil
}

// writeOutput renders into a buffer and writes it to path, or to the
// command's stdout when path is empty or "-"
func writeOutput(cmd *cobra.Command, path string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
