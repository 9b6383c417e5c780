package main

import (
	"fmt"

	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Show the files Tailwind will scan for class names",
	Long: `Merge the configuration like the merge command and expand the resulting
content globs. Files ignored by the theme's .gitignore are reported separately.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runContent,
}

func init() {
	f := contentCmd.Flags()
	f.String("base", "tailwind.config.json", "Theme Tailwind configuration (.json, .yaml, .yml, .toml)")
	f.Bool("files", false, "List every matched file")
}

func runContent(cmd *cobra.Command, _ []string) error {
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

	merged, err := d.MergeTailwindConfig(base)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	files, stats, err := modules.ScanContent(modules.ContentPatterns(merged), g.Cwd)
	if err != nil {
		return fmt.Errorf("scan content: %w", err)
	}

	listFiles := getBoolWithFallback("files", "content.files", false)
	modules.NewReporter(cmd.OutOrStdout(), g.Color).PrintContent(files, stats, listFiles)
	return nil
}
