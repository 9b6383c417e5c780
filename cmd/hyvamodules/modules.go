package main

import (
	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:     "modules",
	Aliases: []string{"ls"},
	Short:   "List modules from hyva-themes.json and what they contribute",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := buildGlobalConfig()
		if err != nil {
			return err
		}

		d, err := discover(g, newLogger(g))
		if err != nil {
			return err
		}

		reporter := modules.NewReporter(cmd.OutOrStdout(), g.Color)
		reporter.PrintModules(d.BaseDir, d.Merger().Inspect())
		return nil
	},
}
