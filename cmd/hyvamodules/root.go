package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyvamodules",
	Short: "Merge Tailwind configuration and stylesheets of Hyvä modules into a theme",
	Long: `Reads app/etc/hyva-themes.json relative to the theme's web/tailwind directory,
merges the tailwind.config of every listed module into the theme configuration
and appends @import rules for their tailwind-source.css files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except results")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("cwd", ".", "Theme web/tailwind directory")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
