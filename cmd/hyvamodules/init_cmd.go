package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigFile + " config file",
	Long:  `Create a ` + defaultConfigFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created "+defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# hyvamodules configuration
# Place this file in the theme's web/tailwind directory.

# Shared settings
cwd: .
verbose: false

# Configuration merging
merge:
  base: tailwind.config.json   # .json | .yaml | .yml | .toml
  output: ""                   # empty = stdout
  format: ""                   # json | yaml (default: from output extension)

# Stylesheet imports
css:
  input: tailwind-source.css
  output: ""                   # empty = stdout

# Content inspection
content:
  files: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
