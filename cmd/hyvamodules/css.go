package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hyva-themes/hyvamodules"
	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/spf13/cobra"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Append @import rules for module tailwind-source.css files",
	Long: `Read the theme stylesheet and append an @import for the
view/frontend/tailwind/tailwind-source.css of every module that ships one,
in hyva-themes.json order.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCSS,
}

func init() {
	f := cssCmd.Flags()
	f.StringP("input", "i", "tailwind-source.css", "Theme stylesheet")
	f.StringP("output", "o", "", "Write the stylesheet to a file (default: stdout)")
}

func runCSS(cmd *cobra.Command, _ []string) error {
	g, err := buildGlobalConfig()
	if err != nil {
		return err
	}
	config := buildCSSConfig(g.Cwd)
	logger := newLogger(g)

	d, err := discover(g, logger)
	if err != nil {
		return err
	}

	// #nosec G304 - path comes from trusted configuration
	src, err := os.ReadFile(config.Input)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}

	plugin, err := hyvamodules.ImportModules(hyvamodules.ImportOptions{ModuleDirs: d.ModuleDirs})
	if err != nil {
		return err
	}

	p := &modules.Processor{
		Plugins: []modules.Plugin{plugin},
		Logger:  modules.WithComponent(logger, "css"),
	}
	root, err := p.Process(src, config.Input)
	if err != nil {
		return fmt.Errorf("process stylesheet: %w", err)
	}

	return writeOutput(cmd, config.Output, func(buf *bytes.Buffer) error {
		_, err := buf.WriteString(root.String())
		return err
	})
}
