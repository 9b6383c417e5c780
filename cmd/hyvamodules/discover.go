package main

import (
	"github.com/hyva-themes/hyvamodules"
	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/rs/zerolog"
)

// newLogger builds the stderr logger; debug output requires --verbose
func newLogger(g globalConfig) zerolog.Logger {
	return modules.NewLogger(modules.LoggerOptions{
		Level:   "warn",
		Verbose: g.Verbose,
	})
}

// discover loads hyva-themes.json for the configured theme directory
func discover(g globalConfig, logger zerolog.Logger) (*hyvamodules.Discovery, error) {
	return hyvamodules.NewDiscovery(g.Cwd, hyvamodules.DiscoverOptions{
		Logger: modules.WithComponent(logger, "discovery"),
	})
}
