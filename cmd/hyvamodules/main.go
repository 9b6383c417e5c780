// Package main provides the hyvamodules CLI for merging the Tailwind
// configuration of Hyvä modules into a theme build.
package main

import (
	"os"

	modules "github.com/hyva-themes/hyvamodules/internal/hyvamodules"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		modules.NewReporter(os.Stderr, false).PrintError(err)
		os.Exit(1)
	}
}
