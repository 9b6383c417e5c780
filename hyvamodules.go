// Package hyvamodules merges the Tailwind CSS configuration of Hyvä
// compatible Magento modules into a theme configuration.
//
// Modules are listed in app/etc/hyva-themes.json (written by
// `bin/magento hyva:config:generate`). The file is looked up once per
// process, relative to the working directory, which must be the theme's
// web/tailwind directory.
//
// # Merging configuration
//
// Each module may ship view/frontend/tailwind/tailwind.config.json (or .yaml,
// .yml, .toml). Its content paths are made absolute and the fragments are
// merged in manifest order, the theme configuration last:
//
//	base, _ := hyvamodules.LoadConfigFile("tailwind.config.json")
//	merged, err := hyvamodules.MergeTailwindConfig(base)
//
// Tailwind v2 configurations (with a purge key) receive purge.content and
// purge.safelist; v3 configurations receive content and safelist.
//
// # Stylesheet imports
//
// Modules may also ship view/frontend/tailwind/tailwind-source.css. The
// import plugin appends an @import for each of them:
//
//	plugin, err := hyvamodules.ImportModules(hyvamodules.ImportOptions{})
//	p := &hyvamodules.Processor{Plugins: []hyvamodules.Plugin{plugin}}
//	root, err := p.Process(css, "tailwind-source.css")
//	fmt.Print(root.String())
//
// # CLI Tool
//
//	go install github.com/hyva-themes/hyvamodules/cmd/hyvamodules@latest
package hyvamodules

import (
	"github.com/hyva-themes/hyvamodules/internal/hyvamodules"
)

// Re-exported types
type (
	Manifest     = hyvamodules.Manifest
	Extension    = hyvamodules.Extension
	Version      = hyvamodules.Version
	Plugin       = hyvamodules.Plugin
	Builder      = hyvamodules.Builder
	Processor    = hyvamodules.Processor
	ImportPlugin = hyvamodules.ImportPlugin
	Root         = hyvamodules.Root
	AtRule       = hyvamodules.AtRule

	Merger         = hyvamodules.Merger
	MergeResult    = hyvamodules.MergeResult
	ModuleStatus   = hyvamodules.ModuleStatus
	FragmentLoader = hyvamodules.FragmentLoader
)

// Schema versions
const (
	VersionV2 = hyvamodules.VersionV2
	VersionV3 = hyvamodules.VersionV3
)

// Sentinel errors
var (
	ErrInvalidManifest = hyvamodules.ErrInvalidManifest
	ErrInvalidFragment = hyvamodules.ErrInvalidFragment
)

// LoadConfigFile parses a JSON, YAML or TOML Tailwind configuration.
// ${themeDirRequire} is replaced with RequireDir().
func LoadConfigFile(path string) (map[string]any, error) {
	return hyvamodules.LoadConfigFile(path, RequireDir())
}

// DetectVersion reports the Tailwind schema of a configuration.
func DetectVersion(config map[string]any) Version {
	return hyvamodules.DetectVersion(config)
}
