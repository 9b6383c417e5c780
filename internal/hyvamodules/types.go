// Package hyvamodules merges the Tailwind configuration of Hyvä-compatible
// modules into a theme configuration and generates the stylesheet imports
// for their tailwind-source.css files.
package hyvamodules

import "errors"

// Well-known paths, relative to a base directory or a module directory.
const (
	// ManifestFile is the manifest written by `bin/magento hyva:config:generate`.
	ManifestFile = "app/etc/hyva-themes.json"
	// TailwindDir holds per-module Tailwind sources and configuration.
	TailwindDir = "view/frontend/tailwind"
	// SourceStylesheet is the module stylesheet imported into the theme build.
	SourceStylesheet = TailwindDir + "/tailwind-source.css"
	// PluginName identifies the import generator in pipeline output.
	PluginName = "hyva-postcss-in-modules"
)

// Back trails from the theme's web/tailwind directory to the Magento root.
const (
	// AppBackTrail applies to themes in app/design/frontend/<Vendor>/<theme>/web/tailwind.
	AppBackTrail = "../../../../../../.."
	// VendorBackTrail applies to themes installed in vendor/<vendor>/<package>/web/tailwind.
	VendorBackTrail = "../../../../.."
)

// FragmentFiles are the per-module configuration files, probed in order.
var FragmentFiles = []string{
	TailwindDir + "/tailwind.config.json",
	TailwindDir + "/tailwind.config.yaml",
	TailwindDir + "/tailwind.config.yml",
	TailwindDir + "/tailwind.config.toml",
}

// Version is a Tailwind configuration schema shape.
type Version string

const (
	// VersionV2 nests content and safelist under purge.
	VersionV2 Version = "v2"
	// VersionV3 uses top-level content and safelist keys.
	VersionV3 Version = "v3"
)

// Sentinel errors
var (
	// ErrInvalidManifest indicates the manifest exists but cannot be parsed
	ErrInvalidManifest = errors.New("invalid hyva-themes.json")

	// ErrInvalidFragment indicates a module configuration file cannot be parsed
	ErrInvalidFragment = errors.New("invalid module tailwind configuration")

	// ErrUnsupportedExt indicates a configuration file with an unknown extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, .yml or .toml)")
)

// Extension is one manifest entry.
type Extension struct {
	Name string `json:"-"`
	Src  string `json:"src"`
}

// Manifest is the parsed content of hyva-themes.json.
type Manifest struct {
	Extensions Extensions `json:"extensions"`
}

// ModuleStatus describes what a module directory contributes.
type ModuleStatus struct {
	Dir           string
	FragmentFile  string // empty when the module has no configuration
	HasStylesheet bool
}
