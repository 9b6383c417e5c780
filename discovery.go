package hyvamodules

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hyva-themes/hyvamodules/internal/hyvamodules"
	"github.com/rs/zerolog"
)

// Discovery is the module state of a theme directory.
type Discovery struct {
	Cwd        string    // theme tailwind directory
	BaseDir    string    // Magento root, empty when not located
	Located    bool      // hyva-themes.json was found
	Manifest   *Manifest // nil when not located
	ModuleDirs []string  // absolute module source dirs, manifest order

	loader *hyvamodules.FragmentLoader
	logger zerolog.Logger
}

// DiscoverOptions configures NewDiscovery
type DiscoverOptions struct {
	Logger zerolog.Logger
}

// NewDiscovery locates and loads hyva-themes.json relative to cwd.
// A missing manifest is not an error; a malformed one is.
func NewDiscovery(cwd string, opts DiscoverOptions) (*Discovery, error) {
	d := &Discovery{
		Cwd:        cwd,
		ModuleDirs: []string{},
		loader:     hyvamodules.NewFragmentLoader(requireDirFor(cwd)),
		logger:     opts.Logger,
	}

	base, ok := hyvamodules.LocateBaseDir(cwd)
	if !ok {
		d.logger.Debug().Str("cwd", cwd).Msg("no " + hyvamodules.ManifestFile + " found")
		return d, nil
	}

	manifest, err := hyvamodules.LoadManifest(base)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Join(base, hyvamodules.ManifestFile), err)
	}

	d.BaseDir = base
	d.Located = true
	d.Manifest = manifest
	d.ModuleDirs = manifest.ModuleDirs(base)

	d.logger.Debug().Str("base", base).Int("modules", len(d.ModuleDirs)).Msg("loaded " + hyvamodules.ManifestFile)
	return d, nil
}

// Merger returns a merge engine over the discovered modules. All mergers of
// a Discovery share one fragment cache.
func (d *Discovery) Merger() *hyvamodules.Merger {
	return &hyvamodules.Merger{
		Located:    d.Located,
		ModuleDirs: d.ModuleDirs,
		Loader:     d.loader,
		Logger:     d.logger,
	}
}

// MergeTailwindConfig merges module configuration into base. base is
// returned unchanged when no manifest was located.
func (d *Discovery) MergeTailwindConfig(base map[string]any) (map[string]any, error) {
	return d.Merger().Merge(base)
}

// RequireDir is the node_modules directory module configurations reference
// as ${themeDirRequire}.
func (d *Discovery) RequireDir() string {
	return d.loader.RequireDir
}

func requireDirFor(cwd string) string {
	return filepath.Join(cwd, "node_modules")
}

var discover = sync.OnceValues(func() (*Discovery, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return NewDiscovery(cwd, DiscoverOptions{})
})

// Discover returns the process-wide discovery for the working directory.
// It runs once; later calls return the same result.
func Discover() (*Discovery, error) {
	return discover()
}

// MergeTailwindConfig merges the configuration of all discovered modules
// into base, base taking precedence.
func MergeTailwindConfig(base map[string]any) (map[string]any, error) {
	d, err := Discover()
	if err != nil {
		return nil, err
	}
	return d.MergeTailwindConfig(base)
}

// ImportOptions configures the import plugin.
type ImportOptions struct {
	// ModuleDirs overrides the discovered module list when non-nil.
	ModuleDirs []string
}

// ImportModules returns the plugin that appends an @import for every
// module's tailwind-source.css.
func ImportModules(opts ImportOptions) (*ImportPlugin, error) {
	if opts.ModuleDirs != nil {
		return hyvamodules.NewImportPlugin(opts.ModuleDirs), nil
	}

	dirs, err := ModuleDirs()
	if err != nil {
		return nil, err
	}
	return hyvamodules.NewImportPlugin(dirs), nil
}

// ThemesConfig returns the parsed hyva-themes.json, or nil when none was found.
func ThemesConfig() (*Manifest, error) {
	d, err := Discover()
	if err != nil {
		return nil, err
	}
	return d.Manifest, nil
}

// ModuleDirs returns a copy of the discovered module directories.
func ModuleDirs() ([]string, error) {
	d, err := Discover()
	if err != nil {
		return nil, err
	}
	return append([]string{}, d.ModuleDirs...), nil
}

// RequireDir returns the theme's node_modules directory.
func RequireDir() string {
	d, err := Discover()
	if err != nil || d == nil {
		if cwd, err := os.Getwd(); err == nil {
			return requireDirFor(cwd)
		}
		return "node_modules"
	}
	return d.RequireDir()
}
