package hyvamodules

import (
	"fmt"

	"github.com/hyva-themes/hyvamodules/internal/deepmerge"
	"github.com/rs/zerolog"
)

// Merger folds module fragments into a theme configuration.
type Merger struct {
	// Located is false when no hyva-themes.json was found; Merge is then
	// the identity.
	Located    bool
	ModuleDirs []string
	Loader     *FragmentLoader
	Logger     zerolog.Logger
}

// MergeResult describes a merge pass.
type MergeResult struct {
	Config  map[string]any
	Version Version
	Merged  []string // module dirs whose configuration was merged
	Skipped []string // module dirs without a configuration file
}

// Merge returns the merged configuration. Module fragments are merged in
// module order, the base configuration last so it takes precedence.
func (m *Merger) Merge(base map[string]any) (map[string]any, error) {
	result, err := m.MergeWithResult(base)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// MergeWithResult is Merge with bookkeeping for reporting.
func (m *Merger) MergeWithResult(base map[string]any) (*MergeResult, error) {
	version := DetectVersion(base)
	result := &MergeResult{Version: version}

	if !m.Located {
		m.Logger.Debug().Msg("hyva-themes.json not found, returning base configuration")
		result.Config = base
		return result, nil
	}

	loader := m.Loader
	if loader == nil {
		loader = NewFragmentLoader("")
	}

	merged := map[string]any{}
	for _, dir := range m.ModuleDirs {
		path, ok := loader.Find(dir)
		if !ok {
			result.Skipped = append(result.Skipped, dir)
			continue
		}

		fragment, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", dir, err)
		}

		normalized, err := NormalizeFragment(fragment, version, dir)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w: %v", dir, ErrInvalidFragment, err)
		}

		merged = deepmerge.Maps(merged, normalized)
		result.Merged = append(result.Merged, dir)

		m.Logger.Debug().Str("module", dir).Str("file", path).Str("version", string(version)).Msg("merged module configuration")
	}

	result.Config = deepmerge.Maps(merged, base)
	return result, nil
}

// Inspect reports what each module directory contributes.
func (m *Merger) Inspect() []ModuleStatus {
	loader := m.Loader
	if loader == nil {
		loader = NewFragmentLoader("")
	}

	statuses := make([]ModuleStatus, 0, len(m.ModuleDirs))
	for _, dir := range m.ModuleDirs {
		path, _ := loader.Find(dir)
		statuses = append(statuses, ModuleStatus{
			Dir:           dir,
			FragmentFile:  path,
			HasStylesheet: HasStylesheet(dir),
		})
	}
	return statuses
}
