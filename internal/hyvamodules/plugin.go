package hyvamodules

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Builder constructs nodes for plugins.
type Builder interface {
	AtRule(name, params string) *AtRule
}

// Plugin is a stylesheet processing step. Once is invoked a single time per
// processing pass.
type Plugin interface {
	Name() string
	Once(root *Root, b Builder) error
}

type nodeBuilder struct{}

func (nodeBuilder) AtRule(name, params string) *AtRule {
	return &AtRule{Name: name, Params: params}
}

// Processor runs plugins over a stylesheet.
type Processor struct {
	Plugins []Plugin
	Logger  zerolog.Logger
}

// Process parses src and runs every plugin once, in order.
func (p *Processor) Process(src []byte, from string) (*Root, error) {
	root, err := ParseStylesheet(src, from)
	if err != nil {
		return nil, err
	}
	for _, perr := range root.Errors {
		p.Logger.Debug().Str("file", from).Err(perr).Msg("skipped unparsed stylesheet syntax")
	}

	b := nodeBuilder{}
	for _, plugin := range p.Plugins {
		before := len(root.Appended())
		if err := plugin.Once(root, b); err != nil {
			return nil, fmt.Errorf("%s: %w", plugin.Name(), err)
		}
		p.Logger.Debug().
			Str("plugin", plugin.Name()).
			Int("appended", len(root.Appended())-before).
			Msg("plugin finished")
	}

	return root, nil
}

// ImportPlugin appends an @import for every module that ships a
// tailwind-source.css.
type ImportPlugin struct {
	ModuleDirs []string
}

// NewImportPlugin returns the import generator for the given module dirs.
func NewImportPlugin(moduleDirs []string) *ImportPlugin {
	return &ImportPlugin{ModuleDirs: moduleDirs}
}

// Name implements Plugin
func (p *ImportPlugin) Name() string { return PluginName }

// Once implements Plugin
func (p *ImportPlugin) Once(root *Root, b Builder) error {
	for _, dir := range p.ModuleDirs {
		if !HasStylesheet(dir) {
			continue
		}

		path := filepath.Join(dir, SourceStylesheet)
		rule := b.AtRule("import", `"`+path+`"`)
		rule.Source = root.Source
		root.Append(rule)
	}
	return nil
}

// HasStylesheet reports whether a module ships a tailwind-source.css
func HasStylesheet(moduleDir string) bool {
	return fileExists(filepath.Join(moduleDir, SourceStylesheet))
}
