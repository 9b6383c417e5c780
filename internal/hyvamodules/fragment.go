package hyvamodules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// RequireVar is the placeholder module configuration files use to reference
// the theme's node_modules directory, e.g. "${themeDirRequire}/tailwindcss/colors".
const RequireVar = "themeDirRequire"

// FragmentLoader loads module configuration files.
//
// Loaded fragments are cached by path and every call returns the same map.
// Callers must treat the result as read-only and copy before shaping it.
type FragmentLoader struct {
	// RequireDir replaces ${themeDirRequire} in string values.
	RequireDir string

	mu    sync.Mutex
	cache map[string]map[string]any
}

// NewFragmentLoader creates a loader that expands ${themeDirRequire} to requireDir.
func NewFragmentLoader(requireDir string) *FragmentLoader {
	return &FragmentLoader{
		RequireDir: requireDir,
		cache:      make(map[string]map[string]any),
	}
}

// Find returns the configuration file of a module, if it has one.
func (l *FragmentLoader) Find(moduleDir string) (string, bool) {
	for _, name := range FragmentFiles {
		path := filepath.Join(moduleDir, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// Load returns the parsed fragment at path. The returned map is shared.
func (l *FragmentLoader) Load(path string) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cache == nil {
		l.cache = make(map[string]map[string]any)
	}
	if cached, ok := l.cache[path]; ok {
		return cached, nil
	}

	// #nosec G304 - path comes from the module list in hyva-themes.json
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fragment, err := l.parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.cache[path] = fragment
	return fragment, nil
}

// parse decodes a fragment according to the file extension
func (l *FragmentLoader) parse(data []byte, ext string) (map[string]any, error) {
	var raw map[string]any

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFragment, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFragment, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFragment, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if raw == nil {
		raw = map[string]any{}
	}

	return l.expand(raw).(map[string]any), nil
}

// expand rewrites the tree into map[string]any / []any form and substitutes
// ${themeDirRequire} in strings
func (l *FragmentLoader) expand(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = l.expand(e)
		}
		return out
	case map[any]any:
		// YAML mappings with non-string keys, e.g. spacing: {0.5: 2px}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = l.expand(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = l.expand(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = l.expand(e)
		}
		return out
	case string:
		if l.RequireDir == "" {
			return t
		}
		return strings.ReplaceAll(t, "${"+RequireVar+"}", l.RequireDir)
	default:
		return v
	}
}

// LoadConfigFile parses a theme configuration file. Unlike Load the result is
// not cached and belongs to the caller.
func LoadConfigFile(path, requireDir string) (map[string]any, error) {
	return NewFragmentLoader(requireDir).Load(path)
}
