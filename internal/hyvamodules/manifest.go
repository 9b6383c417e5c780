package hyvamodules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Extensions keeps manifest entries in document order. Module order decides
// merge precedence, so the entries cannot live in a Go map.
type Extensions []Extension

// UnmarshalJSON accepts an object keyed by module name. An array is accepted
// too because PHP encodes an empty extension list as [].
func (e *Extensions) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case nil:
		*e = nil
		return nil
	case json.Delim('['):
		var out Extensions
		for dec.More() {
			var ext Extension
			if err := dec.Decode(&ext); err != nil {
				return fmt.Errorf("extension %d: %w", len(out), err)
			}
			out = append(out, ext)
		}
		*e = out
		return nil
	case json.Delim('{'):
	default:
		return fmt.Errorf("extensions must be an object, got %v", tok)
	}

	var out Extensions
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var ext Extension
		if err := dec.Decode(&ext); err != nil {
			return fmt.Errorf("extension %q: %w", name, err)
		}
		ext.Name = name

		// A repeated key keeps its first position and its last value.
		if i, ok := index[name]; ok {
			out[i] = ext
			continue
		}
		index[name] = len(out)
		out = append(out, ext)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = out
	return nil
}

// LoadManifest reads hyva-themes.json from the base directory.
func LoadManifest(baseDir string) (*Manifest, error) {
	path := filepath.Join(baseDir, ManifestFile)

	// #nosec G304 - path is derived from the located Magento root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return ParseManifest(data)
}

// ParseManifest parses manifest JSON.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return &m, nil
}

// ModuleDirs returns the absolute source directory of every extension, in
// manifest order.
func (m *Manifest) ModuleDirs(baseDir string) []string {
	if m == nil {
		return []string{}
	}

	dirs := make([]string, 0, len(m.Extensions))
	for _, ext := range m.Extensions {
		dirs = append(dirs, filepath.Join(baseDir, ext.Src))
	}
	return dirs
}
