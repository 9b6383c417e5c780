package hyvamodules

import (
	"fmt"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
)

// DetectVersion infers the Tailwind schema of a theme configuration.
// Tailwind v2 uses purge.content, v3 uses content.
func DetectVersion(base map[string]any) Version {
	if _, ok := base["purge"]; ok {
		return VersionV2
	}
	return VersionV3
}

// NormalizeFragment returns a copy of a module fragment shaped for the
// target version, with content paths made absolute below the module's
// view/frontend/tailwind directory.
//
// The fragment itself is never modified. Only purge.content and
// purge.safelist survive; other purge options (enabled, transform, extract,
// preserveHtmlElements, layers, mode, options) are dropped.
func NormalizeFragment(fragment map[string]any, version Version, moduleDir string) (map[string]any, error) {
	out := make(map[string]any, len(fragment)+1)
	for k, v := range fragment {
		switch k {
		case "content", "safelist", "purge":
			continue
		}
		out[k] = v
	}

	var paths []string
	if raw := lookupList(fragment, "content"); len(raw) > 0 {
		if err := decodeStrings(raw, &paths); err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
	}

	if len(paths) > 0 {
		abs := make([]any, len(paths))
		for i, p := range paths {
			abs[i] = filepath.Join(moduleDir, TailwindDir, p)
		}
		setForVersion(out, version, "content", abs)
	}

	if safelist := lookupList(fragment, "safelist"); len(safelist) > 0 {
		setForVersion(out, version, "safelist", append([]any(nil), safelist...))
	}

	return out, nil
}

// lookupList resolves a list in precedence order: purge.<key>, then <key>,
// then nothing. An empty list falls through to the next candidate.
func lookupList(fragment map[string]any, key string) []any {
	candidates := []func() any{
		func() any {
			purge, ok := fragment["purge"].(map[string]any)
			if !ok {
				return nil
			}
			return purge[key]
		},
		func() any { return fragment[key] },
	}

	for _, candidate := range candidates {
		if list := asList(candidate()); len(list) > 0 {
			return list
		}
	}
	return nil
}

// asList accepts []any and the typed slices Go callers tend to build
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// setForVersion places value at the top level for v3 and under purge otherwise
func setForVersion(out map[string]any, version Version, key string, value []any) {
	if version == VersionV3 {
		out[key] = value
		return
	}

	purge, ok := out["purge"].(map[string]any)
	if !ok {
		purge = make(map[string]any, 2)
		out["purge"] = purge
	}
	purge[key] = value
}

// decodeStrings converts a decoded list into []string, rejecting entries
// such as {raw: "..."} that cannot be resolved to a path
func decodeStrings(raw []any, out *[]string) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.Decode(raw)
}
