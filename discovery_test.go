package hyvamodules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTheme builds a Magento root with an app/design theme and two modules:
// Hyva_A ships configuration and a stylesheet, Hyva_B configuration only.
func newTheme(t *testing.T) (root, cwd string) {
	t.Helper()
	root = t.TempDir()
	cwd = filepath.Join(root, "app", "design", "frontend", "Acme", "default", "web", "tailwind")
	require.NoError(t, os.MkdirAll(cwd, 0755))

	writeFile(t, filepath.Join(root, "app", "etc", "hyva-themes.json"), `{
		"extensions": {
			"Hyva_A": {"src": "vendor/hyva-themes/a/src"},
			"Hyva_B": {"src": "app/code/Hyva/B"}
		}
	}`)

	a := filepath.Join(root, "vendor", "hyva-themes", "a", "src", "view", "frontend", "tailwind")
	writeFile(t, filepath.Join(a, "tailwind.config.json"), `{"content": ["a.html"], "plugins": ["${themeDirRequire}/@tailwindcss/forms"]}`)
	writeFile(t, filepath.Join(a, "tailwind-source.css"), "@import \"components/a.css\";\n")

	b := filepath.Join(root, "app", "code", "Hyva", "B", "view", "frontend", "tailwind")
	writeFile(t, filepath.Join(b, "tailwind.config.yaml"), "content:\n  - b.html\nsafelist:\n  - hidden\n")

	return root, cwd
}

func TestNewDiscovery(t *testing.T) {
	root, cwd := newTheme(t)

	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)

	assert.True(t, d.Located)
	assert.Equal(t, root, d.BaseDir)
	assert.Equal(t, []string{
		filepath.Join(root, "vendor/hyva-themes/a/src"),
		filepath.Join(root, "app/code/Hyva/B"),
	}, d.ModuleDirs)
	require.Len(t, d.Manifest.Extensions, 2)
	assert.Equal(t, "Hyva_A", d.Manifest.Extensions[0].Name)
	assert.Equal(t, filepath.Join(cwd, "node_modules"), d.RequireDir())
}

func TestNewDiscovery_NotFound(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "a", "b", "c", "d", "e", "f", "g")
	require.NoError(t, os.MkdirAll(cwd, 0755))

	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)
	assert.False(t, d.Located)
	assert.Nil(t, d.Manifest)
	assert.Empty(t, d.ModuleDirs)

	base := map[string]any{"content": []any{"base.html"}, "theme": map[string]any{}}
	got, err := d.MergeTailwindConfig(base)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestNewDiscovery_MalformedManifest(t *testing.T) {
	root, cwd := newTheme(t)
	writeFile(t, filepath.Join(root, "app", "etc", "hyva-themes.json"), `{"extensions": {`)

	d, err := NewDiscovery(cwd, DiscoverOptions{})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestDiscovery_MergeTailwindConfig(t *testing.T) {
	root, cwd := newTheme(t)
	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)

	base := map[string]any{
		"content": []any{"../templates/**/*.phtml"},
		"theme":   map[string]any{"extend": map[string]any{}},
	}
	first, err := d.MergeTailwindConfig(base)
	require.NoError(t, err)
	second, err := d.MergeTailwindConfig(base)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []any{
		filepath.Join(root, "vendor/hyva-themes/a/src/view/frontend/tailwind/a.html"),
		filepath.Join(root, "app/code/Hyva/B/view/frontend/tailwind/b.html"),
		"../templates/**/*.phtml",
	}, first["content"])
	assert.Equal(t, []any{"hidden"}, first["safelist"])
	assert.Equal(t, []any{filepath.Join(cwd, "node_modules", "@tailwindcss/forms")}, first["plugins"])
}

func TestDiscovery_MergeTailwindConfigV2(t *testing.T) {
	root, cwd := newTheme(t)
	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)

	got, err := d.MergeTailwindConfig(map[string]any{"purge": map[string]any{}})
	require.NoError(t, err)

	assert.NotContains(t, got, "content")
	assert.Equal(t, map[string]any{
		"content": []any{
			filepath.Join(root, "vendor/hyva-themes/a/src/view/frontend/tailwind/a.html"),
			filepath.Join(root, "app/code/Hyva/B/view/frontend/tailwind/b.html"),
		},
		"safelist": []any{"hidden"},
	}, got["purge"])
}

func TestDiscovery_MergerResult(t *testing.T) {
	root, cwd := newTheme(t)
	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)

	var merger *Merger = d.Merger()
	var result *MergeResult
	result, err = merger.MergeWithResult(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, VersionV3, result.Version)
	assert.Equal(t, d.ModuleDirs, result.Merged)
	assert.Empty(t, result.Skipped)

	var statuses []ModuleStatus = merger.Inspect()
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].HasStylesheet)
	assert.False(t, statuses[1].HasStylesheet)
	assert.Equal(t, filepath.Join(root, "app/code/Hyva/B/view/frontend/tailwind/tailwind.config.yaml"), statuses[1].FragmentFile)
}

func TestImportModules_Override(t *testing.T) {
	root, cwd := newTheme(t)
	d, err := NewDiscovery(cwd, DiscoverOptions{})
	require.NoError(t, err)

	plugin, err := ImportModules(ImportOptions{ModuleDirs: d.ModuleDirs})
	require.NoError(t, err)

	p := &Processor{Plugins: []Plugin{plugin}}
	doc, err := p.Process([]byte("@tailwind base;\n"), filepath.Join(cwd, "tailwind-source.css"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		`"` + filepath.Join(root, "vendor/hyva-themes/a/src/view/frontend/tailwind/tailwind-source.css") + `"`,
	}, doc.Imports())
}

// The test binary runs from the package directory, which has no
// hyva-themes.json above it.
func TestProcessWideDiscovery_NoManifest(t *testing.T) {
	d, err := Discover()
	require.NoError(t, err)
	assert.False(t, d.Located)

	again, err := Discover()
	require.NoError(t, err)
	assert.Same(t, d, again)

	base := map[string]any{"content": []any{"base.html"}}
	got, err := MergeTailwindConfig(base)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	manifest, err := ThemesConfig()
	require.NoError(t, err)
	assert.Nil(t, manifest)

	dirs, err := ModuleDirs()
	require.NoError(t, err)
	assert.Empty(t, dirs)

	plugin, err := ImportModules(ImportOptions{})
	require.NoError(t, err)
	assert.Empty(t, plugin.ModuleDirs)
}
