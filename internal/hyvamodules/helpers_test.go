package hyvamodules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates path (and its parent directories) with content
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newModule creates a module directory below root with an optional
// tailwind.config.json and tailwind-source.css
func newModule(t *testing.T, root, name, config, css string) string {
	t.Helper()
	dir := filepath.Join(root, name, "src")
	require.NoError(t, os.MkdirAll(dir, 0755))
	if config != "" {
		writeFile(t, filepath.Join(dir, TailwindDir, "tailwind.config.json"), config)
	}
	if css != "" {
		writeFile(t, filepath.Join(dir, SourceStylesheet), css)
	}
	return dir
}
