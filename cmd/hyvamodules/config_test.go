package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, defaultConfigFile)
	configContent := `
cwd: /var/www/app/design/frontend/Acme/default/web/tailwind
verbose: true

merge:
  base: tailwind.config.yaml
  output: merged.json
  format: json

css:
  input: src/tailwind-source.css
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "/var/www/app/design/frontend/Acme/default/web/tailwind", k.String("cwd"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "tailwind.config.yaml", k.String("merge.base"))
	assert.Equal(t, "merged.json", k.String("merge.output"))
	assert.Equal(t, "src/tailwind-source.css", k.String("css.input"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.hyvamodules.yaml"))

	g, err := buildGlobalConfig()
	require.NoError(t, err)
	cwd, _ := os.Getwd()
	assert.Equal(t, cwd, g.Cwd)
	assert.False(t, g.Verbose)

	config := buildMergeConfig("/theme")
	assert.Equal(t, "/theme/tailwind.config.json", config.Base)
	assert.Empty(t, config.Output)
	assert.Empty(t, config.Format)

	css := buildCSSConfig("/theme")
	assert.Equal(t, "/theme/tailwind-source.css", css.Input)
	assert.Empty(t, css.Output)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, defaultConfigFile)
	configContent := `
merge:
  base: from-file.json
verbose: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("HYVAMODULES_MERGE_BASE", "from-env.json")
	t.Setenv("HYVAMODULES_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.json", k.String("merge.base"))
	assert.True(t, k.Bool("verbose"))
}

func TestBuildMergeConfig_AbsolutePathsKept(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("merge.base", "/abs/tailwind.config.json"))
	require.NoError(t, k.Set("merge.output", "-"))

	config := buildMergeConfig("/theme")
	assert.Equal(t, "/abs/tailwind.config.json", config.Base)
	assert.Equal(t, "-", config.Output)
}

func TestBuildMergeConfig_FlagKeyWins(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("merge.base", "from-config.json"))
	require.NoError(t, k.Set("base", "from-flag.json"))

	assert.Equal(t, "/theme/from-flag.json", buildMergeConfig("/theme").Base)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
