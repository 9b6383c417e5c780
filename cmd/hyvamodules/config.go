package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigFile = ".hyvamodules.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (HYVAMODULES_* prefix)
	if err := k.Load(env.Provider("HYVAMODULES_", ".", func(s string) string {
		// HYVAMODULES_MERGE_BASE -> merge.base
		// HYVAMODULES_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "HYVAMODULES_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// globalConfig holds settings shared by all commands
type globalConfig struct {
	Cwd     string
	Verbose bool
	Quiet   bool
	Color   bool
}

// mergeConfig holds settings of the merge and content commands
type mergeConfig struct {
	Base   string
	Output string
	Format string
}

// cssConfig holds settings of the css command
type cssConfig struct {
	Input  string
	Output string
}

// buildGlobalConfig constructs the shared settings from koanf state.
func buildGlobalConfig() (globalConfig, error) {
	cwd := getStringWithFallback("cwd", "cwd", ".")
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return globalConfig{}, fmt.Errorf("resolve theme directory %s: %w", cwd, err)
	}

	return globalConfig{
		Cwd:     abs,
		Verbose: getBoolWithFallback("verbose", "verbose", false),
		Quiet:   getBoolWithFallback("quiet", "quiet", false),
		Color:   getBoolWithFallback("color", "color", false),
	}, nil
}

// buildMergeConfig constructs the merge settings from koanf state.
// Relative paths are resolved against the theme directory.
func buildMergeConfig(cwd string) mergeConfig {
	config := mergeConfig{
		Base:   getStringWithFallback("base", "merge.base", "tailwind.config.json"),
		Output: getStringWithFallback("output", "merge.output", ""),
		Format: getStringWithFallback("format", "merge.format", ""),
	}
	config.Base = resolvePath(cwd, config.Base)
	config.Output = resolvePath(cwd, config.Output)
	return config
}

// buildCSSConfig constructs the css settings from koanf state.
func buildCSSConfig(cwd string) cssConfig {
	return cssConfig{
		Input:  resolvePath(cwd, getStringWithFallback("input", "css.input", "tailwind-source.css")),
		Output: resolvePath(cwd, getStringWithFallback("output", "css.output", "")),
	}
}

// resolvePath makes p absolute relative to dir; empty stays empty (stdout)
func resolvePath(dir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
