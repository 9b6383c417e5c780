package hyvamodules

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the serialization of a merged configuration
type OutputFormat string

const (
	// OutputJSON writes indented JSON (tailwind.config.js can require() it)
	OutputJSON OutputFormat = "json"
	// OutputYAML writes YAML
	OutputYAML OutputFormat = "yaml"
)

// DetermineOutputFormat selects the output format from the flag, falling
// back to the output file extension and then JSON.
func DetermineOutputFormat(formatFlag, outputPath string) OutputFormat {
	switch strings.ToLower(formatFlag) {
	case "json":
		return OutputJSON
	case "yaml", "yml":
		return OutputYAML
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".yaml", ".yml":
		return OutputYAML
	}

	return OutputJSON
}

// WriteConfig serializes a configuration in the given format
func WriteConfig(w io.Writer, config map[string]any, format OutputFormat) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
