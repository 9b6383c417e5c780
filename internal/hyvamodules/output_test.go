package hyvamodules

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		path string
		want OutputFormat
	}{
		{"", "", OutputJSON},
		{"json", "merged.yaml", OutputJSON},
		{"yaml", "", OutputYAML},
		{"YML", "", OutputYAML},
		{"", "merged.yml", OutputYAML},
		{"", "merged.json", OutputJSON},
		{"bogus", "merged.yaml", OutputYAML},
	}

	for _, tt := range tests {
		t.Run(tt.flag+"|"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.path))
		})
	}
}

func TestWriteConfig(t *testing.T) {
	config := map[string]any{
		"content": []any{"/m/view/frontend/tailwind/a.html", "<b>"},
		"theme":   map[string]any{"extend": map[string]any{}},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteConfig(&buf, config, OutputJSON))
		assert.Contains(t, buf.String(), `"<b>"`)

		var back map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, config, back)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteConfig(&buf, config, OutputYAML))

		var back map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, config, back)
	})
}
