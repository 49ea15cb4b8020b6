package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "envscope.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	// Arrange
	path := writeJSONConfig(t, `{
		"input": {"schema": "/etc/app/schema.yaml", "env_file": "/etc/app/.env"},
		"output": {"emit": "server", "format": "json"},
		"watch": {"enabled": true},
		"log_level": "warn"
	}`)

	// Act
	cfg, err := parseJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/etc/app/schema.yaml", cfg.Input.SchemaPath)
	assert.Equal(t, "/etc/app/.env", cfg.Input.EnvFile)
	assert.Equal(t, "server", cfg.Output.Emit)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.JSONFilePath, "the json layer never points at another json file")
}

func TestParseJSON_PartialDocument(t *testing.T) {
	path := writeJSONConfig(t, `{"input": {"schema": "schema.yaml"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "schema.yaml", cfg.Input.SchemaPath)
	assert.Equal(t, Output{}, cfg.Output)
	assert.Equal(t, Watch{}, cfg.Watch)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedDocument(t *testing.T) {
	path := writeJSONConfig(t, `{"input": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
