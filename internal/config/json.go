package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	Input struct {
		SchemaPath string `json:"schema"`
		EnvFile    string `json:"env_file"`
	} `json:"input,omitempty"`

	Output struct {
		Emit   string `json:"emit"`
		Format string `json:"format"`
	} `json:"output,omitempty"`

	Watch struct {
		Enabled bool `json:"enabled"`
	} `json:"watch,omitempty"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Input: Input{
			SchemaPath: jsonCfg.Input.SchemaPath,
			EnvFile:    jsonCfg.Input.EnvFile,
		},
		Output: Output{
			Emit:   jsonCfg.Output.Emit,
			Format: jsonCfg.Output.Format,
		},
		Watch: Watch{
			Enabled: jsonCfg.Watch.Enabled,
		},
		LogLevel:     jsonCfg.LogLevel,
		JSONFilePath: "",
	}

	return cfg, nil
}
