// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the envscope
// tool. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Input holds the schema document path and the raw-source selection.
	Input Input `envPrefix:"ENVSCOPE_INPUT_"`

	// Output holds the output mode: which view to emit, in which format.
	Output Output `envPrefix:"ENVSCOPE_OUTPUT_"`

	// Watch holds the hot-reload settings.
	Watch Watch `envPrefix:"ENVSCOPE_WATCH_"`

	// LogLevel is the zerolog level name for tool logging
	// (e.g. "debug", "info", "warn", "error").
	// Env: ENVSCOPE_LOG_LEVEL
	LogLevel string `env:"ENVSCOPE_LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the ENVSCOPE_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"ENVSCOPE_CONFIG"`
}

// Input selects what gets validated.
type Input struct {
	// SchemaPath is the path to the YAML schema document declaring every
	// key, its tier, and its validation rule. Required.
	// Env: ENVSCOPE_INPUT_SCHEMA
	SchemaPath string `env:"SCHEMA"`

	// EnvFile is the optional path to a .env file used as the base raw
	// source layer; process environment variables are overlaid on top.
	// Env: ENVSCOPE_INPUT_ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// Output selects what the tool prints on a successful validation.
type Output struct {
	// Emit selects a view to dump instead of the validation report:
	// "server", "client", or "full". Empty means print the report.
	// Env: ENVSCOPE_OUTPUT_EMIT
	Emit string `env:"EMIT"`

	// Format is the output encoding: "text" or "json".
	// Env: ENVSCOPE_OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Watch holds hot-reload settings.
type Watch struct {
	// Enabled keeps the tool running after the initial validation,
	// revalidating and atomically swapping the snapshot whenever a watched
	// file changes. Requires Input.EnvFile.
	// Env: ENVSCOPE_WATCH_ENABLED
	Enabled bool `env:"ENABLED"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
