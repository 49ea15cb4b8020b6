package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-schema schema document path (YAML)
//	-e/-env-file .env file used as the base raw source layer
//	-emit view to emit on success: server, client or full
//	-format output format: text or json
//	-watch keep running and revalidate on file changes
//	-c/-config json file path with configs
//	-log-level tool log level (debug, info, warn, error)
func ParseFlags() *StructuredConfig {
	var schemaPath string
	var envFile string
	var emit string
	var format string
	var watch bool
	var jsonConfigPath string
	var logLevel string

	flag.StringVar(&schemaPath, "s", "", "Schema document path")
	flag.StringVar(&schemaPath, "schema", "", "Schema document path (alias)")
	flag.StringVar(&envFile, "e", "", "Env file path")
	flag.StringVar(&envFile, "env-file", "", "Env file path (alias)")
	flag.StringVar(&emit, "emit", "", "View to emit on success: server, client or full")
	flag.StringVar(&format, "format", "", "Output format: text or json")
	flag.BoolVar(&watch, "watch", false, "Keep running and revalidate on file changes")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logLevel, "log-level", "", "Tool log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		Input: Input{
			SchemaPath: schemaPath,
			EnvFile:    envFile,
		},
		Output: Output{
			Emit:   emit,
			Format: format,
		},
		Watch: Watch{
			Enabled: watch,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}
}
