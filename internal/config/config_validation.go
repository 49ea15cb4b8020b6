// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// tool invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Input.SchemaPath == "" {
		return ErrInvalidInputConfigs
	}

	switch cfg.Output.Emit {
	case "", "server", "client", "full":
	default:
		return ErrInvalidOutputConfigs
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return ErrInvalidOutputConfigs
	}

	// Watch mode revalidates on file events, so there must be a file to
	// watch besides the schema document.
	if cfg.Watch.Enabled && cfg.Input.EnvFile == "" {
		return ErrInvalidWatchConfigs
	}

	return nil
}
