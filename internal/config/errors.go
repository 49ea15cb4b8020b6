package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidInputConfigs indicates invalid input settings
	// (for example, a missing schema document path).
	ErrInvalidInputConfigs = errors.New("invalid input configuration")
	// ErrInvalidOutputConfigs indicates invalid output settings
	// (for example, an unknown view or format name).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidWatchConfigs indicates invalid watch settings
	// (for example, watch enabled without an env file to watch).
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
)
