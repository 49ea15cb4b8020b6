package models

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotInfo identifies one validated configuration snapshot. It is
// emitted with reports and reload log entries so operators can correlate a
// running view with the load that produced it.
type SnapshotInfo struct {
	// ID is the snapshot identifier, freshly generated per validation run.
	ID uuid.UUID `json:"id"`

	// LoadedAt is the time validation completed.
	LoadedAt time.Time `json:"loaded_at"`

	// Keys is the number of keys the snapshot carries across all tiers.
	Keys int `json:"keys"`
}

// KeyFault is the outward form of a single per-key validation failure.
type KeyFault struct {
	// Key is the schema key the fault concerns.
	Key string `json:"key"`

	// Tier names the visibility tier of the key
	// ("server-only", "client-exposed", "shared").
	Tier string `json:"tier"`

	// Kind classifies the fault: "missing" or "invalid".
	Kind string `json:"kind"`

	// Expected names the declared value type of the key.
	Expected string `json:"expected"`

	// Raw is the offending raw value. Omitted for missing keys.
	Raw string `json:"raw,omitempty"`

	// Detail is a human-readable description of the failure.
	Detail string `json:"detail,omitempty"`
}

// ValidationReport is the complete outcome of one validation run, suitable
// for printing and for machine consumption in CI.
type ValidationReport struct {
	// Valid is true when every declared key passed validation.
	Valid bool `json:"valid"`

	// Snapshot describes the produced configuration. Nil when Valid is false.
	Snapshot *SnapshotInfo `json:"snapshot,omitempty"`

	// Faults lists every failure found, in schema declaration order.
	// Empty when Valid is true.
	Faults []KeyFault `json:"faults,omitempty"`
}
