// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three fatal failure classes of the validator.
// Aggregate errors returned by [Define] and [Validate] match these via
// [errors.Is], so callers can classify a failure without unwrapping the
// per-key fault list.
var (
	// ErrSchemaDefinition indicates a structurally invalid schema: duplicate
	// key names, a client-exposed key without the PUBLIC_ prefix, an enum
	// without candidate values, or a default that fails its own coercion.
	ErrSchemaDefinition = errors.New("invalid schema definition")

	// ErrMissingConfiguration indicates a required key with neither a raw
	// value nor a default.
	ErrMissingConfiguration = errors.New("missing required configuration value")

	// ErrInvalidConfiguration indicates a raw value that failed coercion to
	// its declared kind.
	ErrInvalidConfiguration = errors.New("invalid configuration value")
)

// DefinitionFault describes one structural problem found while compiling a
// [Definition] into a [Schema].
type DefinitionFault struct {
	// Key is the offending key name. Empty when the fault is about a missing
	// name rather than a particular key.
	Key string

	// Tier is the tier the key was declared in.
	Tier Tier

	// Detail is a human-readable description of the fault.
	Detail string
}

func (f DefinitionFault) String() string {
	return fmt.Sprintf("%s (%s): %s", f.Key, f.Tier, f.Detail)
}

// DefinitionError aggregates every structural fault found in a single
// [Define] call. It matches [ErrSchemaDefinition] under [errors.Is].
type DefinitionError struct {
	// Faults lists every fault in declaration order.
	Faults []DefinitionFault
}

func (e *DefinitionError) Error() string {
	details := make([]string, 0, len(e.Faults))
	for _, f := range e.Faults {
		details = append(details, f.String())
	}

	return fmt.Sprintf("invalid schema definition: %d fault(s): %s",
		len(e.Faults), strings.Join(details, "; "))
}

// Is reports whether target is [ErrSchemaDefinition].
func (e *DefinitionError) Is(target error) bool {
	return target == ErrSchemaDefinition
}

// FaultKind classifies a single validation fault.
type FaultKind int

const (
	// FaultMissing marks a required key absent from the raw source with no
	// default to fall back to.
	FaultMissing FaultKind = iota

	// FaultInvalid marks a raw value that failed coercion to the declared
	// kind.
	FaultInvalid
)

// String returns the fault-kind name used in diagnostics.
func (k FaultKind) String() string {
	switch k {
	case FaultMissing:
		return "missing"
	case FaultInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Fault describes one per-key validation failure.
type Fault struct {
	// Key is the schema key the fault concerns.
	Key string

	// Tier is the tier the key is declared in.
	Tier Tier

	// Kind classifies the fault as missing or invalid.
	Kind FaultKind

	// Expected is the declared value kind of the key.
	Expected Kind

	// Raw is the offending raw value. Empty for missing keys.
	Raw string

	// Detail is a human-readable description of the failure.
	Detail string
}

func (f Fault) String() string {
	if f.Kind == FaultMissing {
		return fmt.Sprintf("%s (%s): missing, expected %s", f.Key, f.Tier, f.Expected)
	}

	return fmt.Sprintf("%s (%s): invalid, expected %s, got %q: %s",
		f.Key, f.Tier, f.Expected, f.Raw, f.Detail)
}

// ValidationError aggregates every per-key fault found in a single [Validate]
// call, in schema declaration order. Validation never stops at the first
// fault, so one invocation reports the complete list.
//
// ValidationError matches [ErrMissingConfiguration] under [errors.Is] when at
// least one fault is a missing key, and [ErrInvalidConfiguration] when at
// least one fault is an invalid value. Both can match at once.
type ValidationError struct {
	Faults []Fault
}

func (e *ValidationError) Error() string {
	details := make([]string, 0, len(e.Faults))
	for _, f := range e.Faults {
		details = append(details, f.String())
	}

	return fmt.Sprintf("configuration validation failed: %d fault(s): %s",
		len(e.Faults), strings.Join(details, "; "))
}

// Is reports whether target matches one of the fault classes present in the
// aggregate.
func (e *ValidationError) Is(target error) bool {
	for _, f := range e.Faults {
		switch f.Kind {
		case FaultMissing:
			if target == ErrMissingConfiguration {
				return true
			}
		case FaultInvalid:
			if target == ErrInvalidConfiguration {
				return true
			}
		}
	}

	return false
}
