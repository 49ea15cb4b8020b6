// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

import (
	"fmt"
	"strings"
)

// Entry declares a single configuration key: its name, value kind, and the
// rules applied during validation.
type Entry struct {
	// Key is the exact raw-source key name, e.g. "DATABASE_URL".
	Key string

	// Kind selects the coercion applied to the raw value.
	Kind Kind

	// Required makes the absence of both a raw value and a default a
	// validation fault. Optional keys with no value are simply omitted from
	// the validated configuration.
	Required bool

	// Default is the raw-form fallback used when the source carries no value
	// for the key. It goes through the same coercion as a live value, which
	// is checked once at definition time. Empty means no default.
	Default string

	// Enum lists the candidate values for [KindEnum] entries. Must be empty
	// for every other kind.
	Enum []string
}

// Definition is the declarative input to [Define]: one entry list per
// visibility tier. A key belongs to exactly one tier; declaring it in two is
// a definition fault.
type Definition struct {
	Server []Entry
	Client []Entry
	Shared []Entry
}

// Schema is a compiled, immutable definition. It is produced only by
// [Define] and carries no values; it is safe to share and reuse across any
// number of [Validate] calls.
type Schema struct {
	entries map[string]schemaEntry
	order   []string
}

type schemaEntry struct {
	Entry
	tier Tier
}

// Len returns the number of declared keys.
func (s *Schema) Len() int { return len(s.entries) }

// Keys returns every declared key in declaration order, server tier first,
// then client, then shared.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// TierOf returns the tier of a declared key. The second return is false for
// keys the schema does not declare.
func (s *Schema) TierOf(key string) (Tier, bool) {
	e, ok := s.entries[key]
	return e.tier, ok
}

// Define compiles a [Definition] into a [Schema], checking every structural
// rule before any value is read:
//
//   - key names must be non-empty and unique across all tiers combined;
//   - client-exposed keys must carry [ClientKeyPrefix], and no other key may;
//   - enum entries must declare candidate values, non-enum entries must not;
//   - a declared default must pass the entry's own coercion.
//
// Every fault found is collected into a single [*DefinitionError]; Define
// never stops at the first one.
func Define(def Definition) (*Schema, error) {
	s := &Schema{
		entries: make(map[string]schemaEntry, len(def.Server)+len(def.Client)+len(def.Shared)),
	}

	var faults []DefinitionFault
	for _, tiered := range []struct {
		tier    Tier
		entries []Entry
	}{
		{TierServer, def.Server},
		{TierClient, def.Client},
		{TierShared, def.Shared},
	} {
		for _, e := range tiered.entries {
			faults = append(faults, s.add(e, tiered.tier)...)
		}
	}

	if len(faults) > 0 {
		return nil, &DefinitionError{Faults: faults}
	}

	return s, nil
}

// add registers one entry and returns the definition faults it triggers.
// The entry is stored even when faulty so that later duplicates of the same
// key are still detected, but a schema with any fault is never returned.
func (s *Schema) add(e Entry, tier Tier) []DefinitionFault {
	var faults []DefinitionFault
	fault := func(detail string) {
		faults = append(faults, DefinitionFault{Key: e.Key, Tier: tier, Detail: detail})
	}

	if e.Key == "" {
		fault("entry has no key name")
		return faults
	}

	if prev, exists := s.entries[e.Key]; exists {
		fault(fmt.Sprintf("key already declared in %s tier", prev.tier))
		return faults
	}

	switch {
	case tier == TierClient && !strings.HasPrefix(e.Key, ClientKeyPrefix):
		fault(fmt.Sprintf("client-exposed key must start with %q", ClientKeyPrefix))
	case tier != TierClient && strings.HasPrefix(e.Key, ClientKeyPrefix):
		fault(fmt.Sprintf("prefix %q is reserved for client-exposed keys", ClientKeyPrefix))
	}

	if e.Kind == KindEnum && len(e.Enum) == 0 {
		fault("enum entry declares no candidate values")
	}

	if e.Kind != KindEnum && len(e.Enum) > 0 {
		fault("candidate values are only valid on enum entries")
	}

	if e.Default != "" {
		if _, err := coerce(e, e.Default); err != nil {
			fault(fmt.Sprintf("default %q fails coercion: %s", e.Default, err))
		}
	}

	s.entries[e.Key] = schemaEntry{Entry: e, tier: tier}
	s.order = append(s.order, e.Key)

	return faults
}
