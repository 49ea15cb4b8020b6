// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

import (
	"time"

	"github.com/google/uuid"
)

// Config is a validated, immutable, tier-partitioned configuration snapshot.
// It is produced only by [Validate] and never mutated afterwards, so it can
// be shared across any number of concurrent readers without locking. A
// reload builds a new Config and swaps the reference; see the reload holder
// in the application for the atomic swap.
type Config struct {
	id       uuid.UUID
	loadedAt time.Time

	server map[string]Value
	client map[string]Value
	full   map[string]Value
	tiers  map[string]Tier
}

// Validate checks every declared key of s against the raw source map and, on
// success, returns the validated configuration.
//
// For each key: an absent or empty raw value falls back to the entry default;
// a required key with neither is a missing-configuration fault; a present
// value is coerced per the declared kind, and a coercion failure is an
// invalid-configuration fault carrying the key, tier, expected kind, and
// offending raw value. Raw keys the schema does not declare are ignored, so
// unrelated environment noise never fails validation.
//
// Faults are accumulated across the whole schema and returned together as a
// single [*ValidationError]; there is no partial success.
func Validate(s *Schema, raw map[string]string) (*Config, error) {
	cfg := &Config{
		id:       uuid.New(),
		loadedAt: time.Now(),
		server:   make(map[string]Value),
		client:   make(map[string]Value),
		full:     make(map[string]Value),
		tiers:    make(map[string]Tier, s.Len()),
	}

	var faults []Fault
	for _, key := range s.order {
		se := s.entries[key]

		rawValue, found := raw[key]
		if rawValue == "" {
			found = false
		}

		if !found {
			if se.Default == "" {
				if se.Required {
					faults = append(faults, Fault{
						Key:      key,
						Tier:     se.tier,
						Kind:     FaultMissing,
						Expected: se.Entry.Kind,
					})
				}
				continue
			}
			rawValue = se.Default
		}

		value, err := coerce(se.Entry, rawValue)
		if err != nil {
			faults = append(faults, Fault{
				Key:      key,
				Tier:     se.tier,
				Kind:     FaultInvalid,
				Expected: se.Entry.Kind,
				Raw:      rawValue,
				Detail:   err.Error(),
			})
			continue
		}

		cfg.set(key, se.tier, value)
	}

	if len(faults) > 0 {
		return nil, &ValidationError{Faults: faults}
	}

	return cfg, nil
}

// set places a value into the views its tier belongs to. The client map is
// only ever written for client-exposed and shared keys, so a server-only key
// cannot reach the client view regardless of any later check.
func (c *Config) set(key string, tier Tier, v Value) {
	c.tiers[key] = tier
	c.full[key] = v

	switch tier {
	case TierServer:
		c.server[key] = v
	case TierClient:
		c.client[key] = v
	case TierShared:
		c.server[key] = v
		c.client[key] = v
	}
}

// ID returns the snapshot identifier, unique per Validate call. It is meant
// for log correlation across reloads and takes no part in [Config.Equal].
func (c *Config) ID() uuid.UUID { return c.id }

// LoadedAt returns the time the snapshot was validated.
func (c *Config) LoadedAt() time.Time { return c.loadedAt }

// ForServer returns the read-only view over server-only and shared keys.
func (c *Config) ForServer() View {
	return View{name: "server", values: c.server}
}

// ForClient returns the read-only view over client-exposed and shared keys.
// Server-only values are structurally absent from the underlying map, not
// filtered out on access.
func (c *Config) ForClient() View {
	return View{name: "client", values: c.client}
}

// Full returns the read-only view over every declared key. It is intended
// for trusted server contexts only, e.g. a server that must also render
// client-exposed values into a bundle.
func (c *Config) Full() View {
	return View{name: "full", values: c.full}
}

// TierOf returns the tier of a key present in the snapshot.
func (c *Config) TierOf(key string) (Tier, bool) {
	t, ok := c.tiers[key]
	return t, ok
}

// Equal reports whether two snapshots carry the same keys with the same
// values. Snapshot identity and load time are excluded: two Validate calls
// over the same schema and raw source yield Equal configs.
func (c *Config) Equal(o *Config) bool {
	if o == nil || len(c.full) != len(o.full) {
		return false
	}

	for key, v := range c.full {
		ov, ok := o.full[key]
		if !ok || !v.equal(ov) || c.tiers[key] != o.tiers[key] {
			return false
		}
	}

	return true
}
