// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

// ClientKeyPrefix is the naming marker every client-exposed key must carry.
// The prefix makes the visibility of a key visible in the key itself, so a
// value can only end up in a client bundle under a name that advertises it.
// Server-only and shared keys must not carry the prefix.
const ClientKeyPrefix = "PUBLIC_"

// Tier is the visibility classification of a configuration key.
type Tier int

const (
	// TierServer marks keys that never leave trusted server contexts.
	TierServer Tier = iota

	// TierClient marks keys that may be embedded in client bundles.
	// Keys of this tier must start with [ClientKeyPrefix].
	TierClient

	// TierShared marks keys visible to both server and client consumers.
	TierShared
)

// String returns the human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierServer:
		return "server-only"
	case TierClient:
		return "client-exposed"
	case TierShared:
		return "shared"
	default:
		return "unknown"
	}
}
