// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reload keeps a validated configuration snapshot hot-swappable.
//
// A [Holder] hands out the current immutable [scope.Config] to any number of
// concurrent readers; a reload validates a complete replacement first and
// then swaps the reference in a single atomic store, so readers never
// observe a partially updated configuration. [Watcher] drives the swap from
// file change events.
package reload

import (
	"sync/atomic"

	"github.com/MKhiriev/go-env-scope/pkg/scope"
)

// Holder owns the current configuration snapshot.
type Holder struct {
	current atomic.Pointer[scope.Config]
}

// NewHolder returns a holder seeded with an initial validated snapshot.
func NewHolder(cfg *scope.Config) *Holder {
	h := &Holder{}
	h.current.Store(cfg)

	return h
}

// Current returns the snapshot as of this call. The result stays valid and
// immutable even if a swap happens immediately after.
func (h *Holder) Current() *scope.Config {
	return h.current.Load()
}

// Swap installs a new snapshot and returns the previous one.
func (h *Holder) Swap(cfg *scope.Config) *scope.Config {
	return h.current.Swap(cfg)
}
