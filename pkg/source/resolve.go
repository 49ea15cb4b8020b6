// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"

	"dario.cat/mergo"
)

// Resolve loads every source and merges the layers into one snapshot. Later
// sources override earlier ones per key, so the conventional call site is
// Resolve(File(".env"), Env()): file values as a base, real environment
// variables on top.
//
// A load failure from any source aborts resolution; the validator is never
// fed a partially materialized snapshot.
func Resolve(sources ...Source) (map[string]string, error) {
	merged := make(map[string]string)

	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return nil, fmt.Errorf("error loading source %s: %w", src.Name(), err)
		}

		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging source %s: %w", src.Name(), err)
		}
	}

	return merged, nil
}
