// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source supplies raw key/value maps to the scope validator.
//
// A [Source] materializes one layer of untyped configuration: the process
// environment, a .env file, or an explicit map. [Resolve] merges any number
// of layers into the single read-only snapshot that [scope.Validate]
// consumes, with later sources overriding earlier ones per key.
package source

//go:generate mockgen -source=source.go -destination=../../internal/mock/source_mock.go -package=mock

import (
	"os"
	"strings"
)

// Source is one layer of raw configuration values.
type Source interface {
	// Name returns a human-readable source name for diagnostics and logging.
	Name() string

	// Load materializes the layer as a key/value map. The returned map is
	// owned by the caller; Load must not retain or reuse it.
	Load() (map[string]string, error)
}

// envSource reads the process environment.
type envSource struct{}

// Env returns a Source over the process environment. Each Load call takes a
// fresh snapshot of os.Environ.
func Env() Source { return envSource{} }

func (envSource) Name() string { return "env" }

func (envSource) Load() (map[string]string, error) {
	environ := os.Environ()
	values := make(map[string]string, len(environ))

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		values[key] = value
	}

	return values, nil
}

// mapSource serves a fixed map, used by tests and embedding callers.
type mapSource struct {
	name   string
	values map[string]string
}

// Map returns a Source over a fixed map. The map is copied, so later mutation
// by the caller does not leak into loads.
func Map(name string, values map[string]string) Source {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}

	return mapSource{name: name, values: copied}
}

func (s mapSource) Name() string { return s.name }

func (s mapSource) Load() (map[string]string, error) {
	values := make(map[string]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}

	return values, nil
}
