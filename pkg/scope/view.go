// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

import (
	"net/url"
	"sort"
	"time"
)

// View is a read-only window over one tier partition of a [Config]. The
// zero View is empty. Typed getters return the zero value for keys that are
// absent or of a different kind; use [View.Value] when absence must be
// distinguished.
type View struct {
	name   string
	values map[string]Value
}

// Name returns the view name: "server", "client", or "full".
func (v View) Name() string { return v.name }

// Len returns the number of keys in the view.
func (v View) Len() int { return len(v.values) }

// Keys returns the view's key names in lexical order.
func (v View) Keys() []string {
	keys := make([]string, 0, len(v.values))
	for key := range v.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Has reports whether the view contains key.
func (v View) Has(key string) bool {
	_, ok := v.values[key]
	return ok
}

// Value returns the typed value for key and whether it is present.
func (v View) Value(key string) (Value, bool) {
	val, ok := v.values[key]
	return val, ok
}

// String returns the string form of key's value, or "" when absent.
func (v View) String(key string) string {
	return v.values[key].String()
}

// Number returns the numeric value of key, or 0 when absent.
func (v View) Number(key string) float64 {
	return v.values[key].Number()
}

// Int returns the integral value of key, or 0 when the key is absent or the
// value is fractional.
func (v View) Int(key string) int {
	n, err := v.values[key].Int()
	if err != nil {
		return 0
	}
	return n
}

// Bool returns the boolean value of key, or false when absent.
func (v View) Bool(key string) bool {
	return v.values[key].Bool()
}

// URL returns the parsed URL value of key, or nil when absent.
func (v View) URL(key string) *url.URL {
	return v.values[key].URL()
}

// Duration returns the duration value of key, or 0 when absent.
func (v View) Duration(key string) time.Duration {
	return v.values[key].Duration()
}
