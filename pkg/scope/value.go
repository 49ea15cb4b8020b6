// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scope

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Kind is the declared value type of a schema entry. Each kind has its own
// coercion from the raw string form; dispatch is by tag, never by runtime
// type inspection.
type Kind int

const (
	// KindString accepts any raw value unchanged.
	KindString Kind = iota

	// KindNumber parses the raw value as a decimal number (integer or
	// fractional).
	KindNumber

	// KindBool parses "true"/"false" and the other strconv.ParseBool forms.
	KindBool

	// KindURL parses the raw value as an absolute URL with a scheme and host.
	KindURL

	// KindEnum accepts only one of the candidate values declared on the entry.
	KindEnum

	// KindDuration parses Go duration strings such as "30s" or "1h".
	KindDuration
)

// String returns the kind name used in schema documents and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindURL:
		return "url"
	case KindEnum:
		return "enum"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Value is a coerced configuration value. It is a tagged variant: exactly one
// of the typed forms is populated, selected by [Value.Kind]. Accessors for a
// different kind return the zero value of that form.
type Value struct {
	kind Kind
	raw  string

	num float64
	b   bool
	u   *url.URL
	d   time.Duration
}

// coerce parses raw into the typed form declared by e. The returned error
// carries only the parse detail; the caller attaches key and tier.
func coerce(e Entry, raw string) (Value, error) {
	v := Value{kind: e.Kind, raw: raw}

	switch e.Kind {
	case KindString:
		return v, nil

	case KindNumber:
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, errors.New("not a number")
		}
		v.num = num
		return v, nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, errors.New("not a boolean")
		}
		v.b = b
		return v, nil

	case KindURL:
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Value{}, errors.New("not an absolute URL")
		}
		v.u = u
		return v, nil

	case KindEnum:
		for _, candidate := range e.Enum {
			if raw == candidate {
				return v, nil
			}
		}
		return Value{}, fmt.Errorf("not one of [%s]", strings.Join(e.Enum, ", "))

	case KindDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Value{}, errors.New("not a duration")
		}
		v.d = d
		return v, nil

	default:
		return Value{}, fmt.Errorf("unsupported kind %q", e.Kind)
	}
}

// Kind returns the declared kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the raw string form the value was coerced from.
func (v Value) Raw() string { return v.raw }

// String returns the string form of the value. For string and enum kinds this
// is the value itself; for every other kind it is the raw input, so Value
// always prints meaningfully.
func (v Value) String() string { return v.raw }

// Number returns the numeric form for [KindNumber] values.
func (v Value) Number() float64 { return v.num }

// Int returns the numeric form as an int. It returns an error when the value
// is fractional or outside the int range rather than silently truncating.
func (v Value) Int() (int, error) {
	if v.num != math.Trunc(v.num) {
		return 0, fmt.Errorf("value %v is not an integer", v.num)
	}
	if v.num > math.MaxInt || v.num < math.MinInt {
		return 0, fmt.Errorf("value %v overflows int", v.num)
	}
	return int(v.num), nil
}

// Bool returns the boolean form for [KindBool] values.
func (v Value) Bool() bool { return v.b }

// URL returns the parsed form for [KindURL] values, or nil for other kinds.
func (v Value) URL() *url.URL { return v.u }

// Duration returns the duration form for [KindDuration] values.
func (v Value) Duration() time.Duration { return v.d }

// equal reports whether two values carry the same kind and raw form. Coercion
// is deterministic, so raw equality implies typed equality.
func (v Value) equal(o Value) bool {
	return v.kind == o.kind && v.raw == o.raw
}
