// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report maps validation outcomes and configuration views onto the
// tool's output surfaces: a diagnostic report for operators and CI, and a
// view dump in env-line or JSON form.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-env-scope/models"
	"github.com/MKhiriev/go-env-scope/pkg/scope"
)

// Build converts a validation outcome into its outward report form. Exactly
// one of cfg and err is expected to be set, matching the all-or-nothing
// contract of [scope.Validate].
func Build(cfg *scope.Config, err error) models.ValidationReport {
	if err == nil {
		full := cfg.Full()
		return models.ValidationReport{
			Valid: true,
			Snapshot: &models.SnapshotInfo{
				ID:       cfg.ID(),
				LoadedAt: cfg.LoadedAt(),
				Keys:     full.Len(),
			},
		}
	}

	r := models.ValidationReport{}

	var valErr *scope.ValidationError
	if errors.As(err, &valErr) {
		r.Faults = make([]models.KeyFault, 0, len(valErr.Faults))
		for _, f := range valErr.Faults {
			r.Faults = append(r.Faults, models.KeyFault{
				Key:      f.Key,
				Tier:     f.Tier.String(),
				Kind:     f.Kind.String(),
				Expected: f.Expected.String(),
				Raw:      f.Raw,
				Detail:   f.Detail,
			})
		}
	}

	return r
}

// WriteText renders the report as operator-readable lines.
func WriteText(w io.Writer, r models.ValidationReport) error {
	if r.Valid {
		_, err := fmt.Fprintf(w, "configuration valid: %d key(s), snapshot %s\n", r.Snapshot.Keys, r.Snapshot.ID)
		return err
	}

	if _, err := fmt.Fprintf(w, "configuration invalid: %d fault(s)\n", len(r.Faults)); err != nil {
		return err
	}
	for _, f := range r.Faults {
		line := fmt.Sprintf("  %s [%s] %s: expected %s", f.Key, f.Tier, f.Kind, f.Expected)
		if f.Kind == "invalid" {
			line += fmt.Sprintf(", got %q (%s)", f.Raw, f.Detail)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r models.ValidationReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteViewText dumps a view as KEY=value lines in lexical key order, the
// shape a shell or a .env consumer expects.
func WriteViewText(w io.Writer, v scope.View) error {
	for _, key := range v.Keys() {
		value, _ := v.Value(key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, value.Raw()); err != nil {
			return err
		}
	}

	return nil
}

// WriteViewJSON dumps a view as a flat JSON object of raw string forms, the
// shape a bundler injects into client code.
func WriteViewJSON(w io.Writer, v scope.View) error {
	values := make(map[string]string, v.Len())
	for _, key := range v.Keys() {
		value, _ := v.Value(key)
		values[key] = value.Raw()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(values)
}
