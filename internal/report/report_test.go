// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-scope/pkg/scope"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func reportSchema(t *testing.T) *scope.Schema {
	t.Helper()

	s, err := scope.Define(scope.Definition{
		Server: []scope.Entry{{Key: "DATABASE_URL", Kind: scope.KindURL, Required: true}},
		Client: []scope.Entry{{Key: "PUBLIC_API_BASE", Kind: scope.KindURL, Required: true}},
		Shared: []scope.Entry{{Key: "PORT", Kind: scope.KindNumber, Default: "8080"}},
	})
	require.NoError(t, err)

	return s
}

// ── Build ─────────────────────────────────────────────────────────────────────

func TestBuild_ValidOutcome(t *testing.T) {
	s := reportSchema(t)
	cfg, err := scope.Validate(s, map[string]string{
		"DATABASE_URL":    "postgres://localhost:5432/app",
		"PUBLIC_API_BASE": "https://api.example.com",
	})
	require.NoError(t, err)

	r := Build(cfg, nil)

	assert.True(t, r.Valid)
	require.NotNil(t, r.Snapshot)
	assert.Equal(t, cfg.ID(), r.Snapshot.ID)
	assert.Equal(t, 3, r.Snapshot.Keys)
	assert.Empty(t, r.Faults)
}

func TestBuild_FaultsInDeclarationOrder(t *testing.T) {
	s := reportSchema(t)
	cfg, err := scope.Validate(s, map[string]string{
		"PUBLIC_API_BASE": "not a url",
		"PORT":            "eighty",
	})
	require.Nil(t, cfg)
	require.Error(t, err)

	r := Build(nil, err)

	assert.False(t, r.Valid)
	assert.Nil(t, r.Snapshot)
	require.Len(t, r.Faults, 3)

	assert.Equal(t, "DATABASE_URL", r.Faults[0].Key)
	assert.Equal(t, "server-only", r.Faults[0].Tier)
	assert.Equal(t, "missing", r.Faults[0].Kind)
	assert.Equal(t, "url", r.Faults[0].Expected)

	assert.Equal(t, "PUBLIC_API_BASE", r.Faults[1].Key)
	assert.Equal(t, "client-exposed", r.Faults[1].Tier)
	assert.Equal(t, "invalid", r.Faults[1].Kind)
	assert.Equal(t, "not a url", r.Faults[1].Raw)

	assert.Equal(t, "PORT", r.Faults[2].Key)
	assert.Equal(t, "shared", r.Faults[2].Tier)
}

// ── rendering ─────────────────────────────────────────────────────────────────

func TestWriteText_InvalidReport(t *testing.T) {
	s := reportSchema(t)
	_, err := scope.Validate(s, map[string]string{"PORT": "eighty"})
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(nil, err)))

	out := buf.String()
	assert.Contains(t, out, "configuration invalid: 3 fault(s)")
	assert.Contains(t, out, "DATABASE_URL [server-only] missing: expected url")
	assert.Contains(t, out, `PORT [shared] invalid: expected number, got "eighty"`)
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	s := reportSchema(t)
	_, err := scope.Validate(s, map[string]string{})
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(nil, err)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, false, decoded["valid"])
	assert.Len(t, decoded["faults"], 2)
}

func TestWriteViewText_SortedEnvLines(t *testing.T) {
	s := reportSchema(t)
	cfg, err := scope.Validate(s, map[string]string{
		"DATABASE_URL":    "postgres://localhost:5432/app",
		"PUBLIC_API_BASE": "https://api.example.com",
		"PORT":            "9090",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteViewText(&buf, cfg.ForClient()))

	assert.Equal(t, "PORT=9090\nPUBLIC_API_BASE=https://api.example.com\n", buf.String())
}

func TestWriteViewJSON_ClientViewOnly(t *testing.T) {
	s := reportSchema(t)
	cfg, err := scope.Validate(s, map[string]string{
		"DATABASE_URL":    "postgres://localhost:5432/app",
		"PUBLIC_API_BASE": "https://api.example.com",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteViewJSON(&buf, cfg.ForClient()))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{
		"PORT":            "8080",
		"PUBLIC_API_BASE": "https://api.example.com",
	}, decoded, "the server-only DATABASE_URL never appears in a client dump")
}
