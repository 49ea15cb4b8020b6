// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reload

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-scope/internal/logger"
	"github.com/MKhiriev/go-env-scope/pkg/scope"
	"github.com/MKhiriev/go-env-scope/pkg/source"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func watchedSchema(t *testing.T) *scope.Schema {
	t.Helper()

	s, err := scope.Define(scope.Definition{
		Shared: []scope.Entry{
			{Key: "PORT", Kind: scope.KindNumber, Required: true},
			{Key: "LOG_LEVEL", Kind: scope.KindString, Default: "info"},
		},
	})
	require.NoError(t, err)

	return s
}

func validateMap(t *testing.T, s *scope.Schema, raw map[string]string) *scope.Config {
	t.Helper()

	cfg, err := scope.Validate(s, raw)
	require.NoError(t, err)

	return cfg
}

// ── Holder ────────────────────────────────────────────────────────────────────

func TestHolder_CurrentAndSwap(t *testing.T) {
	s := watchedSchema(t)
	first := validateMap(t, s, map[string]string{"PORT": "8080"})
	second := validateMap(t, s, map[string]string{"PORT": "9090"})

	h := NewHolder(first)
	assert.Same(t, first, h.Current())

	previous := h.Swap(second)
	assert.Same(t, first, previous)
	assert.Same(t, second, h.Current())
}

func TestHolder_ConcurrentReadersSeeCompleteSnapshots(t *testing.T) {
	// Readers must only ever observe a complete old or complete new snapshot
	// while swaps race against them.
	s := watchedSchema(t)
	h := NewHolder(validateMap(t, s, map[string]string{"PORT": "8080"}))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				cfg := h.Current()
				port := cfg.ForServer().Int("PORT")
				level := cfg.ForServer().String("LOG_LEVEL")

				// Each snapshot is internally consistent.
				assert.Contains(t, []int{8080, 9090}, port)
				assert.Equal(t, "info", level)
			}
		}()
	}

	for i := 0; i < 200; i++ {
		port := "8080"
		if i%2 == 1 {
			port = "9090"
		}
		h.Swap(validateMap(t, s, map[string]string{"PORT": port}))
	}

	close(stop)
	wg.Wait()
}

// ── Watcher.revalidate ────────────────────────────────────────────────────────

func TestRevalidate_SwapsOnValidChange(t *testing.T) {
	// Arrange
	s := watchedSchema(t)
	initial := validateMap(t, s, map[string]string{"PORT": "8080"})
	h := NewHolder(initial)

	w := NewWatcher(h, s, []source.Source{
		source.Map("test", map[string]string{"PORT": "9090"}),
	}, nil, logger.Nop())

	var gotPrevious, gotCurrent *scope.Config
	w.OnSwap(func(previous, current *scope.Config) {
		gotPrevious, gotCurrent = previous, current
	})

	// Act
	w.revalidate()

	// Assert
	assert.Equal(t, 9090, h.Current().ForServer().Int("PORT"))
	assert.Same(t, initial, gotPrevious)
	assert.Same(t, h.Current(), gotCurrent)
}

func TestRevalidate_KeepsSnapshotOnValidationFailure(t *testing.T) {
	s := watchedSchema(t)
	initial := validateMap(t, s, map[string]string{"PORT": "8080"})
	h := NewHolder(initial)

	w := NewWatcher(h, s, []source.Source{
		source.Map("test", map[string]string{"PORT": "not-a-number"}),
	}, nil, logger.Nop())
	w.OnSwap(func(previous, current *scope.Config) {
		t.Fatal("no swap must happen on a failed revalidation")
	})

	w.revalidate()

	assert.Same(t, initial, h.Current(), "previous snapshot survives a failed reload")
}

func TestRevalidate_SkipsWhenUnchanged(t *testing.T) {
	s := watchedSchema(t)
	initial := validateMap(t, s, map[string]string{"PORT": "8080"})
	h := NewHolder(initial)

	w := NewWatcher(h, s, []source.Source{
		source.Map("test", map[string]string{"PORT": "8080"}),
	}, nil, logger.Nop())
	w.OnSwap(func(previous, current *scope.Config) {
		t.Fatal("identical configuration must not be swapped in")
	})

	w.revalidate()

	assert.Same(t, initial, h.Current())
}

// ── Watcher.Run ───────────────────────────────────────────────────────────────

func TestRun_ReloadsOnFileWrite(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8080\n"), 0o644))

	s := watchedSchema(t)
	raw, err := source.Resolve(source.File(path))
	require.NoError(t, err)
	h := NewHolder(validateMap(t, s, raw))

	w := NewWatcher(h, s, []source.Source{source.File(path)}, []string{path}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the path.
	time.Sleep(100 * time.Millisecond)

	// Act
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o644))

	// Assert
	assert.Eventually(t, func() bool {
		return h.Current().ForServer().Int("PORT") == 9090
	}, 5*time.Second, 20*time.Millisecond, "file write must trigger a reload")

	cancel()
	require.NoError(t, <-done)
}

func TestRun_FailsOnMissingWatchPath(t *testing.T) {
	s := watchedSchema(t)
	h := NewHolder(validateMap(t, s, map[string]string{"PORT": "8080"}))
	w := NewWatcher(h, s, nil, []string{filepath.Join(t.TempDir(), "absent.env")}, logger.Nop())

	err := w.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error watching")
}
