// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reload

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-env-scope/internal/logger"
	"github.com/MKhiriev/go-env-scope/pkg/scope"
	"github.com/MKhiriev/go-env-scope/pkg/source"
)

// Watcher revalidates the configuration whenever a watched file changes and
// swaps the holder's snapshot on success. A failed revalidation keeps the
// previous snapshot in place: a running process never downgrades to a
// partial or invalid configuration.
type Watcher struct {
	schema  *scope.Schema
	sources []source.Source
	holder  *Holder
	paths   []string
	log     *logger.Logger

	// onSwap, when set, is called after every successful swap with the
	// previous and the new snapshot.
	onSwap func(previous, current *scope.Config)
}

// NewWatcher builds a watcher over the given file paths. The sources are
// re-resolved in full on every change, so layering semantics stay identical
// to the initial load.
func NewWatcher(holder *Holder, schema *scope.Schema, sources []source.Source, paths []string, log *logger.Logger) *Watcher {
	return &Watcher{
		schema:  schema,
		sources: sources,
		holder:  holder,
		paths:   paths,
		log:     log,
	}
}

// OnSwap registers a callback invoked after every successful swap. Must be
// called before [Watcher.Run].
func (w *Watcher) OnSwap(fn func(previous, current *scope.Config)) {
	w.onSwap = fn
}

// Run watches the configured paths until ctx is cancelled. It returns a nil
// error on cancellation and a non-nil error only when the underlying file
// watcher cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer fw.Close()

	for _, path := range w.paths {
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("error watching %q: %w", path, err)
		}
	}

	w.log.Info().Strs("paths", w.paths).Msg("watching configuration files")

	for {
		select {
		case <-ctx.Done():
			w.log.Debug().Msg("watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("configuration file changed")
			w.revalidate()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(watchErr).Msg("file watcher error")
		}
	}
}

// revalidate re-resolves the sources and validates a fresh snapshot. The
// holder is only touched when validation fully succeeds and the result
// actually differs from the current snapshot.
func (w *Watcher) revalidate() {
	raw, err := source.Resolve(w.sources...)
	if err != nil {
		w.log.Error().Err(err).Msg("reload aborted: raw sources could not be resolved, keeping previous configuration")
		return
	}

	cfg, err := scope.Validate(w.schema, raw)
	if err != nil {
		w.log.Error().Err(err).Msg("reload aborted: validation failed, keeping previous configuration")
		return
	}

	if current := w.holder.Current(); current != nil && current.Equal(cfg) {
		w.log.Debug().Msg("reload skipped: configuration unchanged")
		return
	}

	previous := w.holder.Swap(cfg)
	w.log.Info().
		Str("snapshot_id", cfg.ID().String()).
		Msg("configuration reloaded")

	if w.onSwap != nil {
		w.onSwap(previous, cfg)
	}
}
