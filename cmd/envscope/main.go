// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-env-scope/internal/config"
	"github.com/MKhiriev/go-env-scope/internal/logger"
	"github.com/MKhiriev/go-env-scope/internal/reload"
	"github.com/MKhiriev/go-env-scope/internal/report"
	"github.com/MKhiriev/go-env-scope/internal/schemafile"
	"github.com/MKhiriev/go-env-scope/pkg/scope"
	"github.com/MKhiriev/go-env-scope/pkg/source"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("envscope")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log.Logger = log.Logger.Level(level)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	schema, err := schemafile.Load(cfg.Input.SchemaPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading schema")
	}

	sources := buildSources(cfg)
	raw, err := source.Resolve(sources...)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving raw sources")
	}

	validated, validationErr := scope.Validate(schema, raw)
	if err := writeOutput(cfg, validated, validationErr); err != nil {
		log.Fatal().Err(err).Msg("error writing output")
	}
	if validationErr != nil {
		os.Exit(1)
	}

	log.Info().
		Str("snapshot_id", validated.ID().String()).
		Int("keys", validated.Full().Len()).
		Msg("configuration validated")

	if !cfg.Watch.Enabled {
		return
	}

	runWatch(cfg, schema, sources, validated, log)
}

// buildSources assembles the raw source layers: the .env file (when
// configured) as the base, the process environment on top.
func buildSources(cfg *config.StructuredConfig) []source.Source {
	var sources []source.Source
	if cfg.Input.EnvFile != "" {
		sources = append(sources, source.File(cfg.Input.EnvFile))
	}
	sources = append(sources, source.Env())

	return sources
}

// writeOutput prints either the validation report or the requested view.
// Diagnostics go to stderr; view dumps go to stdout so they can be piped.
func writeOutput(cfg *config.StructuredConfig, validated *scope.Config, validationErr error) error {
	if validationErr != nil || cfg.Output.Emit == "" {
		r := report.Build(validated, validationErr)
		if cfg.Output.Format == "json" {
			return report.WriteJSON(os.Stderr, r)
		}
		return report.WriteText(os.Stderr, r)
	}

	var view scope.View
	switch cfg.Output.Emit {
	case "server":
		view = validated.ForServer()
	case "client":
		view = validated.ForClient()
	case "full":
		view = validated.Full()
	}

	if cfg.Output.Format == "json" {
		return report.WriteViewJSON(os.Stdout, view)
	}

	return report.WriteViewText(os.Stdout, view)
}

// runWatch holds the validated snapshot and revalidates on env file changes
// until the process is signalled to stop.
func runWatch(cfg *config.StructuredConfig, schema *scope.Schema, sources []source.Source, validated *scope.Config, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	holder := reload.NewHolder(validated)

	watcher := reload.NewWatcher(holder, schema, sources, []string{cfg.Input.EnvFile}, log.GetChildLogger())
	watcher.OnSwap(func(previous, current *scope.Config) {
		log.Info().
			Str("previous_snapshot_id", previous.ID().String()).
			Str("snapshot_id", current.ID().String()).
			Msg("configuration swapped")
	})

	if err := watcher.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running watcher")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	// Stderr, so view dumps on stdout stay pipeable.
	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
