// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schemafile loads scope schema definitions from YAML documents.
//
// A schema document maps tier names to key descriptors:
//
//	server:
//	  DATABASE_URL: {type: url, required: true}
//	shared:
//	  LOG_LEVEL: {type: enum, values: [debug, info, warn, error], default: info}
//	client:
//	  PUBLIC_API_BASE: {type: url, required: true}
//
// The document is walked node by node so that key declaration order is
// preserved; validation diagnostics then come out in the order the operator
// wrote the keys. Structural rules (duplicates, the PUBLIC_ prefix, enum
// candidates) are not checked here; the produced definition goes through
// [scope.Define], which reports every structural fault at once.
package schemafile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-env-scope/pkg/scope"
)

// entryDoc is the YAML form of a single key descriptor.
type entryDoc struct {
	Type     string   `yaml:"type"`
	Required bool     `yaml:"required"`
	Default  string   `yaml:"default"`
	Values   []string `yaml:"values"`
}

// Load reads and parses a schema document from disk and compiles it through
// [scope.Define].
func Load(path string) (*scope.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file %q: %w", path, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing schema file %q: %w", path, err)
	}

	return scope.Define(def)
}

// Parse decodes a YAML schema document into a [scope.Definition], keeping
// key order. Document-level problems (unknown tier names, unknown type
// names) are all collected before failing.
func Parse(data []byte) (scope.Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return scope.Definition{}, fmt.Errorf("error decoding schema document: %w", err)
	}

	var def scope.Definition
	if root.Kind == 0 || len(root.Content) == 0 {
		return def, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return scope.Definition{}, errors.New("schema document must be a mapping of tiers")
	}

	var errs []error
	for i := 0; i+1 < len(doc.Content); i += 2 {
		tierNode, entriesNode := doc.Content[i], doc.Content[i+1]

		entries, err := parseTier(tierNode.Value, entriesNode)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		switch tierNode.Value {
		case "server":
			def.Server = append(def.Server, entries...)
		case "client":
			def.Client = append(def.Client, entries...)
		case "shared":
			def.Shared = append(def.Shared, entries...)
		default:
			errs = append(errs, fmt.Errorf("line %d: unknown tier %q, want server, client or shared",
				tierNode.Line, tierNode.Value))
		}
	}

	if len(errs) > 0 {
		return scope.Definition{}, errors.Join(errs...)
	}

	return def, nil
}

// parseTier decodes one tier mapping into entries, preserving order.
func parseTier(tier string, node *yaml.Node) ([]scope.Entry, error) {
	if node.Kind == yaml.ScalarNode && node.Value == "" {
		// Empty tier section.
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: tier %q must be a mapping of keys", node.Line, tier)
	}

	var (
		entries []scope.Entry
		errs    []error
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var doc entryDoc
		if err := valueNode.Decode(&doc); err != nil {
			errs = append(errs, fmt.Errorf("line %d: key %q: %w", valueNode.Line, keyNode.Value, err))
			continue
		}

		kind, err := kindOf(doc.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: key %q: %w", keyNode.Line, keyNode.Value, err))
			continue
		}

		entries = append(entries, scope.Entry{
			Key:      keyNode.Value,
			Kind:     kind,
			Required: doc.Required,
			Default:  doc.Default,
			Enum:     doc.Values,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return entries, nil
}

// kindOf maps a document type name onto a value kind. An omitted type means
// string.
func kindOf(name string) (scope.Kind, error) {
	switch name {
	case "", "string":
		return scope.KindString, nil
	case "number":
		return scope.KindNumber, nil
	case "boolean", "bool":
		return scope.KindBool, nil
	case "url":
		return scope.KindURL, nil
	case "enum":
		return scope.KindEnum, nil
	case "duration":
		return scope.KindDuration, nil
	default:
		return 0, fmt.Errorf("unknown type %q", name)
	}
}
