// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// fileSource reads a .env file from disk on every Load.
type fileSource struct {
	path string
}

// File returns a Source over a .env file. The file is re-read on every Load,
// so a reload picks up edits. Supported grammar:
//
//   - KEY=VALUE lines
//   - comment lines starting with #
//   - empty lines (skipped)
//   - values wrapped in double or single quotes (quotes stripped)
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return ".env file " + s.path }

func (s fileSource) Load() (map[string]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening env file %q: %w", s.path, err)
	}
	defer f.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Strip surrounding quotes.
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", s.path, err)
	}

	return values, nil
}
