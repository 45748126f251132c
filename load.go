// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"bytes"
	"fmt"
	"os"
)

// LoadDefinitionsFile reads text definitions from path.
// Parse errors are reported as "path: line N: ...".
func LoadDefinitionsFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	defs, err := ParseDefinitions(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return defs, nil
}

// LoadDefinitionsFiles reads text definitions from paths and merges them in
// order. An id defined twice, in one file or across files, fails with
// ErrDuplicateID naming the file of both definitions.
func LoadDefinitionsFiles(paths ...string) ([]Definition, error) {
	sets := make([][]Definition, 0, len(paths))
	origin := make(map[string]string)
	for _, path := range paths {
		defs, err := LoadDefinitionsFile(path)
		if err != nil {
			return nil, err
		}

		for _, def := range defs {
			if first, ok := origin[def.ID]; ok {
				return nil, fmt.Errorf("%w: %q in %s, first defined in %s", ErrDuplicateID, def.ID, path, first)
			}

			origin[def.ID] = path
		}

		sets = append(sets, defs)
	}

	return MergeDefinitions(sets...), nil
}
