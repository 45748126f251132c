// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package storefile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globMeta are bytes that turn an argument into a glob.
const globMeta = "*?[{"

// Expand resolves file arguments into a sorted, de-duplicated file list.
//
// Arguments with glob metacharacters are expanded with "**" support; a glob
// matching nothing contributes no files. Literal arguments must exist.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{}, len(patterns))
	files := make([]string, 0, len(patterns))
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if !strings.ContainsAny(pattern, globMeta) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", pattern, err)
			}

			if info.IsDir() {
				return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, pattern)
			}

			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			add(match)
		}
	}

	slices.Sort(files)
	return files, nil
}
