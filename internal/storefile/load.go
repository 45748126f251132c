// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package storefile

import (
	"context"
	"fmt"
	"os"

	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/logging"
)

// Bundle is the merged content of one or more document files.
type Bundle struct {
	// Definitions in file order, then document order.
	Definitions []pathcompose.Definition
	// Paths are sample paths in file order.
	Paths []PathDoc
	// Files lists the loaded files.
	Files []string
}

// Store indexes the bundle definitions.
func (b *Bundle) Store() (pathcompose.Store, error) {
	return pathcompose.NewStore(b.Definitions...)
}

// Document returns the bundle as a single document.
func (b *Bundle) Document() *Document {
	return FromDefinitions(b.Definitions, b.Paths)
}

// LoadFile reads one document file, picking the format by extension.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	if format == FormatText {
		defs, err := pathcompose.LoadDefinitionsFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return FromDefinitions(defs, nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Decode(format, path, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return doc, nil
}

// LoadFiles expands file arguments and merges their documents in order.
//
// A pattern id defined twice, in one file or across files, is rejected with
// pathcompose.ErrDuplicateID.
func LoadFiles(ctx context.Context, patterns ...string) (*Bundle, error) {
	logger := logging.FromContext(ctx)

	files, err := Expand(patterns...)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, patterns)
	}

	bundle := &Bundle{Files: files}
	origin := make(map[string]string)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := LoadFile(file)
		if err != nil {
			return nil, err
		}

		defs, err := doc.Definitions()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}

		for _, def := range defs {
			if first, ok := origin[def.ID]; ok {
				return nil, fmt.Errorf("load %s: %w: %q already defined in %s", file, pathcompose.ErrDuplicateID, def.ID, first)
			}

			origin[def.ID] = file
		}

		bundle.Definitions = pathcompose.MergeDefinitions(bundle.Definitions, defs)
		bundle.Paths = append(bundle.Paths, doc.Paths...)
		logger.Debug("Loaded pattern file", "file", file, "patterns", len(defs), "paths", len(doc.Paths))
	}

	return bundle, nil
}
