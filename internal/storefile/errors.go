// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package storefile

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension or format name without a codec.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrInvalidDocument indicates a document that decodes but does not describe valid definitions.
	ErrInvalidDocument = errors.New("invalid pattern document")
	// ErrNoFiles indicates that no input file was given or matched.
	ErrNoFiles = errors.New("no pattern files")
)
