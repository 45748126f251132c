// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator delimits path segments.
const Separator = "/"

// splitPath splits a path into non-empty segments.
//
// Leading, trailing and repeated separators are dropped, so "", "/" and
// "//" all yield zero segments. Whitespace and dot segments are kept verbatim.
func splitPath(raw string) []string {
	if raw == "" {
		return nil
	}

	// Fast path for already-normalized paths.
	if isSimpleNormalizedPath(raw) {
		return strings.Split(raw, Separator)
	}

	parts := strings.Split(raw, Separator)
	out := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}

// NormalizePath returns path in the form matched against patterns:
// non-empty segments joined by a single separator, without leading or
// trailing separators.
func NormalizePath(raw string) string {
	return strings.Join(splitPath(raw), Separator)
}

// joinSegments joins compact segment items with the separator. When the
// result would begin or end with whitespace, it is wrapped in separators so
// that ParseParts, which trims the expression, reads the same items back.
func joinSegments(items []string) string {
	out := strings.Join(items, Separator)
	if out == "" {
		return out
	}

	first, _ := utf8.DecodeRuneInString(out)
	last, _ := utf8.DecodeLastRuneInString(out)
	if unicode.IsSpace(first) {
		out = Separator + out
	}

	if unicode.IsSpace(last) {
		out += Separator
	}

	return out
}

// isSimpleNormalizedPath reports whether path has no empty segments.
func isSimpleNormalizedPath(path string) bool {
	if path == "" ||
		strings.HasPrefix(path, Separator) ||
		strings.HasSuffix(path, Separator) ||
		strings.Contains(path, "//") {
		return false
	}

	return true
}
