// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

// ParseConstants converts a literal path to constant parts.
//
// Accepted forms:
//   - "api/v1"
//   - "/api/v1/"
//   - "api//v1"
//
// Empty segments are skipped. Segment text is kept verbatim, so ":" or "@"
// have no special meaning here.
func ParseConstants(path string) []Part {
	segments := splitPath(path)
	parts := make([]Part, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, Constant(seg))
	}

	return parts
}
