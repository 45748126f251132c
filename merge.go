// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

// MergeDefinitions merges definition slices preserving input order.
//
// Part slices are copied so the result does not alias the inputs.
func MergeDefinitions(sets ...[]Definition) []Definition {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]Definition, 0, total)
	for _, set := range sets {
		for _, def := range set {
			def.Parts = append([]Part(nil), def.Parts...)
			out = append(out, def)
		}
	}

	return out
}
