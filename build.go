// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"fmt"
	"strings"
)

// Build serializes a path from parameter values keyed by name.
//
// Constants are written verbatim. Optional parameters without a value are
// omitted; required ones fail with ErrMissingValue. Matching is greedy, so an
// omitted optional value followed by a parameter of the same kind does not
// round-trip.
func (p *Pattern) Build(values map[string]any) (string, error) {
	parts := make([]string, 0, len(p.segments))
	for i := range p.segments {
		seg := &p.segments[i]
		if seg.Kind == KindConstant {
			parts = append(parts, seg.Name)
			continue
		}

		value, ok := values[seg.Name]
		if !ok || value == nil {
			if seg.Optional {
				continue
			}

			return "", fmt.Errorf("%w: %q", ErrMissingValue, seg.Name)
		}

		encoded, err := seg.encode(value)
		if err != nil {
			return "", err
		}

		parts = append(parts, encoded)
	}

	return strings.Join(parts, Separator), nil
}
