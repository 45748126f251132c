// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import "strings"

// Match matches path against compiled pattern p.
//
// Matching policy:
//   - pattern and path segments are walked in lock-step
//   - a constant segment needs a byte-equal path segment
//   - a parameter segment needs a decodable path segment and records a capture
//   - an optional parameter that cannot decode is skipped without consuming input
//   - leftover path segments form the remainder, rejected when exact is set
//
// A mismatch is reported as the zero MatchResult, never as an error.
func Match(p *Pattern, path string, exact bool) MatchResult {
	if p == nil {
		return MatchResult{}
	}

	return p.Match(path, exact)
}

// Match matches path against the pattern, see Match.
func (p *Pattern) Match(path string, exact bool) MatchResult {
	parts := splitPath(path)

	var captures []Capture
	idx := 0
	for i := range p.segments {
		seg := &p.segments[i]
		if idx >= len(parts) {
			if seg.Optional {
				continue
			}

			// Every required pattern segment must be satisfied.
			return MatchResult{}
		}

		value, ok := seg.decode(parts[idx])
		if !ok {
			if seg.Optional {
				continue
			}

			return MatchResult{}
		}

		if seg.Kind.captures() {
			captures = append(captures, Capture{Name: seg.Name, Value: value})
		}

		idx++
	}

	remainder := strings.Join(parts[idx:], Separator)
	if exact && remainder != "" {
		return MatchResult{}
	}

	return MatchResult{
		Matched:   true,
		Exact:     remainder == "",
		Captures:  captures,
		Remainder: remainder,
	}
}

// MatchExact matches path requiring the whole path to be consumed.
func (p *Pattern) MatchExact(path string) MatchResult {
	return p.Match(path, true)
}

// MatchPrefix matches path allowing an unconsumed remainder.
func (p *Pattern) MatchPrefix(path string) MatchResult {
	return p.Match(path, false)
}
