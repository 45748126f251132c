// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import "fmt"

// resolver holds per-call resolution state. It is discarded after Resolve returns.
type resolver struct {
	// store is the caller-owned definition mapping.
	store Store
	// memo stores resolved patterns by id for this call only.
	memo map[string]*Pattern
	// active marks ids whose resolution is in progress.
	active map[string]struct{}
	// stack is the chain of ids currently being resolved.
	stack []string
}

// Resolve expands pattern id and every pattern it references into one
// compiled pattern.
//
// Reference parts are replaced in place by the segments of their target,
// depth-first and left to right. Each id is resolved at most once per call;
// repeated references reuse the same *Pattern. Nothing is cached across calls.
//
// Resolution fails with *UnknownPatternError for a missing id,
// *CyclicReferenceError when an id is revisited before completion, or an
// ErrInvalidSegment wrap for a malformed segment. No partial pattern is returned.
func Resolve(store Store, id string) (*Pattern, error) {
	r := &resolver{
		store:  store,
		memo:   make(map[string]*Pattern),
		active: make(map[string]struct{}),
	}

	return r.resolve(id, "")
}

// resolve resolves one id; referrer names the pattern that referenced it.
func (r *resolver) resolve(id string, referrer string) (*Pattern, error) {
	if cached, ok := r.memo[id]; ok {
		return cached, nil
	}

	if _, ok := r.active[id]; ok {
		return nil, &CyclicReferenceError{Chain: r.cycleFrom(id)}
	}

	def, ok := r.store[id]
	if !ok {
		return nil, &UnknownPatternError{ID: id, Referrer: referrer}
	}

	r.active[id] = struct{}{}
	r.stack = append(r.stack, id)
	defer func() {
		delete(r.active, id)
		r.stack = r.stack[:len(r.stack)-1]
	}()

	segments := make([]Segment, 0, len(def.Parts))
	for i, part := range def.Parts {
		if part.IsReference() {
			sub, err := r.resolve(part.Ref, id)
			if err != nil {
				return nil, err
			}

			segments = append(segments, sub.segments...)
			continue
		}

		if err := part.Segment.validate(); err != nil {
			return nil, fmt.Errorf("pattern %q part %d: %w", id, i, err)
		}

		segments = append(segments, part.Segment)
	}

	p := &Pattern{
		id:       id,
		name:     def.Name,
		segments: segments,
	}
	r.memo[id] = p
	return p, nil
}

// cycleFrom returns the active chain starting at id and closed by id.
func (r *resolver) cycleFrom(id string) []string {
	start := 0
	for i := range r.stack {
		if r.stack[i] == id {
			start = i
			break
		}
	}

	chain := make([]string, 0, len(r.stack)-start+1)
	chain = append(chain, r.stack[start:]...)
	return append(chain, id)
}
