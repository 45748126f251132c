// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Store maps pattern ids to definitions. It is owned by the caller and never
// mutated by this package.
type Store map[string]Definition

// NewStore indexes definitions by id.
//
// Definitions with empty ids or ids already present are rejected.
func NewStore(defs ...Definition) (Store, error) {
	store := make(Store, len(defs))
	for i := range defs {
		id := defs[i].ID
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: definition %d has empty id", ErrInvalidDefinition, i)
		}

		if _, ok := store[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}

		store[id] = defs[i]
	}

	return store, nil
}

// Resolve resolves pattern id against the store, see Resolve.
func (s Store) Resolve(id string) (*Pattern, error) {
	return Resolve(s, id)
}

// IDs returns store ids in sorted order.
func (s Store) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return ids
}

// Validate resolves every pattern in the store and joins all failures.
//
// Each id is resolved by its own Resolve call, in sorted id order.
func Validate(store Store) error {
	var errs []error
	for _, id := range store.IDs() {
		if _, err := Resolve(store, id); err != nil {
			errs = append(errs, fmt.Errorf("resolve %q: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
