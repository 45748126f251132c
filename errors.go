// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pathcompose operations.
var (
	// ErrUnknownPattern indicates a reference to a pattern id absent from the store.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrCyclicReference indicates a pattern that references itself, directly or not.
	ErrCyclicReference = errors.New("cyclic pattern reference")
	// ErrInvalidSegment indicates a malformed literal or parameter segment.
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrInvalidDefinition indicates malformed pattern definition input.
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrDuplicateID indicates two definitions sharing one id.
	ErrDuplicateID = errors.New("duplicate pattern id")
	// ErrInvalidPattern indicates malformed compact pattern syntax.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMissingValue indicates a required parameter without a value in Build.
	ErrMissingValue = errors.New("missing parameter value")
	// ErrInvalidValue indicates a parameter value that cannot be encoded.
	ErrInvalidValue = errors.New("invalid parameter value")
)

// UnknownPatternError reports a pattern id missing from the store.
type UnknownPatternError struct {
	// ID is the missing pattern id.
	ID string
	// Referrer is the pattern whose part named ID, empty for a top-level lookup.
	Referrer string
}

func (e *UnknownPatternError) Error() string {
	if e.Referrer == "" {
		return fmt.Sprintf("%s %q", ErrUnknownPattern, e.ID)
	}

	return fmt.Sprintf("%s %q (referenced by %q)", ErrUnknownPattern, e.ID, e.Referrer)
}

// Unwrap returns ErrUnknownPattern.
func (e *UnknownPatternError) Unwrap() error {
	return ErrUnknownPattern
}

// CyclicReferenceError reports a reference chain that revisits a pattern
// before its resolution completed.
type CyclicReferenceError struct {
	// Chain lists pattern ids from the revisited id back to itself.
	Chain []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicReference, strings.Join(e.Chain, " -> "))
}

// Unwrap returns ErrCyclicReference.
func (e *CyclicReferenceError) Unwrap() error {
	return ErrCyclicReference
}
