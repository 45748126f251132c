// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

// Package session holds the editable state of a pattern playground: pattern
// definitions, sample paths and the current selection.
//
// A Session is not safe for concurrent use. Evaluate recomputes everything
// from scratch on every call.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/storefile"
)

var (
	// ErrNotFound indicates an unknown pattern or path id.
	ErrNotFound = errors.New("not found")
	// ErrEmptyName indicates a blank pattern display name.
	ErrEmptyName = errors.New("empty pattern name")
)

// PathItem is one sample path checked against the selected pattern.
type PathItem struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Exact bool   `json:"exact"`
}

// PathMatch is a path item with its match outcome.
type PathMatch struct {
	PathItem
	// Result is nil when no pattern is selected or resolution failed.
	Result *pathcompose.MatchResult `json:"result,omitempty"`
}

// Evaluation is the outcome of resolving the selected pattern and matching
// every path item against it.
type Evaluation struct {
	// Pattern is the compiled selected pattern.
	Pattern *pathcompose.Pattern
	// Err is the resolution failure of the selected pattern.
	Err error
	// Paths holds one entry per path item, in order.
	Paths []PathMatch
	// Current points into Paths at the selected path item.
	Current *PathMatch
}

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator replaces the generator of new pattern and path ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for state change events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is an in-memory pattern playground.
type Session struct {
	defs            []pathcompose.Definition
	paths           []PathItem
	selectedPattern string
	selectedPath    string
	newID           func() string
	logger          *slog.Logger
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		newID:  newUUID,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// newUUID returns a random v4 uuid string.
func newUUID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Load replaces the session content with bundle definitions and paths.
// Selection is cleared.
func (s *Session) Load(bundle *storefile.Bundle) {
	s.defs = make([]pathcompose.Definition, 0, len(bundle.Definitions))
	for _, def := range bundle.Definitions {
		def.Parts = slices.Clone(def.Parts)
		s.defs = append(s.defs, def)
	}

	s.paths = make([]PathItem, 0, len(bundle.Paths))
	for _, p := range bundle.Paths {
		s.paths = append(s.paths, PathItem{ID: s.newID(), Path: p.Path, Exact: p.Exact})
	}

	s.selectedPattern, s.selectedPath = "", ""
	s.logger.Debug("Loaded session", "patterns", len(s.defs), "paths", len(s.paths))
}

// AddPattern appends an empty pattern named "pattern_N" and returns its id.
func (s *Session) AddPattern() string {
	def := pathcompose.Definition{
		ID:   s.newID(),
		Name: fmt.Sprintf("pattern_%d", len(s.defs)+1),
	}

	s.defs = append(s.defs, def)
	s.logger.Debug("Added pattern", "id", def.ID, "name", def.Name)
	return def.ID
}

// AddPath appends an empty prefix path item and returns its id.
func (s *Session) AddPath() string {
	item := PathItem{ID: s.newID()}
	s.paths = append(s.paths, item)
	s.logger.Debug("Added path", "id", item.ID)
	return item.ID
}

// RenamePattern sets the display name of pattern id.
func (s *Session) RenamePattern(id string, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	def, err := s.pattern(id)
	if err != nil {
		return err
	}

	def.Name = name
	return nil
}

// SetParts replaces the parts of pattern id.
func (s *Session) SetParts(id string, parts []pathcompose.Part) error {
	def, err := s.pattern(id)
	if err != nil {
		return err
	}

	def.Parts = slices.Clone(parts)
	return nil
}

// SetExpression replaces the parts of pattern id with a parsed compact expression.
//
// A reference may name a pattern by id or, when no id matches, by display name.
func (s *Session) SetExpression(id string, expr string) error {
	def, err := s.pattern(id)
	if err != nil {
		return err
	}

	parts, err := pathcompose.ParseParts(expr)
	if err != nil {
		return err
	}

	for i := range parts {
		if parts[i].IsReference() {
			parts[i].Ref = s.referenceID(parts[i].Ref)
		}
	}

	def.Parts = parts
	return nil
}

// Expression returns the parts of pattern id in compact form, naming
// references by display name where that name is unambiguous.
func (s *Session) Expression(id string) (string, error) {
	def, err := s.pattern(id)
	if err != nil {
		return "", err
	}

	parts := slices.Clone(def.Parts)
	for i := range parts {
		if !parts[i].IsReference() {
			continue
		}

		target := s.find(parts[i].Ref)
		if target < 0 {
			continue
		}

		name := s.defs[target].Name
		if !strings.Contains(name, pathcompose.Separator) && s.referenceID(name) == parts[i].Ref {
			parts[i].Ref = name
		}
	}

	return pathcompose.FormatParts(parts), nil
}

// SetPath updates the text and exact flag of path item id.
func (s *Session) SetPath(id string, path string, exact bool) error {
	i := s.findPath(id)
	if i < 0 {
		return fmt.Errorf("%w: path %q", ErrNotFound, id)
	}

	s.paths[i].Path = path
	s.paths[i].Exact = exact
	return nil
}

// RemovePattern deletes pattern id. Patterns referencing it fail to resolve afterwards.
func (s *Session) RemovePattern(id string) error {
	i := s.find(id)
	if i < 0 {
		return fmt.Errorf("%w: pattern %q", ErrNotFound, id)
	}

	s.defs = slices.Delete(s.defs, i, i+1)
	if s.selectedPattern == id {
		s.selectedPattern = ""
	}

	s.logger.Debug("Removed pattern", "id", id)
	return nil
}

// RemovePath deletes path item id.
func (s *Session) RemovePath(id string) error {
	i := s.findPath(id)
	if i < 0 {
		return fmt.Errorf("%w: path %q", ErrNotFound, id)
	}

	s.paths = slices.Delete(s.paths, i, i+1)
	if s.selectedPath == id {
		s.selectedPath = ""
	}

	s.logger.Debug("Removed path", "id", id)
	return nil
}

// SelectPattern selects pattern id; an empty id clears the selection.
func (s *Session) SelectPattern(id string) error {
	if id != "" && s.find(id) < 0 {
		return fmt.Errorf("%w: pattern %q", ErrNotFound, id)
	}

	s.selectedPattern = id
	return nil
}

// SelectPath selects path item id; an empty id clears the selection.
func (s *Session) SelectPath(id string) error {
	if id != "" && s.findPath(id) < 0 {
		return fmt.Errorf("%w: path %q", ErrNotFound, id)
	}

	s.selectedPath = id
	return nil
}

// SelectedPattern returns the selected pattern id, empty when none.
func (s *Session) SelectedPattern() string {
	return s.selectedPattern
}

// SelectedPath returns the selected path item id, empty when none.
func (s *Session) SelectedPath() string {
	return s.selectedPath
}

// Patterns returns a copy of the pattern definitions in creation order.
func (s *Session) Patterns() []pathcompose.Definition {
	out := make([]pathcompose.Definition, len(s.defs))
	for i, def := range s.defs {
		def.Parts = slices.Clone(def.Parts)
		out[i] = def
	}

	return out
}

// Paths returns a copy of the path items in creation order.
func (s *Session) Paths() []PathItem {
	return slices.Clone(s.paths)
}

// Store indexes the current definitions.
func (s *Session) Store() (pathcompose.Store, error) {
	return pathcompose.NewStore(s.defs...)
}

// Evaluate resolves the selected pattern and matches every path item against
// it with the item's own exact flag.
func (s *Session) Evaluate() Evaluation {
	ev := Evaluation{Paths: make([]PathMatch, len(s.paths))}

	if s.selectedPattern != "" {
		store, err := s.Store()
		if err == nil {
			ev.Pattern, err = pathcompose.Resolve(store, s.selectedPattern)
		}

		ev.Err = err
	}

	for i, item := range s.paths {
		ev.Paths[i].PathItem = item
		if ev.Pattern != nil {
			res := ev.Pattern.Match(item.Path, item.Exact)
			ev.Paths[i].Result = &res
		}

		if item.ID == s.selectedPath {
			ev.Current = &ev.Paths[i]
		}
	}

	s.logger.Debug("Evaluated session",
		"pattern", s.selectedPattern,
		"paths", len(ev.Paths),
		"error", ev.Err,
	)

	return ev
}

// pattern returns a pointer to the definition with id.
func (s *Session) pattern(id string) (*pathcompose.Definition, error) {
	i := s.find(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: pattern %q", ErrNotFound, id)
	}

	return &s.defs[i], nil
}

// find returns the index of pattern id or -1.
func (s *Session) find(id string) int {
	return slices.IndexFunc(s.defs, func(d pathcompose.Definition) bool { return d.ID == id })
}

// findPath returns the index of path item id or -1.
func (s *Session) findPath(id string) int {
	return slices.IndexFunc(s.paths, func(p PathItem) bool { return p.ID == id })
}

// referenceID maps a reference written by id or display name to a pattern id.
// Unknown names are returned unchanged and fail at resolution.
func (s *Session) referenceID(ref string) string {
	if s.find(ref) >= 0 {
		return ref
	}

	if i := slices.IndexFunc(s.defs, func(d pathcompose.Definition) bool { return d.Name == ref }); i >= 0 {
		return s.defs[i].ID
	}

	return ref
}
