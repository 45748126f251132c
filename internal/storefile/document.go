// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

// Package storefile reads and writes pattern definition documents in YAML,
// TOML, HCL, JSON and the line-based text syntax.
package storefile

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathcompose"
)

// Document is the on-disk form of a set of pattern definitions and sample paths.
type Document struct {
	Patterns []PatternDoc `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty" hcl:"pattern,block"`
	Paths    []PathDoc    `json:"paths,omitempty" yaml:"paths,omitempty" toml:"paths,omitempty" hcl:"path,block"`
}

// PatternDoc is one pattern definition. At most one of Pattern, Literal and
// Parts describes its parts; none set is an empty pattern. Literal is a plain
// path whose segments are all constants.
type PatternDoc struct {
	ID      string    `json:"id" yaml:"id" toml:"id" hcl:"id,label"`
	Name    string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" hcl:"name,optional"`
	Pattern string    `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
	Literal string    `json:"literal,omitempty" yaml:"literal,omitempty" toml:"literal,omitempty" hcl:"literal,optional"`
	Parts   []PartDoc `json:"parts,omitempty" yaml:"parts,omitempty" toml:"parts,omitempty" hcl:"part,block"`
}

// PartDoc is one structured part: a constant, a reference or a parameter.
type PartDoc struct {
	Const    string `json:"const,omitempty" yaml:"const,omitempty" toml:"const,omitempty" hcl:"const,optional"`
	Ref      string `json:"ref,omitempty" yaml:"ref,omitempty" toml:"ref,omitempty" hcl:"ref,optional"`
	Param    string `json:"param,omitempty" yaml:"param,omitempty" toml:"param,omitempty" hcl:"param,optional"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty" hcl:"kind,optional"`
	Glob     string `json:"glob,omitempty" yaml:"glob,omitempty" toml:"glob,omitempty" hcl:"glob,optional"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty" toml:"optional,omitempty" hcl:"optional,optional"`
}

// PathDoc is a sample path checked against patterns.
type PathDoc struct {
	Path  string `json:"path" yaml:"path" toml:"path" hcl:"path,label"`
	Exact bool   `json:"exact,omitempty" yaml:"exact,omitempty" toml:"exact,omitempty" hcl:"exact,optional"`
}

// Definitions converts every pattern document into a definition, in order.
func (d *Document) Definitions() ([]pathcompose.Definition, error) {
	defs := make([]pathcompose.Definition, 0, len(d.Patterns))
	for i := range d.Patterns {
		def, err := d.Patterns[i].Definition()
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// Definition converts the document into a definition. Name defaults to ID.
func (p PatternDoc) Definition() (pathcompose.Definition, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return pathcompose.Definition{}, fmt.Errorf("%w: pattern without id", ErrInvalidDocument)
	}

	set := 0
	for _, ok := range []bool{p.Pattern != "", p.Literal != "", len(p.Parts) > 0} {
		if ok {
			set++
		}
	}

	if set > 1 {
		return pathcompose.Definition{}, fmt.Errorf("%w: pattern %q sets more than one of pattern, literal and parts", ErrInvalidDocument, id)
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = id
	}

	var parts []pathcompose.Part
	switch {
	case p.Pattern != "":
		parsed, err := pathcompose.ParseParts(p.Pattern)
		if err != nil {
			return pathcompose.Definition{}, fmt.Errorf("pattern %q: %w", id, err)
		}

		parts = parsed
	case p.Literal != "":
		parts = pathcompose.ParseConstants(p.Literal)
	default:
		parts = make([]pathcompose.Part, 0, len(p.Parts))
		for i := range p.Parts {
			part, err := p.Parts[i].Part()
			if err != nil {
				return pathcompose.Definition{}, fmt.Errorf("pattern %q part %d: %w", id, i, err)
			}

			parts = append(parts, part)
		}
	}

	return pathcompose.Definition{ID: id, Name: name, Parts: parts}, nil
}

// Part converts the document into a definition part.
func (p PartDoc) Part() (pathcompose.Part, error) {
	set := 0
	for _, v := range []string{p.Const, p.Ref, p.Param} {
		if v != "" {
			set++
		}
	}

	if set != 1 {
		return pathcompose.Part{}, fmt.Errorf("%w: part needs exactly one of const, ref or param", ErrInvalidDocument)
	}

	if p.Param == "" && (p.Kind != "" || p.Glob != "" || p.Optional) {
		return pathcompose.Part{}, fmt.Errorf("%w: kind, glob and optional apply to params only", ErrInvalidDocument)
	}

	switch {
	case p.Const != "":
		return pathcompose.Constant(p.Const), nil
	case p.Ref != "":
		return pathcompose.Reference(p.Ref), nil
	}

	var part pathcompose.Part
	if p.Glob != "" {
		if kind := strings.ToLower(strings.TrimSpace(p.Kind)); kind != "" && kind != "glob" {
			return pathcompose.Part{}, fmt.Errorf("%w: param %q sets glob with kind %q", ErrInvalidDocument, p.Param, p.Kind)
		}

		part = pathcompose.Glob(p.Param, p.Glob)
	} else {
		kind, err := pathcompose.ParseKind(p.Kind)
		if err != nil {
			return pathcompose.Part{}, fmt.Errorf("%w: param %q: %w", ErrInvalidDocument, p.Param, err)
		}

		if kind == pathcompose.KindConstant || kind == pathcompose.KindGlob {
			return pathcompose.Part{}, fmt.Errorf("%w: param %q cannot use kind %q without glob", ErrInvalidDocument, p.Param, p.Kind)
		}

		part = pathcompose.Parameter(p.Param, kind)
	}

	if p.Optional {
		part = part.AsOptional()
	}

	return part, nil
}

// FromDefinitions builds a document holding defs as structured parts and paths.
func FromDefinitions(defs []pathcompose.Definition, paths []PathDoc) *Document {
	doc := &Document{
		Patterns: make([]PatternDoc, 0, len(defs)),
		Paths:    append([]PathDoc(nil), paths...),
	}

	for _, def := range defs {
		pd := PatternDoc{ID: def.ID}
		if def.Name != def.ID {
			pd.Name = def.Name
		}

		for _, part := range def.Parts {
			pd.Parts = append(pd.Parts, partDoc(part))
		}

		doc.Patterns = append(doc.Patterns, pd)
	}

	return doc
}

// partDoc converts a definition part into its document form.
func partDoc(part pathcompose.Part) PartDoc {
	if part.IsReference() {
		return PartDoc{Ref: part.Ref}
	}

	seg := part.Segment
	switch seg.Kind {
	case pathcompose.KindConstant:
		return PartDoc{Const: seg.Name}
	case pathcompose.KindGlob:
		return PartDoc{Param: seg.Name, Glob: seg.Glob, Optional: seg.Optional}
	default:
		return PartDoc{Param: seg.Name, Kind: seg.Kind.String(), Optional: seg.Optional}
	}
}
