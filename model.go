// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

// Kind is a parameter segment kind.
type Kind uint8

const (
	// KindUnknown is unset/invalid kind placeholder.
	KindUnknown Kind = iota
	// KindConstant matches one literal path segment.
	KindConstant
	// KindString captures one path-unescaped segment.
	KindString
	// KindInteger captures one canonical base-10 integer segment.
	KindInteger
	// KindNumber captures one finite floating point segment.
	KindNumber
	// KindUUID captures one canonical UUID segment.
	KindUUID
	// KindGlob captures one segment matching a glob expression.
	KindGlob
)

// Segment is one resolved, non-reference unit of a pattern.
type Segment struct {
	// Name is the literal text for constants and the capture name for parameters.
	Name string `json:"name" yaml:"name"`
	// Glob is the glob expression used by KindGlob.
	Glob string `json:"glob,omitempty" yaml:"glob,omitempty"`
	// Kind selects decode and encode behavior.
	Kind Kind `json:"kind" yaml:"kind"`
	// Optional lets a parameter be skipped when the path segment does not decode.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Part is one element of a pattern definition: a reference when Ref is set,
// otherwise the embedded segment.
type Part struct {
	// Ref is the id of the referenced pattern.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	// Segment is used when Ref is empty.
	Segment Segment `json:"segment" yaml:"segment"`
}

// Definition is one named pattern in a store.
type Definition struct {
	// ID uniquely identifies the definition in a store.
	ID string `json:"id" yaml:"id"`
	// Name is a display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Parts are resolved in order.
	Parts []Part `json:"parts" yaml:"parts"`
}

// Capture is one named value decoded by a parameter segment.
type Capture struct {
	// Name is the parameter name.
	Name string `json:"name" yaml:"name"`
	// Value is the decoded value: string, int64, float64 or uuid.UUID.
	Value any `json:"value" yaml:"value"`
}

// MatchResult is a deterministic match outcome. The zero value means no match.
type MatchResult struct {
	// Captures are decoded parameter values in pattern order.
	Captures []Capture `json:"captures,omitempty" yaml:"captures,omitempty"`
	// Remainder is the unconsumed path, segments joined with "/".
	Remainder string `json:"remainder,omitempty" yaml:"remainder,omitempty"`
	// Matched reports whether the path satisfied every pattern segment.
	Matched bool `json:"matched" yaml:"matched"`
	// Exact reports whether the match consumed the whole path.
	Exact bool `json:"exact" yaml:"exact"`
}

// Constant returns a literal segment part.
func Constant(name string) Part {
	return Part{Segment: Segment{Kind: KindConstant, Name: name}}
}

// Reference returns a part expanding to the segments of pattern id.
func Reference(id string) Part {
	return Part{Ref: id}
}

// Parameter returns a capturing segment part of the given kind.
func Parameter(name string, kind Kind) Part {
	return Part{Segment: Segment{Kind: kind, Name: name}}
}

// Glob returns a capturing segment part matching glob expression expr.
func Glob(name string, expr string) Part {
	return Part{Segment: Segment{Kind: KindGlob, Name: name, Glob: expr}}
}

// AsOptional returns a copy of the part with its segment marked optional.
func (p Part) AsOptional() Part {
	p.Segment.Optional = true
	return p
}

// IsReference reports whether part references another pattern.
func (p Part) IsReference() bool {
	return p.Ref != ""
}

// Value returns the first captured value with the given name.
func (r MatchResult) Value(name string) (any, bool) {
	for _, c := range r.Captures {
		if c.Name == name {
			return c.Value, true
		}
	}

	return nil, false
}

// Params returns captures keyed by name; later captures win on duplicate names.
func (r MatchResult) Params() map[string]any {
	out := make(map[string]any, len(r.Captures))
	for _, c := range r.Captures {
		out[c.Name] = c.Value
	}

	return out
}

// valid reports whether kind value is supported.
func (k Kind) valid() bool {
	return k >= KindConstant && k <= KindGlob
}

// captures reports whether segments of this kind produce a capture.
func (k Kind) captures() bool {
	return k != KindConstant
}
