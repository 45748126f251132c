// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gofrs/uuid/v5"
)

// Pattern is a compiled, reference-free segment sequence produced by Resolve.
// A Pattern is immutable once built.
type Pattern struct {
	id       string
	name     string
	segments []Segment
}

// kindNames maps kinds to their compact syntax names.
var kindNames = map[Kind]string{
	KindConstant: "const",
	KindString:   "string",
	KindInteger:  "int",
	KindNumber:   "number",
	KindUUID:     "uuid",
	KindGlob:     "glob",
}

// ID returns the id of the definition the pattern was resolved from.
func (p *Pattern) ID() string {
	return p.id
}

// Name returns the display name of the source definition.
func (p *Pattern) Name() string {
	return p.name
}

// Len returns the number of segments.
func (p *Pattern) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the compiled segment sequence.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// String returns the compact form of the pattern, readable by ParseParts.
func (p *Pattern) String() string {
	items := make([]string, len(p.segments))
	for i := range p.segments {
		items[i] = p.segments[i].String()
	}

	return joinSegments(items)
}

// String returns the compact form of one segment.
func (s Segment) String() string {
	if s.Kind == KindConstant {
		if s.Name != "" && strings.ContainsRune(escapedPrefixes, rune(s.Name[0])) {
			return `\` + s.Name
		}

		return s.Name
	}

	var b strings.Builder
	b.WriteByte(':')
	b.WriteString(s.Name)
	switch s.Kind {
	case KindString:
	case KindGlob:
		b.WriteString("<glob:")
		b.WriteString(s.Glob)
		b.WriteByte('>')
	default:
		b.WriteByte('<')
		b.WriteString(s.Kind.String())
		b.WriteByte('>')
	}

	if s.Optional {
		b.WriteByte('?')
	}

	return b.String()
}

// String returns the compact syntax name of kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: unsupported kind %d", ErrInvalidSegment, k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes kind by name.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = kind
	return nil
}

// ParseKind returns the kind for a compact syntax name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "const", "constant":
		return KindConstant, nil
	case "", "string", "str":
		return KindString, nil
	case "int", "integer":
		return KindInteger, nil
	case "number", "float":
		return KindNumber, nil
	case "uuid":
		return KindUUID, nil
	case "glob":
		return KindGlob, nil
	default:
		return KindUnknown, fmt.Errorf("%w: unknown kind %q", ErrInvalidSegment, name)
	}
}

// validate checks that segment can take part in a compiled pattern.
func (s Segment) validate() error {
	if !s.Kind.valid() {
		return fmt.Errorf("%w: unsupported kind %d", ErrInvalidSegment, s.Kind)
	}

	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSegment)
	}

	if s.Kind != KindConstant && strings.ContainsAny(s.Name, paramNameReserved) {
		return fmt.Errorf("%w: parameter name %q contains one of %q", ErrInvalidSegment, s.Name, paramNameReserved)
	}

	switch s.Kind {
	case KindConstant:
		if strings.Contains(s.Name, "/") {
			return fmt.Errorf("%w: constant %q contains separator", ErrInvalidSegment, s.Name)
		}

		if s.Optional {
			return fmt.Errorf("%w: constant %q cannot be optional", ErrInvalidSegment, s.Name)
		}
	case KindGlob:
		if s.Glob == "" {
			return fmt.Errorf("%w: glob %q has empty expression", ErrInvalidSegment, s.Name)
		}

		if strings.Contains(s.Glob, "/") || !doublestar.ValidatePattern(s.Glob) {
			return fmt.Errorf("%w: glob %q has invalid expression %q", ErrInvalidSegment, s.Name, s.Glob)
		}
	}

	return nil
}

// decode converts one path segment into a captured value.
// Constant segments report a nil value on success.
func (s Segment) decode(raw string) (any, bool) {
	switch s.Kind {
	case KindConstant:
		return nil, raw == s.Name
	case KindString:
		v, err := url.PathUnescape(raw)
		if err != nil {
			return nil, false
		}

		return v, true
	case KindInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || strconv.FormatInt(v, 10) != raw {
			return nil, false
		}

		return v, true
	case KindNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, false
		}

		return v, true
	case KindUUID:
		if len(raw) != 36 {
			return nil, false
		}

		v, err := uuid.FromString(raw)
		if err != nil {
			return nil, false
		}

		return v, true
	case KindGlob:
		if !doublestar.MatchUnvalidated(s.Glob, raw) {
			return nil, false
		}

		return raw, true
	default:
		return nil, false
	}
}

// encode converts a parameter value into one path segment.
func (s Segment) encode(value any) (string, error) {
	switch s.Kind {
	case KindConstant:
		return s.Name, nil
	case KindString:
		v, ok := value.(string)
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %q wants non-empty string, got %T", ErrInvalidValue, s.Name, value)
		}

		return url.PathEscape(v), nil
	case KindInteger:
		v, ok := asInt64(value)
		if !ok {
			return "", fmt.Errorf("%w: %q wants integer, got %T", ErrInvalidValue, s.Name, value)
		}

		return strconv.FormatInt(v, 10), nil
	case KindNumber:
		v, ok := asFloat64(value)
		if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
			return "", fmt.Errorf("%w: %q wants finite number, got %v", ErrInvalidValue, s.Name, value)
		}

		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case KindUUID:
		switch v := value.(type) {
		case uuid.UUID:
			return v.String(), nil
		case string:
			if _, ok := s.decode(v); !ok {
				return "", fmt.Errorf("%w: %q wants canonical uuid, got %q", ErrInvalidValue, s.Name, v)
			}

			return v, nil
		default:
			return "", fmt.Errorf("%w: %q wants uuid, got %T", ErrInvalidValue, s.Name, value)
		}
	case KindGlob:
		v, ok := value.(string)
		if !ok || !doublestar.MatchUnvalidated(s.Glob, v) || strings.Contains(v, "/") {
			return "", fmt.Errorf("%w: %q wants string matching %q, got %v", ErrInvalidValue, s.Name, s.Glob, value)
		}

		return v, nil
	default:
		return "", fmt.Errorf("%w: unsupported kind %d", ErrInvalidSegment, s.Kind)
	}
}

// asInt64 converts any Go integer value to int64.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	default:
		return 0, false
	}
}

// asFloat64 converts float and integer values to float64.
func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		i, ok := asInt64(value)
		return float64(i), ok
	}
}
