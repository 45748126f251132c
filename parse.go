// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// escapedPrefixes are leading constant bytes that need a "\" escape.
	escapedPrefixes = `:@\`
	// paramNameReserved are bytes not allowed in parameter names.
	paramNameReserved = `/<>?`
)

// ParseParts parses a compact pattern expression into definition parts.
//
// Syntax, one item per "/"-separated segment:
//   - "users" is a constant
//   - "@id" references pattern id
//   - ":name" is a string parameter
//   - ":name<int>" is a typed parameter (string, int, number, uuid)
//   - ":name<glob:*.json>" is a glob parameter
//   - a trailing "?" on a parameter makes it optional
//   - "\:x", "\@x" and "\\x" escape a constant starting with ":", "@" or "\"
//
// The expression is trimmed and empty segments are skipped, so "" is a valid
// empty pattern and "/ a/" is the single constant " a".
func ParseParts(expr string) ([]Part, error) {
	items := strings.Split(strings.TrimSpace(expr), Separator)
	parts := make([]Part, 0, len(items))

	for _, item := range items {
		if item == "" {
			continue
		}

		part, err := parseItem(item)
		if err != nil {
			return nil, err
		}

		parts = append(parts, part)
	}

	return parts, nil
}

// FormatParts returns the compact expression of parts, readable by ParseParts.
func FormatParts(parts []Part) string {
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.IsReference() {
			items = append(items, "@"+part.Ref)
			continue
		}

		items = append(items, part.Segment.String())
	}

	return joinSegments(items)
}

// parseItem parses one segment of a compact pattern expression.
func parseItem(item string) (Part, error) {
	switch item[0] {
	case '\\':
		if len(item) == 1 {
			return Part{}, fmt.Errorf("%w: dangling escape", ErrInvalidPattern)
		}

		return Constant(item[1:]), nil
	case '@':
		id := item[1:]
		if id == "" {
			return Part{}, fmt.Errorf("%w: empty reference", ErrInvalidPattern)
		}

		return Reference(id), nil
	case ':':
		return parseParam(item[1:])
	default:
		return Constant(item), nil
	}
}

// parseParam parses ":name[<kind>][?]" without the leading colon.
func parseParam(src string) (Part, error) {
	optional := false
	if rest, ok := strings.CutSuffix(src, "?"); ok {
		optional = true
		src = rest
	}

	name := src
	kindSpec := ""
	if open := strings.IndexByte(src, '<'); open >= 0 {
		if !strings.HasSuffix(src, ">") {
			return Part{}, fmt.Errorf("%w: unterminated kind in %q", ErrInvalidPattern, src)
		}

		name = src[:open]
		kindSpec = src[open+1 : len(src)-1]
	}

	if name == "" {
		return Part{}, fmt.Errorf("%w: parameter without name", ErrInvalidPattern)
	}

	if strings.ContainsAny(name, paramNameReserved) {
		return Part{}, fmt.Errorf("%w: parameter name %q contains one of %q", ErrInvalidPattern, name, paramNameReserved)
	}

	var part Part
	if expr, ok := strings.CutPrefix(kindSpec, "glob:"); ok {
		part = Glob(name, expr)
	} else {
		kind, err := ParseKind(kindSpec)
		if err != nil {
			return Part{}, fmt.Errorf("%w: parameter %q: %v", ErrInvalidPattern, name, err)
		}

		if kind == KindConstant || kind == KindGlob {
			return Part{}, fmt.Errorf("%w: parameter %q cannot use kind %q", ErrInvalidPattern, name, kindSpec)
		}

		part = Parameter(name, kind)
	}

	if optional {
		part = part.AsOptional()
	}

	return part, nil
}

// ParseDefinitions parses line-based pattern definitions from reader.
//
// Semantics:
//   - blank lines and "#" comments are ignored
//   - "id = expr" defines pattern id with display name id
//   - "id (Display Name) = expr" sets a display name
//   - expr uses the ParseParts syntax
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	s := bufio.NewScanner(r)
	defs := make([]Definition, 0, 16)

	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		head, expr, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing \"=\"", ErrInvalidPattern, line)
		}

		id, name, err := parseDefinitionHead(strings.TrimSpace(head))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		parts, err := ParseParts(expr)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		defs = append(defs, Definition{
			ID:    id,
			Name:  name,
			Parts: parts,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan definitions: %w", err)
	}

	return defs, nil
}

// ParseDefinitionsString parses definitions from string input.
func ParseDefinitionsString(src string) ([]Definition, error) {
	return ParseDefinitions(strings.NewReader(src))
}

// parseDefinitionHead parses "id" or "id (Display Name)".
func parseDefinitionHead(head string) (string, string, error) {
	id, name := head, head
	if open := strings.IndexByte(head, '('); open >= 0 {
		if !strings.HasSuffix(head, ")") {
			return "", "", fmt.Errorf("%w: unterminated name in %q", ErrInvalidPattern, head)
		}

		id = strings.TrimSpace(head[:open])
		name = strings.TrimSpace(head[open+1 : len(head)-1])
		if name == "" {
			name = id
		}
	}

	if id == "" || strings.ContainsAny(id, " \t/") {
		return "", "", fmt.Errorf("%w: invalid pattern id %q", ErrInvalidPattern, id)
	}

	return id, name, nil
}
