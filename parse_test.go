// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package pathcompose

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseParts(t *testing.T) {
	t.Parallel()

	parts, err := ParseParts(`/users/@ids/:name/:age<int>/:score<number>?/:id<uuid>/:file<glob:*.json>/\:literal/\@at/\\back/`)
	if err != nil {
		t.Fatalf("ParseParts: %v", err)
	}

	want := []Part{
		Constant("users"),
		Reference("ids"),
		Parameter("name", KindString),
		Parameter("age", KindInteger),
		Parameter("score", KindNumber).AsOptional(),
		Parameter("id", KindUUID),
		Glob("file", "*.json"),
		Constant(":literal"),
		Constant("@at"),
		Constant(`\back`),
	}

	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts=%+v\nwant %+v", parts, want)
	}
}

func TestParsePartsEmpty(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"", "/", " // "} {
		parts, err := ParseParts(expr)
		if err != nil {
			t.Fatalf("ParseParts(%q): %v", expr, err)
		}

		if len(parts) != 0 {
			t.Fatalf("ParseParts(%q)=%+v, want empty", expr, parts)
		}
	}
}

func TestParsePartsErrors(t *testing.T) {
	t.Parallel()

	tests := []string{
		`a/\`,
		`@`,
		`:`,
		`:?`,
		`:<int>`,
		`:n<int`,
		`:n<bogus>`,
		`:n<const>`,
		`:n<glob>`,
		`:a>b`,
	}

	for _, expr := range tests {
		if _, err := ParseParts(expr); !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("ParseParts(%q) err=%v, want ErrInvalidPattern", expr, err)
		}
	}
}

func TestPatternStringRoundTrip(t *testing.T) {
	t.Parallel()

	const expr = `api/:name/:n<int>?/:x<number>/:u<uuid>/:f<glob:*.{a,b}>/\:c/\@d`
	parts, err := ParseParts(expr)
	if err != nil {
		t.Fatalf("ParseParts: %v", err)
	}

	p := compile(t, parts...)
	if p.String() != expr {
		t.Fatalf("String()=%q, want %q", p.String(), expr)
	}

	again, err := ParseParts(p.String())
	if err != nil {
		t.Fatalf("ParseParts(String()): %v", err)
	}

	if !reflect.DeepEqual(again, parts) {
		t.Fatalf("round trip parts=%+v, want %+v", again, parts)
	}
}

func TestPatternStringKeepsEdgeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		parts []Part
		want  string
	}{
		{parts: []Part{Constant(" a")}, want: "/ a"},
		{parts: []Part{Constant("a"), Constant("b ")}, want: "a/b /"},
		{parts: []Part{Constant(" "), Constant("x"), Constant("\t")}, want: "/ /x/\t/"},
		{parts: []Part{Constant("a b"), Constant("c")}, want: "a b/c"},
	}

	for _, tt := range tests {
		p := compile(t, tt.parts...)
		if got := p.String(); got != tt.want {
			t.Fatalf("String()=%q, want %q", got, tt.want)
		}

		if got := FormatParts(tt.parts); got != tt.want {
			t.Fatalf("FormatParts()=%q, want %q", got, tt.want)
		}

		again, err := ParseParts(p.String())
		if err != nil || !reflect.DeepEqual(again, tt.parts) {
			t.Fatalf("ParseParts(%q)=%+v,%v, want %+v", p.String(), again, err, tt.parts)
		}

		if got := p.MatchExact(NormalizePath(p.String())); !got.Matched {
			t.Fatalf("pattern %q does not match its own text", p.String())
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"const":   KindConstant,
		"":        KindString,
		"str":     KindString,
		"INT":     KindInteger,
		"integer": KindInteger,
		"float":   KindNumber,
		"uuid":    KindUUID,
		"glob":    KindGlob,
	}

	for name, want := range tests {
		got, err := ParseKind(name)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q)=%v,%v, want %v", name, got, err, want)
		}
	}

	if _, err := ParseKind("date"); !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("ParseKind(date) err=%v, want ErrInvalidSegment", err)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("number")); err != nil || k != KindNumber {
		t.Fatalf("UnmarshalText(number)=%v,%v", k, err)
	}

	if _, err := KindUnknown.MarshalText(); !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("MarshalText(unknown) err=%v", err)
	}
}

func TestParseDefinitions(t *testing.T) {
	t.Parallel()

	defs, err := ParseDefinitionsString(`
# api root
api = api/v1
users (User list) = @api/users
user = @users/:id<int>

empty =
`)
	if err != nil {
		t.Fatalf("ParseDefinitionsString: %v", err)
	}

	want := []Definition{
		{ID: "api", Name: "api", Parts: []Part{Constant("api"), Constant("v1")}},
		{ID: "users", Name: "User list", Parts: []Part{Reference("api"), Constant("users")}},
		{ID: "user", Name: "user", Parts: []Part{Reference("users"), Parameter("id", KindInteger)}},
		{ID: "empty", Name: "empty", Parts: []Part{}},
	}

	if !reflect.DeepEqual(defs, want) {
		t.Fatalf("defs=%+v\nwant %+v", defs, want)
	}
}

func TestParseDefinitionsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		line string
	}{
		{src: "a = x\nbroken\n", line: "line 2"},
		{src: "\n\n= x\n", line: "line 3"},
		{src: "a (Name = x\n", line: "line 1"},
		{src: "a b = x\n", line: "line 1"},
		{src: "a = :n<bogus>\n", line: "line 1"},
	}

	for _, tt := range tests {
		_, err := ParseDefinitionsString(tt.src)
		if !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("src=%q err=%v, want ErrInvalidPattern", tt.src, err)
		}

		if !strings.Contains(err.Error(), tt.line) {
			t.Fatalf("src=%q err=%q, want %q", tt.src, err, tt.line)
		}
	}
}

func TestFormatParts(t *testing.T) {
	t.Parallel()

	parts := []Part{
		Reference("api"),
		Constant("users"),
		Parameter("id", KindInteger),
		Parameter("tab", KindString).AsOptional(),
		Constant("@home"),
	}

	const want = `@api/users/:id<int>/:tab?/\@home`
	if got := FormatParts(parts); got != want {
		t.Fatalf("FormatParts()=%q, want %q", got, want)
	}

	again, err := ParseParts(want)
	if err != nil || !reflect.DeepEqual(again, parts) {
		t.Fatalf("ParseParts(%q)=%+v,%v", want, again, err)
	}
}
