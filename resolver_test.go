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

func mustStore(t testing.TB, defs ...Definition) Store {
	t.Helper()

	store, err := NewStore(defs...)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return store
}

func mustResolve(t testing.TB, store Store, id string) *Pattern {
	t.Helper()

	p, err := Resolve(store, id)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", id, err)
	}

	return p
}

func TestResolveSplicesReferences(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "A", Parts: []Part{Constant("api")}},
		Definition{ID: "B", Parts: []Part{Reference("A"), Constant("v1")}},
	)

	p := mustResolve(t, store, "B")
	want := []Segment{
		{Kind: KindConstant, Name: "api"},
		{Kind: KindConstant, Name: "v1"},
	}

	if got := p.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments()=%+v, want %+v", got, want)
	}

	if p.ID() != "B" || p.Len() != 2 || p.String() != "api/v1" {
		t.Fatalf("unexpected pattern: id=%q len=%d str=%q", p.ID(), p.Len(), p.String())
	}
}

func TestResolveReferenceTransparency(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "inner", Parts: []Part{Constant("a"), Constant("b"), Constant("c")}},
		Definition{ID: "outer", Parts: []Part{Constant("x"), Reference("inner"), Constant("y")}},
	)

	inner := mustResolve(t, store, "inner")
	outer := mustResolve(t, store, "outer")

	want := append([]Segment{{Kind: KindConstant, Name: "x"}}, inner.Segments()...)
	want = append(want, Segment{Kind: KindConstant, Name: "y"})
	if got := outer.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments()=%+v, want %+v", got, want)
	}
}

func TestResolveDepthFirstOrder(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "leaf", Parts: []Part{Constant("l")}},
		Definition{ID: "mid", Parts: []Part{Constant("m1"), Reference("leaf"), Constant("m2")}},
		Definition{ID: "root", Parts: []Part{Reference("mid"), Constant("r"), Reference("leaf")}},
	)

	if got := mustResolve(t, store, "root").String(); got != "m1/l/m2/r/l" {
		t.Fatalf("String()=%q, want m1/l/m2/r/l", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "A", Parts: []Part{Constant("api"), Parameter("id", KindInteger)}},
		Definition{ID: "B", Parts: []Part{Reference("A"), Reference("A")}},
	)

	first := mustResolve(t, store, "B")
	second := mustResolve(t, store, "B")

	if first == second {
		t.Fatalf("Resolve must not cache compiled patterns across calls")
	}

	if !reflect.DeepEqual(first.Segments(), second.Segments()) {
		t.Fatalf("segments differ: %+v vs %+v", first.Segments(), second.Segments())
	}
}

func TestResolveMemoReusesPatternWithinCall(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "A", Parts: []Part{Constant("a")}},
		Definition{ID: "B", Parts: []Part{Reference("A"), Reference("A")}},
	)

	r := &resolver{
		store:  store,
		memo:   make(map[string]*Pattern),
		active: make(map[string]struct{}),
	}

	if _, err := r.resolve("B", ""); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	cached := r.memo["A"]
	again, err := r.resolve("A", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cached == nil || again != cached {
		t.Fatalf("memoized pattern not reused within one resolution")
	}
}

func TestResolveUnknownTopLevel(t *testing.T) {
	t.Parallel()

	_, err := Resolve(mustStore(t), "missing")

	var unknown *UnknownPatternError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want *UnknownPatternError", err)
	}

	if unknown.ID != "missing" || unknown.Referrer != "" {
		t.Fatalf("unexpected error fields: %+v", unknown)
	}

	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err=%v must wrap ErrUnknownPattern", err)
	}
}

func TestResolveUnknownNestedReference(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "X", Parts: []Part{Constant("x"), Reference("M1")}},
		Definition{ID: "M1", Parts: []Part{Reference("M2")}},
		Definition{ID: "M2", Parts: []Part{Constant("m"), Reference("Y")}},
	)

	p, err := Resolve(store, "X")
	if p != nil {
		t.Fatalf("partial pattern returned: %v", p)
	}

	var unknown *UnknownPatternError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want *UnknownPatternError", err)
	}

	if unknown.ID != "Y" || unknown.Referrer != "M2" {
		t.Fatalf("unexpected error fields: %+v", unknown)
	}

	if got := err.Error(); got != `unknown pattern "Y" (referenced by "M2")` {
		t.Fatalf("Error()=%q", got)
	}
}

func TestResolveDetectsCycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		defs  []Definition
		id    string
		chain []string
	}{
		{
			name:  "self reference",
			defs:  []Definition{{ID: "A", Parts: []Part{Constant("a"), Reference("A")}}},
			id:    "A",
			chain: []string{"A", "A"},
		},
		{
			name: "mutual reference",
			defs: []Definition{
				{ID: "A", Parts: []Part{Reference("B")}},
				{ID: "B", Parts: []Part{Reference("A")}},
			},
			id:    "A",
			chain: []string{"A", "B", "A"},
		},
		{
			name: "cycle below entry point",
			defs: []Definition{
				{ID: "root", Parts: []Part{Constant("r"), Reference("B")}},
				{ID: "B", Parts: []Part{Reference("C")}},
				{ID: "C", Parts: []Part{Reference("B")}},
			},
			id:    "root",
			chain: []string{"B", "C", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(mustStore(t, tt.defs...), tt.id)

			var cyclic *CyclicReferenceError
			if !errors.As(err, &cyclic) {
				t.Fatalf("err=%v, want *CyclicReferenceError", err)
			}

			if !reflect.DeepEqual(cyclic.Chain, tt.chain) {
				t.Fatalf("Chain=%v, want %v", cyclic.Chain, tt.chain)
			}

			if !errors.Is(err, ErrCyclicReference) {
				t.Fatalf("err=%v must wrap ErrCyclicReference", err)
			}
		})
	}
}

func TestResolveDiamondIsNotACycle(t *testing.T) {
	t.Parallel()

	store := mustStore(t,
		Definition{ID: "base", Parts: []Part{Constant("b")}},
		Definition{ID: "left", Parts: []Part{Reference("base"), Constant("l")}},
		Definition{ID: "right", Parts: []Part{Reference("base"), Constant("r")}},
		Definition{ID: "top", Parts: []Part{Reference("left"), Reference("right")}},
	)

	if got := mustResolve(t, store, "top").String(); got != "b/l/b/r" {
		t.Fatalf("String()=%q, want b/l/b/r", got)
	}
}

func TestResolveRejectsInvalidSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part Part
	}{
		{name: "unknown kind", part: Part{Segment: Segment{Name: "x"}}},
		{name: "empty constant", part: Constant("")},
		{name: "constant with separator", part: Constant("a/b")},
		{name: "optional constant", part: Constant("a").AsOptional()},
		{name: "empty parameter name", part: Parameter("", KindInteger)},
		{name: "reserved parameter name", part: Parameter("a<b", KindString)},
		{name: "empty glob", part: Glob("file", "")},
		{name: "invalid glob", part: Glob("file", "[a-")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mustStore(t, Definition{ID: "p", Parts: []Part{Constant("ok"), tt.part}})
			_, err := Resolve(store, "p")
			if !errors.Is(err, ErrInvalidSegment) {
				t.Fatalf("err=%v, want ErrInvalidSegment", err)
			}

			if !strings.Contains(err.Error(), `pattern "p" part 1`) {
				t.Fatalf("err=%q lacks part context", err)
			}
		})
	}
}

func TestResolveEmptyPattern(t *testing.T) {
	t.Parallel()

	p := mustResolve(t, mustStore(t, Definition{ID: "empty"}), "empty")
	if p.Len() != 0 || p.String() != "" {
		t.Fatalf("unexpected empty pattern: len=%d str=%q", p.Len(), p.String())
	}
}

func TestResolveDoesNotMutateStore(t *testing.T) {
	t.Parallel()

	parts := []Part{Reference("A"), Constant("v1")}
	store := mustStore(t,
		Definition{ID: "A", Parts: []Part{Constant("api")}},
		Definition{ID: "B", Parts: parts},
	)

	p := mustResolve(t, store, "B")
	segs := p.Segments()
	segs[0].Name = "mutated"

	if p.String() != "api/v1" {
		t.Fatalf("Segments() must return a copy, got %q", p.String())
	}

	if !reflect.DeepEqual(store["B"].Parts, []Part{Reference("A"), Constant("v1")}) {
		t.Fatalf("store mutated: %+v", store["B"].Parts)
	}
}
