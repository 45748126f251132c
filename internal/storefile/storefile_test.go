// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package storefile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/pathcompose"
)

func expectedDefinitions() []pathcompose.Definition {
	return []pathcompose.Definition{
		{
			ID:    "api",
			Name:  "api",
			Parts: []pathcompose.Part{pathcompose.Constant("api"), pathcompose.Constant("v1")},
		},
		{
			ID:   "user",
			Name: "User",
			Parts: []pathcompose.Part{
				pathcompose.Reference("api"),
				pathcompose.Constant("users"),
				pathcompose.Parameter("id", pathcompose.KindInteger),
			},
		},
		{
			ID:   "file",
			Name: "file",
			Parts: []pathcompose.Part{
				pathcompose.Reference("user"),
				pathcompose.Glob("name", "*.json").AsOptional(),
			},
		},
	}
}

func expectedPaths() []PathDoc {
	return []PathDoc{
		{Path: "api/v1/users/42", Exact: true},
		{Path: "api/v1/users/42/data.json"},
	}
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		file      string
		wantPaths bool
	}{
		{file: "api.yaml", wantPaths: true},
		{file: "api.toml", wantPaths: true},
		{file: "api.hcl", wantPaths: true},
		{file: "api.json", wantPaths: true},
		{file: "api.pat"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			doc, err := LoadFile(filepath.Join("testdata", tt.file))
			require.NoError(t, err)

			defs, err := doc.Definitions()
			require.NoError(t, err)
			assert.Equal(t, expectedDefinitions(), defs)

			if tt.wantPaths {
				assert.Equal(t, expectedPaths(), doc.Paths)
			} else {
				assert.Empty(t, doc.Paths)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yml":      FormatYAML,
		"dir/A.YAML": FormatYAML,
		"a.toml":     FormatTOML,
		"a.hcl":      FormatHCL,
		"a.json":     FormatJSON,
		"a.patterns": FormatText,
		"x/y/z.pat":  FormatText,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("a.ini")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		src    string
	}{
		{format: FormatYAML, src: "patterns:\n  - id: a\n    extra: 1\n"},
		{format: FormatTOML, src: "[[patterns]]\nid = \"a\"\nextra = 1\n"},
		{format: FormatJSON, src: `{"patterns":[{"id":"a","extra":1}]}`},
		{format: FormatHCL, src: "pattern \"a\" {\n  extra = 1\n}\n"},
		{format: FormatHCL, src: "pattern \"a\" {\n"},
		{format: FormatText, src: "a\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := Decode(tt.format, "input", strings.NewReader(tt.src))
			require.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatTOML, FormatJSON, FormatHCL, FormatText} {
		doc, err := Decode(f, "empty", strings.NewReader(""))
		require.NoError(t, err, f)
		assert.Empty(t, doc.Patterns, f)
	}
}

func TestPartDoc(t *testing.T) {
	tests := []struct {
		name    string
		doc     PartDoc
		want    pathcompose.Part
		wantErr bool
	}{
		{name: "constant", doc: PartDoc{Const: "users"}, want: pathcompose.Constant("users")},
		{name: "reference", doc: PartDoc{Ref: "api"}, want: pathcompose.Reference("api")},
		{name: "string param", doc: PartDoc{Param: "slug"}, want: pathcompose.Parameter("slug", pathcompose.KindString)},
		{name: "uuid param", doc: PartDoc{Param: "id", Kind: "uuid"}, want: pathcompose.Parameter("id", pathcompose.KindUUID)},
		{name: "optional number", doc: PartDoc{Param: "n", Kind: "number", Optional: true}, want: pathcompose.Parameter("n", pathcompose.KindNumber).AsOptional()},
		{name: "glob with kind", doc: PartDoc{Param: "f", Kind: "glob", Glob: "*.md"}, want: pathcompose.Glob("f", "*.md")},
		{name: "nothing set", doc: PartDoc{}, wantErr: true},
		{name: "two set", doc: PartDoc{Const: "a", Ref: "b"}, wantErr: true},
		{name: "optional constant", doc: PartDoc{Const: "a", Optional: true}, wantErr: true},
		{name: "kind on reference", doc: PartDoc{Ref: "a", Kind: "int"}, wantErr: true},
		{name: "unknown kind", doc: PartDoc{Param: "a", Kind: "date"}, wantErr: true},
		{name: "glob kind without glob", doc: PartDoc{Param: "a", Kind: "glob"}, wantErr: true},
		{name: "glob with int kind", doc: PartDoc{Param: "a", Kind: "int", Glob: "*"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.doc.Part()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDocument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternDocErrors(t *testing.T) {
	_, err := PatternDoc{}.Definition()
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = PatternDoc{ID: "a", Pattern: "x", Parts: []PartDoc{{Const: "y"}}}.Definition()
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = PatternDoc{ID: "a", Pattern: "x", Literal: "y"}.Definition()
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = PatternDoc{ID: "a", Pattern: ":x<bogus>"}.Definition()
	require.ErrorIs(t, err, pathcompose.ErrInvalidPattern)
}

func TestPatternDocLiteral(t *testing.T) {
	def, err := PatternDoc{ID: "raw", Literal: "/static/:name/@v2/"}.Definition()
	require.NoError(t, err)

	assert.Equal(t, "raw", def.Name)
	assert.Equal(t, []pathcompose.Part{
		pathcompose.Constant("static"),
		pathcompose.Constant(":name"),
		pathcompose.Constant("@v2"),
	}, def.Parts)
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := FromDefinitions(expectedDefinitions(), expectedPaths())

	for _, f := range []Format{FormatYAML, FormatTOML, FormatJSON, FormatHCL, FormatText} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, f, doc))

			decoded, err := Decode(f, "encoded", &buf)
			require.NoError(t, err)

			defs, err := decoded.Definitions()
			require.NoError(t, err)
			assert.Equal(t, expectedDefinitions(), defs)

			if f != FormatText {
				assert.Equal(t, expectedPaths(), decoded.Paths)
			}
		})
	}

	require.ErrorIs(t, Encode(&bytes.Buffer{}, Format("xml"), doc), ErrUnsupportedFormat)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yaml", "sub/c.pat"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	files, err := Expand(
		filepath.Join(dir, "*.yaml"),
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "**", "*.pat"),
		filepath.Join(dir, "*.none"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "sub", "c.pat"),
	}, files)

	_, err = Expand(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Expand(filepath.Join(dir, "sub"))
	require.Error(t, err)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
		return path
	}

	write("1.pat", "api = api/v1\n")
	write("2.yaml", "patterns:\n  - id: users\n    pattern: \"@api/users\"\npaths:\n  - path: api/v1/users\n")

	bundle, err := LoadFiles(context.Background(), filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.Len(t, bundle.Files, 2)
	assert.Equal(t, []PathDoc{{Path: "api/v1/users"}}, bundle.Paths)

	store, err := bundle.Store()
	require.NoError(t, err)

	p, err := store.Resolve("users")
	require.NoError(t, err)
	assert.Equal(t, "api/v1/users", p.String())

	assert.Len(t, bundle.Document().Patterns, 2)
}

func TestLoadFilesErrors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pat")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte("api = api\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`{"patterns":[{"id":"api","pattern":"x"}]}`), 0o600))

	_, err := LoadFiles(context.Background(), a, b)
	require.ErrorIs(t, err, pathcompose.ErrDuplicateID)
	assert.Contains(t, err.Error(), a)

	_, err = LoadFiles(context.Background(), filepath.Join(dir, "*.none"))
	require.ErrorIs(t, err, ErrNoFiles)

	other := filepath.Join(dir, "c.ini")
	require.NoError(t, os.WriteFile(other, nil, 0o600))
	_, err = LoadFiles(context.Background(), other)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LoadFiles(ctx, a)
	require.ErrorIs(t, err, context.Canceled)
}
