// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package storefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pelletier/go-toml/v2"
	"github.com/woozymasta/pathcompose"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported document formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// extensions maps lowercase file extensions to formats.
var extensions = map[string]Format{
	".yaml":     FormatYAML,
	".yml":      FormatYAML,
	".toml":     FormatTOML,
	".hcl":      FormatHCL,
	".json":     FormatJSON,
	".pat":      FormatText,
	".patterns": FormatText,
}

// FormatFromPath returns the format selected by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// ParseFormat returns the format for a name such as "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := extensions["."+name]; ok {
		return f, nil
	}

	if Format(name) == FormatText {
		return FormatText, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Decode reads one document in format f. filename is used in diagnostics.
func Decode(f Format, filename string, r io.Reader) (*Document, error) {
	var doc Document

	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidDocument, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: json: %w", ErrInvalidDocument, err)
		}
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filename, err)
		}

		file, diags := hclparse.NewParser().ParseHCL(src, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: hcl: %w", ErrInvalidDocument, diags)
		}

		if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
			return nil, fmt.Errorf("%w: hcl: %w", ErrInvalidDocument, diags)
		}
	case FormatText:
		defs, err := pathcompose.ParseDefinitions(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return FromDefinitions(defs, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	return &doc, nil
}

// Encode writes doc to w in format f.
//
// The text format has no place for sample paths, so they are dropped there.
func Encode(w io.Writer, f Format, doc *Document) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case FormatHCL:
		_, err := w.Write(encodeHCL(doc))
		return err
	case FormatText:
		return encodeText(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// encodeHCL renders doc as pattern and path blocks.
func encodeHCL(doc *Document) []byte {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for i, p := range doc.Patterns {
		if i > 0 {
			body.AppendNewline()
		}

		block := body.AppendNewBlock("pattern", []string{p.ID}).Body()
		if p.Name != "" {
			block.SetAttributeValue("name", cty.StringVal(p.Name))
		}

		if p.Pattern != "" {
			block.SetAttributeValue("pattern", cty.StringVal(p.Pattern))
		}

		for _, part := range p.Parts {
			pb := block.AppendNewBlock("part", nil).Body()
			setString(pb, "const", part.Const)
			setString(pb, "ref", part.Ref)
			setString(pb, "param", part.Param)
			setString(pb, "kind", part.Kind)
			setString(pb, "glob", part.Glob)
			if part.Optional {
				pb.SetAttributeValue("optional", cty.True)
			}
		}
	}

	for _, p := range doc.Paths {
		body.AppendNewline()
		block := body.AppendNewBlock("path", []string{p.Path}).Body()
		if p.Exact {
			block.SetAttributeValue("exact", cty.True)
		}
	}

	return hclwrite.Format(file.Bytes())
}

// setString sets a string attribute unless value is empty.
func setString(body *hclwrite.Body, name string, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// encodeText renders doc in the line-based definition syntax.
func encodeText(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	for _, p := range doc.Patterns {
		def, err := p.Definition()
		if err != nil {
			return err
		}

		buf.WriteString(def.ID)
		if def.Name != def.ID {
			buf.WriteString(" (")
			buf.WriteString(def.Name)
			buf.WriteString(")")
		}

		buf.WriteString(" = ")
		buf.WriteString(pathcompose.FormatParts(def.Parts))
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}
