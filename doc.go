// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

/*
Package pathcompose implements composable path patterns with typed parameters.

A pattern definition is an ordered list of parts. A part is a constant segment,
a typed parameter segment, or a reference to another definition, so complex
paths can be assembled from reusable sub-patterns.

Basic flow:
  - describe definitions in code (`Constant`, `Parameter`, `Glob`, `Reference`)
    or text (`ParseParts`, `ParseDefinitions`, `LoadDefinitionsFile`)
  - index them (`NewStore`)
  - compile one pattern (`Resolve`), which flattens all references
  - match paths (`Match` / `MatchExact` / `MatchPrefix`)
  - optionally build paths back from values (`Build`)

Both Resolve and Match are pure: no state is kept between calls, the store is
never mutated, and a mismatch is a zero MatchResult rather than an error.

Parameter kinds:
  - constant: byte-equal literal, no capture
  - string: path-unescaped text
  - int: canonical base-10 int64
  - number: finite float64
  - uuid: canonical uuid.UUID
  - glob: raw text matching a glob expression
*/
package pathcompose
