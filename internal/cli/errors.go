// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import "errors"

var (
	// errNoMatch reports that at least one path did not match; it only sets the exit code.
	errNoMatch = errors.New("no match")
	// errInvalidArgument indicates a malformed command argument.
	errInvalidArgument = errors.New("invalid argument")
	// errInvalidStore indicates a store with patterns that fail to resolve.
	errInvalidStore = errors.New("pattern store has errors")
)
