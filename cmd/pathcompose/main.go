// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

// Command pathcompose resolves, matches and builds typed path patterns.
package main

import (
	"os"

	"github.com/woozymasta/pathcompose/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
