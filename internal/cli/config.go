// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"strings"
)

// Environment variable names
const (
	EnvLogLevel  = "PATHCOMPOSE_LOG_LEVEL"
	EnvLogFormat = "PATHCOMPOSE_LOG_FORMAT"
	EnvFiles     = "PATHCOMPOSE_FILES"
)

// Config is the resolved command line configuration.
type Config struct {
	// Files are pattern file paths or globs.
	Files []string
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// JSON selects machine-readable command output.
	JSON bool
}

// applyEnv fills values from the environment for flags not set on the command line.
func (c *Config) applyEnv(changed func(flag string) bool, getenv func(string) string) {
	// PATHCOMPOSE_LOG_LEVEL
	if v := getenv(EnvLogLevel); v != "" && !changed("log-level") {
		c.LogLevel = v
	}

	// PATHCOMPOSE_LOG_FORMAT
	if v := getenv(EnvLogFormat); v != "" && !changed("log-format") {
		c.LogFormat = v
	}

	// PATHCOMPOSE_FILES
	if v := getenv(EnvFiles); v != "" && !changed("file") {
		c.Files = splitList(v)
	}
}

// splitList splits a comma separated list, dropping blank items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
