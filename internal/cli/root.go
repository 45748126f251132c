// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

// Package cli implements the pathcompose command line.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/fancy"
	"github.com/woozymasta/pathcompose/internal/logging"
	"github.com/woozymasta/pathcompose/internal/storefile"
)

// app carries configuration and streams shared by all commands.
type app struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// Main runs the command line with process arguments and streams and
// returns the exit code.
func Main() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command line with args and returns the exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		getenv: os.Getenv,
	}

	root := a.rootCommand()
	root.SetArgs(args)
	return exitCode(root.ExecuteContext(ctx), stderr)
}

// exitCode maps a command error to a process exit code, reporting it on stderr.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		_, _ = fmt.Fprintln(stderr, fancy.ErrorText("Error: "+err.Error()))
		return 1
	}
}

// rootCommand builds the command tree.
func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathcompose",
		Short: "Compose, resolve and match typed path patterns",
		Long: `pathcompose works with path patterns assembled from constants, typed
parameters and references to other patterns.

Patterns are read from YAML, TOML, HCL, JSON or .pat text files given with
--file (repeatable, globs allowed) or the PATHCOMPOSE_FILES environment variable.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringArrayVarP(&a.cfg.Files, "file", "f", nil, "pattern file or glob, repeatable")
	pf.StringVar(&a.cfg.LogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", logging.FormatText, "log format: text or json")
	pf.BoolVar(&a.cfg.JSON, "json", false, "write machine-readable JSON output")

	root.AddCommand(
		a.resolveCommand(),
		a.matchCommand(),
		a.buildCommand(),
		a.checkCommand(),
		a.listCommand(),
		a.exportCommand(),
		a.playgroundCommand(),
		a.versionCommand(),
	)

	return root
}

// setup applies environment overrides and installs the logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg.applyEnv(cmd.Flags().Changed, a.getenv)

	logger, err := logging.New(a.cfg.LogFormat, a.cfg.LogLevel, a.stderr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(logging.WithLogger(ctx, logger))
	logger.Debug("Configured command", "command", cmd.Name(), "files", a.cfg.Files)
	return nil
}

// loadBundle loads every configured pattern file.
func (a *app) loadBundle(ctx context.Context) (*storefile.Bundle, error) {
	if len(a.cfg.Files) == 0 {
		return nil, fmt.Errorf("%w: use --file or %s", storefile.ErrNoFiles, EnvFiles)
	}

	return storefile.LoadFiles(ctx, a.cfg.Files...)
}

// loadStore loads pattern files and indexes their definitions.
func (a *app) loadStore(ctx context.Context) (*storefile.Bundle, pathcompose.Store, error) {
	bundle, err := a.loadBundle(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := bundle.Store()
	if err != nil {
		return nil, nil, err
	}

	return bundle, store, nil
}

// printJSON writes v as indented JSON to stdout.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// printResult writes data as JSON when --json is set, otherwise calls textFn.
func (a *app) printResult(data any, textFn func() error) error {
	if a.cfg.JSON {
		return a.printJSON(data)
	}

	return textFn()
}
