// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/logging"
	"github.com/woozymasta/pathcompose/internal/storefile"
)

func (a *app) exportCommand() *cobra.Command {
	var (
		format string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged pattern files as one document",
		Long: `Write the merged pattern files as one document in the chosen format.

Every pattern is resolved first; export refuses a store with unresolvable
patterns unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			f, err := storefile.ParseFormat(format)
			if err != nil {
				return err
			}

			bundle, store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}

			if err := pathcompose.Validate(store); err != nil {
				if !force {
					return fmt.Errorf("%w: %w", errInvalidStore, err)
				}

				logging.FromContext(ctx).Warn("Exporting store with errors", "error", err)
			}

			if output == "" || output == "-" {
				return storefile.Encode(a.stdout, f, bundle.Document())
			}

			return writeFileAtomic(output, func(w io.Writer) error {
				return storefile.Encode(w, f, bundle.Document())
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", string(storefile.FormatYAML), "output format: yaml, toml, hcl, json, text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	cmd.Flags().BoolVar(&force, "force", false, "export even when patterns fail to resolve")
	return cmd
}

// writeFileAtomic writes path through a temporary file in the same directory
// renamed into place, so a failed write leaves any existing file untouched.
func writeFileAtomic(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
