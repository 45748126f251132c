// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/fancy"
)

// checkOutput is the JSON form of a store check.
type checkOutput struct {
	Files    []string          `json:"files"`
	Patterns int               `json:"patterns"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every pattern and report failures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundle, store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			out := checkOutput{Files: bundle.Files, Patterns: len(store)}
			ids := store.IDs()
			for _, id := range ids {
				if _, err := pathcompose.Resolve(store, id); err != nil {
					if out.Errors == nil {
						out.Errors = make(map[string]string)
					}

					out.Errors[id] = err.Error()
				}
			}

			err = a.printResult(out, func() error {
				t := fancy.BranchNode("Patterns", fmt.Sprintf("(%d)", len(ids)))
				for _, id := range ids {
					if msg, ok := out.Errors[id]; ok {
						t.Child(id + " " + fancy.ErrorText(msg))
						continue
					}

					t.Child(id + " " + fancy.ValidText("ok"))
				}

				_, err := fmt.Fprintln(a.stdout, t)
				return err
			})
			if err != nil {
				return err
			}

			if len(out.Errors) > 0 {
				return fmt.Errorf("%w: %d of %d patterns failed", errInvalidStore, len(out.Errors), len(ids))
			}

			return nil
		},
	}
}
