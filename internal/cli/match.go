// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/fancy"
	"github.com/woozymasta/pathcompose/internal/logging"
	"github.com/woozymasta/pathcompose/internal/storefile"
)

// matchOutput is the JSON form of one match outcome.
type matchOutput struct {
	Pattern string                  `json:"pattern"`
	Path    string                  `json:"path"`
	Exact   bool                    `json:"exact"`
	Result  pathcompose.MatchResult `json:"result"`
}

func (a *app) matchCommand() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "match <id> [path...]",
		Short: "Match paths against a pattern",
		Long: `Match paths against a resolved pattern.

Without path arguments the sample paths from the pattern files are used, each
with its own exact flag. The exit code is 1 when any path does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bundle, store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}

			p, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			items := bundle.Paths
			if len(args) > 1 {
				items = make([]storefile.PathDoc, 0, len(args)-1)
				for _, path := range args[1:] {
					items = append(items, storefile.PathDoc{Path: path, Exact: exact})
				}
			}

			if len(items) == 0 {
				return fmt.Errorf("%w: no paths to match", errInvalidArgument)
			}

			out := make([]matchOutput, 0, len(items))
			missed := 0
			for _, item := range items {
				res := p.Match(item.Path, item.Exact)
				if !res.Matched {
					missed++
				}

				out = append(out, matchOutput{Pattern: p.ID(), Path: item.Path, Exact: item.Exact, Result: res})
			}

			logging.FromContext(ctx).Debug("Matched paths", "pattern", p.ID(), "paths", len(out), "missed", missed)

			err = a.printResult(out, func() error {
				for _, o := range out {
					if _, err := fmt.Fprintln(a.stdout, fancy.MatchTree(o.Path, o.Result)); err != nil {
						return err
					}
				}

				return nil
			})
			if err != nil {
				return err
			}

			if missed > 0 {
				return errNoMatch
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&exact, "exact", "e", false, "require the whole path to be consumed")
	return cmd
}
