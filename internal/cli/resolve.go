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
)

// resolveOutput is the JSON form of a compiled pattern.
type resolveOutput struct {
	ID       string                `json:"id"`
	Name     string                `json:"name,omitempty"`
	Pattern  string                `json:"pattern"`
	Segments []pathcompose.Segment `json:"segments"`
}

func (a *app) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id>",
		Short: "Expand a pattern and every pattern it references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, store, err := a.loadStore(ctx)
			if err != nil {
				return err
			}

			p, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug("Resolved pattern", "id", p.ID(), "segments", p.Len())

			out := resolveOutput{
				ID:       p.ID(),
				Name:     p.Name(),
				Pattern:  p.String(),
				Segments: p.Segments(),
			}

			return a.printResult(out, func() error {
				_, err := fmt.Fprintf(a.stdout, "%s\n%s %s\n",
					fancy.DefinitionTree(store, p.ID()),
					fancy.HeaderStyle.Render("compiled:"),
					p.String(),
				)
				return err
			})
		},
	}
}
