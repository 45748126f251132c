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

// listItem is the JSON form of one listed definition.
type listItem struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Pattern string `json:"pattern"`
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pattern definitions without resolving them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundle, err := a.loadBundle(cmd.Context())
			if err != nil {
				return err
			}

			items := make([]listItem, 0, len(bundle.Definitions))
			for _, def := range bundle.Definitions {
				items = append(items, listItem{
					ID:      def.ID,
					Name:    def.Name,
					Pattern: pathcompose.FormatParts(def.Parts),
				})
			}

			return a.printResult(items, func() error {
				t := fancy.BranchNode("Patterns", fmt.Sprintf("(%d)", len(items)))
				for _, item := range items {
					t.Child(fancy.RootStyle.Render(item.ID) + " = " + item.Pattern)
				}

				_, err := fmt.Fprintln(a.stdout, t)
				return err
			})
		},
	}
}
