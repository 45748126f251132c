// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
)

func (a *app) buildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <id> [name=value...]",
		Short: "Build a path from parameter values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			p, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			values, err := parseValues(p, args[1:])
			if err != nil {
				return err
			}

			path, err := p.Build(values)
			if err != nil {
				return err
			}

			return a.printResult(map[string]string{"pattern": p.ID(), "path": path}, func() error {
				_, err := fmt.Fprintln(a.stdout, path)
				return err
			})
		},
	}
}

// parseValues converts name=value arguments to values typed by the
// parameter kinds of p.
func parseValues(p *pathcompose.Pattern, args []string) (map[string]any, error) {
	kinds := make(map[string]pathcompose.Kind)
	for _, seg := range p.Segments() {
		if seg.Kind != pathcompose.KindConstant {
			kinds[seg.Name] = seg.Kind
		}
	}

	values := make(map[string]any, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q, want name=value", errInvalidArgument, arg)
		}

		kind, ok := kinds[name]
		if !ok {
			return nil, fmt.Errorf("%w: pattern %q has no parameter %q", errInvalidArgument, p.ID(), name)
		}

		switch kind {
		case pathcompose.KindInteger:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", errInvalidArgument, name, err)
			}

			values[name] = v
		case pathcompose.KindNumber:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", errInvalidArgument, name, err)
			}

			values[name] = v
		default:
			values[name] = raw
		}
	}

	return values, nil
}
