// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/woozymasta/pathcompose"
	"github.com/woozymasta/pathcompose/internal/fancy"
	"github.com/woozymasta/pathcompose/internal/logging"
	"github.com/woozymasta/pathcompose/internal/session"
)

// Playground menu actions.
const (
	actionAddPattern    = "add-pattern"
	actionEditPattern   = "edit-pattern"
	actionSelectPattern = "select-pattern"
	actionRemovePattern = "remove-pattern"
	actionAddPath       = "add-path"
	actionEditPath      = "edit-path"
	actionSelectPath    = "select-path"
	actionRemovePath    = "remove-path"
	actionQuit          = "quit"
)

// playground drives a session with interactive forms.
type playground struct {
	sess       *session.Session
	in         io.Reader
	out        io.Writer
	accessible bool
}

func (a *app) playgroundCommand() *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Edit patterns and paths interactively and watch them match",
		Long: `Edit patterns and sample paths interactively.

After every change the selected pattern is resolved again and every path is
matched against it. Pattern files given with --file seed the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess := session.New(session.WithLogger(logging.FromContext(ctx)))

			if len(a.cfg.Files) > 0 {
				bundle, err := a.loadBundle(ctx)
				if err != nil {
					return err
				}

				sess.Load(bundle)
				if patterns := sess.Patterns(); len(patterns) > 0 {
					_ = sess.SelectPattern(patterns[0].ID)
				}
			}

			pg := &playground{sess: sess, in: a.stdin, out: a.stdout, accessible: accessible}
			return pg.run(ctx)
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "use plain line-based prompts")
	return cmd
}

// run shows the session state and applies menu actions until quit.
func (p *playground) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := renderSession(p.out, p.sess, p.sess.Evaluate()); err != nil {
			return err
		}

		action, err := p.chooseAction()
		if errors.Is(err, huh.ErrUserAborted) || action == actionQuit {
			return nil
		}

		if err != nil {
			return err
		}

		if err := p.apply(action); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}

			_, _ = fmt.Fprintln(p.out, fancy.ErrorText(err.Error()))
		}
	}
}

// form runs one group of fields.
func (p *playground) form(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.accessible).
		Run()
}

func (p *playground) chooseAction() (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Add pattern", actionAddPattern),
		huh.NewOption("Add path", actionAddPath),
	}

	if len(p.sess.Patterns()) > 0 {
		options = append(options,
			huh.NewOption("Edit pattern", actionEditPattern),
			huh.NewOption("Select pattern", actionSelectPattern),
			huh.NewOption("Remove pattern", actionRemovePattern),
		)
	}

	if len(p.sess.Paths()) > 0 {
		options = append(options,
			huh.NewOption("Edit path", actionEditPath),
			huh.NewOption("Select path", actionSelectPath),
			huh.NewOption("Remove path", actionRemovePath),
		)
	}

	options = append(options, huh.NewOption("Quit", actionQuit))

	var action string
	err := p.form(huh.NewSelect[string]().
		Title("What next?").
		Options(options...).
		Value(&action))
	return action, err
}

// apply runs the forms for action and updates the session.
func (p *playground) apply(action string) error {
	switch action {
	case actionAddPattern:
		id := p.sess.AddPattern()
		_ = p.sess.SelectPattern(id)
		return p.editPattern(id)
	case actionEditPattern:
		id, err := p.pickPattern("Edit which pattern?")
		if err != nil {
			return err
		}

		return p.editPattern(id)
	case actionSelectPattern:
		id, err := p.pickPattern("Match paths against which pattern?")
		if err != nil {
			return err
		}

		return p.sess.SelectPattern(id)
	case actionRemovePattern:
		id, err := p.pickPattern("Remove which pattern?")
		if err != nil {
			return err
		}

		return p.sess.RemovePattern(id)
	case actionAddPath:
		id := p.sess.AddPath()
		_ = p.sess.SelectPath(id)
		return p.editPath(id)
	case actionEditPath:
		id, err := p.pickPath("Edit which path?")
		if err != nil {
			return err
		}

		return p.editPath(id)
	case actionSelectPath:
		id, err := p.pickPath("Inspect which path?")
		if err != nil {
			return err
		}

		return p.sess.SelectPath(id)
	case actionRemovePath:
		id, err := p.pickPath("Remove which path?")
		if err != nil {
			return err
		}

		return p.sess.RemovePath(id)
	default:
		return fmt.Errorf("%w: unknown action %q", errInvalidArgument, action)
	}
}

func (p *playground) pickPattern(title string) (string, error) {
	patterns := p.sess.Patterns()
	options := make([]huh.Option[string], 0, len(patterns))
	for _, def := range patterns {
		options = append(options, huh.NewOption(def.Name, def.ID))
	}

	id := p.sess.SelectedPattern()
	err := p.form(huh.NewSelect[string]().Title(title).Options(options...).Value(&id))
	return id, err
}

func (p *playground) pickPath(title string) (string, error) {
	paths := p.sess.Paths()
	options := make([]huh.Option[string], 0, len(paths))
	for _, item := range paths {
		label := item.Path
		if label == "" {
			label = "(empty)"
		}

		options = append(options, huh.NewOption(label, item.ID))
	}

	id := p.sess.SelectedPath()
	err := p.form(huh.NewSelect[string]().Title(title).Options(options...).Value(&id))
	return id, err
}

func (p *playground) editPattern(id string) error {
	name := ""
	for _, def := range p.sess.Patterns() {
		if def.ID == id {
			name = def.Name
		}
	}

	expr, err := p.sess.Expression(id)
	if err != nil {
		return err
	}

	err = p.form(
		huh.NewInput().
			Title("Pattern name").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Parts").
			Description("api/@other/:id<int>/:page<int>?/:file<glob:*.json>").
			Placeholder("api/v1").
			Value(&expr).
			Validate(func(s string) error {
				_, err := pathcompose.ParseParts(s)
				return err
			}),
	)
	if err != nil {
		return err
	}

	if err := p.sess.RenamePattern(id, name); err != nil {
		return err
	}

	return p.sess.SetExpression(id, expr)
}

func (p *playground) editPath(id string) error {
	var item session.PathItem
	for _, it := range p.sess.Paths() {
		if it.ID == id {
			item = it
		}
	}

	err := p.form(
		huh.NewInput().
			Title("Path").
			Placeholder("api/v1/users/42").
			Value(&item.Path),
		huh.NewConfirm().
			Title("Exact match?").
			Value(&item.Exact),
	)
	if err != nil {
		return err
	}

	return p.sess.SetPath(id, item.Path, item.Exact)
}

// renderSession writes the patterns, path outcomes and the selected path detail.
func renderSession(w io.Writer, sess *session.Session, ev session.Evaluation) error {
	patterns := sess.Patterns()
	pt := fancy.BranchNode("Patterns", fmt.Sprintf("(%d)", len(patterns)))
	for _, def := range patterns {
		expr, err := sess.Expression(def.ID)
		if err != nil {
			return err
		}

		label := def.Name + " = " + expr
		if def.ID == sess.SelectedPattern() {
			label = fancy.RootStyle.Render("> " + label)
		}

		pt.Child(label)
	}

	if _, err := fmt.Fprintln(w, pt); err != nil {
		return err
	}

	if ev.Err != nil {
		if _, err := fmt.Fprintln(w, fancy.ErrorText(ev.Err.Error())); err != nil {
			return err
		}
	}

	paths := fancy.BranchNode("Paths", fmt.Sprintf("(%d)", len(ev.Paths)))
	for _, pm := range ev.Paths {
		paths.Child(pathLabel(pm, sess.SelectedPath()))
	}

	if _, err := fmt.Fprintln(w, paths); err != nil {
		return err
	}

	if ev.Current != nil && ev.Current.Result != nil {
		if _, err := fmt.Fprintln(w, fancy.MatchTree(ev.Current.Path, *ev.Current.Result)); err != nil {
			return err
		}
	}

	return nil
}

// pathLabel formats one path item with its match status.
func pathLabel(pm session.PathMatch, selected string) string {
	label := pm.Path
	if label == "" {
		label = "(empty)"
	}

	if pm.Exact {
		label += " [exact]"
	}

	switch {
	case pm.Result == nil:
		label += " " + fancy.PathText("-")
	case pm.Result.Matched:
		label += " " + fancy.ValidText("match")
	default:
		label += " " + fancy.ErrorText("no match")
	}

	if pm.ID == selected {
		label = "> " + label
	}

	return label
}
