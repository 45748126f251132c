// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathcompose

package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/woozymasta/pathcompose"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return Tree().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// SegmentText renders one resolved segment in compact form.
func SegmentText(seg pathcompose.Segment) string {
	if seg.Kind == pathcompose.KindConstant {
		return ConstantStyle.Render(seg.String())
	}

	return ParamStyle.Render(seg.String())
}

// DefinitionTree renders the reference structure of definition id.
//
// References are expanded recursively; a reference already being expanded
// or missing from the store is shown as a leaf with a marker.
func DefinitionTree(store pathcompose.Store, id string) *tree.Tree {
	root := Tree().Root(RootStyle.Render(definitionLabel(store, id)))
	addParts(root, store, id, map[string]bool{id: true})
	return root
}

// addParts appends the parts of definition id under node.
func addParts(node *tree.Tree, store pathcompose.Store, id string, active map[string]bool) {
	def, ok := store[id]
	if !ok {
		return
	}

	for _, part := range def.Parts {
		if !part.IsReference() {
			node.Child(SegmentText(part.Segment))
			continue
		}

		ref := part.Ref
		label := ReferenceStyle.Render("@" + ref)
		switch {
		case active[ref]:
			node.Child(label + " " + ErrorText("(cycle)"))
		case !hasDefinition(store, ref):
			node.Child(label + " " + ErrorText("(unknown)"))
		default:
			sub := Tree().Root(label)
			active[ref] = true
			addParts(sub, store, ref, active)
			delete(active, ref)
			node.Child(sub)
		}
	}
}

// definitionLabel returns "name (id)" or just id when both match.
func definitionLabel(store pathcompose.Store, id string) string {
	def, ok := store[id]
	if !ok || def.Name == "" || def.Name == id {
		return id
	}

	return fmt.Sprintf("%s (%s)", def.Name, id)
}

func hasDefinition(store pathcompose.Store, id string) bool {
	_, ok := store[id]
	return ok
}

// MatchTree renders a match outcome for path.
func MatchTree(path string, res pathcompose.MatchResult) *tree.Tree {
	if !res.Matched {
		return Tree().Root(PathText(path) + " " + ErrorText("no match"))
	}

	status := ValidText("exact match")
	if !res.Exact {
		status = ValidText("prefix match")
	}

	t := Tree().Root(PathText(path) + " " + status)
	for _, c := range res.Captures {
		t.Child(HeaderStyle.Render(c.Name) + " = " + CaptureText(fmt.Sprint(c.Value)))
	}

	if res.Remainder != "" {
		t.Child(InfoStyle.Render("remainder") + " " + PathText(res.Remainder))
	}

	return t
}
