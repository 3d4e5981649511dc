package documenter

import (
	"fmt"
	"strings"

	"github.com/alburdette619/docthis/languages"
	sitter "github.com/smacker/go-tree-sitter"
)

// Trace describes the node at caret and each of its ancestors, outermost
// first. Every entry has a header line with the byte span, grammar symbol,
// kind and index within the parent, followed by the node text indented to
// the node's column.
func (f *File) Trace(caret languages.Position) string {
	if f.empty {
		caret = emptyCaret
	}

	var entries []string
	for n := Locate(f.Root(), f.Offset(caret)); n != nil; n = n.Parent() {
		entries = append(entries, f.describe(n))
	}

	var sb strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		sb.WriteString(entries[i])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *File) describe(n *sitter.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d to %d --- (%d) %s", n.StartByte(), n.EndByte(), n.Symbol(), n.Type())
	if idx := childIndex(n); idx >= 0 {
		fmt.Fprintf(&sb, " - Index of parent: %d", idx)
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", int(n.StartPoint().Column)))
	sb.WriteString(text(n, f.src))
	sb.WriteByte('\n')
	return sb.String()
}

func childIndex(n *sitter.Node) int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	for i := 0; i < int(p.ChildCount()); i++ {
		if sameNode(p.Child(i), n) {
			return i
		}
	}
	return -1
}
