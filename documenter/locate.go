package documenter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Locate returns the most deeply nested node covering offset.
//
// A node covers the offsets from its full start to its end, where the full
// start includes the whitespace and comments before it: it is the end of
// the previous non-comment sibling, or the parent's full start for a first
// child. A caret on a blank or comment line therefore lands on the
// declaration that follows. Among siblings, one whose own span contains
// offset is preferred over one that only covers it with leading trivia, and
// otherwise the later sibling wins. Comment nodes are never returned; the
// root is returned when nothing else covers offset.
func Locate(root *sitter.Node, offset uint32) *sitter.Node {
	n, fullStart := root, uint32(0)
	for {
		next, nextStart := coveringChild(n, fullStart, offset)
		if next == nil {
			return n
		}
		n, fullStart = next, nextStart
	}
}

func coveringChild(n *sitter.Node, fullStart, offset uint32) (*sitter.Node, uint32) {
	var (
		best      *sitter.Node
		bestStart uint32
		inSpan    bool
	)
	prevEnd := fullStart
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() == kindComment {
			continue
		}
		start := prevEnd
		prevEnd = c.EndByte()
		if start > offset {
			break
		}
		if c.EndByte() < offset {
			continue
		}
		contains := c.StartByte() <= offset
		if inSpan && !contains {
			continue
		}
		best, bestStart, inSpan = c, start, contains
	}
	return best, bestStart
}
