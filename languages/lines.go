package languages

// LineIndex maps line/character positions to byte offsets. Characters are
// byte columns, matching tree-sitter points.
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(src []byte) LineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return LineIndex{starts: starts, size: len(src)}
}

// Lines returns the number of lines. A trailing line break starts an empty
// final line.
func (li LineIndex) Lines() int { return len(li.starts) }

// Offset converts a position to a byte offset, clamping out-of-range lines
// and characters to the nearest valid offset on that line.
func (li LineIndex) Offset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(li.starts) {
		return li.size
	}
	start := li.starts[pos.Line]
	end := li.size
	if pos.Line+1 < len(li.starts) {
		end = li.starts[pos.Line+1] - 1
	}
	return min(start+max(pos.Character, 0), end)
}

// LineStart returns the offset of the first byte of line.
func (li LineIndex) LineStart(line int) int {
	return li.Offset(Position{Line: line})
}
