// Package edit applies documentation results to source buffers.
package edit

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alburdette619/docthis/documenter"
	"github.com/alburdette619/docthis/languages"
	"github.com/sourcegraph/go-diff/diff"
)

// Apply returns content with the comment for res written over res.Range.
// Continuation lines are indented to the insertion column, and the
// construct that follows keeps its original indentation.
func Apply(content []byte, res *documenter.Result) []byte {
	li := languages.NewLineIndex(content)
	start := li.Offset(res.Range.Start)
	end := li.Offset(res.Range.End)
	if end < start {
		end = start
	}

	indent := indentation(content, li.LineStart(res.Insert.Line), li.Offset(res.Insert))
	comment := res.Comment(indent) + "\n" + indent

	out := make([]byte, 0, len(content)+len(comment))
	out = append(out, content[:start]...)
	out = append(out, comment...)
	out = append(out, content[end:]...)
	return out
}

// indentation returns the leading whitespace of the line up to the
// insertion column. Non-blank prefixes are replaced by spaces of the same
// width.
func indentation(content []byte, lineStart, at int) string {
	prefix := string(content[lineStart:at])
	if strings.TrimLeft(prefix, " \t") == "" {
		return prefix
	}
	return strings.Repeat(" ", len(prefix))
}

// completionTrigger matches a line prefix that may request documentation
// from completion: a blank prefix or one ending in three slashes.
var completionTrigger = regexp.MustCompile(`^\s*$|\/{3}#?\s*$|^\s*\/{3}#?\s*$`)

// TriggersCompletion reports whether the text before the caret asks for a
// documentation completion.
func TriggersCompletion(prefix string) bool {
	return completionTrigger.MatchString(prefix)
}

// WriteFile replaces the file at path with content, keeping its mode.
func WriteFile(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

const contextLines = 3

// Diff renders the change from old to new as a unified diff of the named
// file. It returns "" when the contents are equal.
func Diff(name string, old, new []byte) (string, error) {
	if string(old) == string(new) {
		return "", nil
	}
	a, b := splitLines(old), splitLines(new)

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	if prefix == len(a) && prefix == len(b) {
		return "", nil
	}

	from := max(prefix-contextLines, 0)
	origTo := min(len(a)-suffix+contextLines, len(a))
	newTo := min(len(b)-suffix+contextLines, len(b))

	var body strings.Builder
	for _, l := range a[from:prefix] {
		body.WriteString(" " + l + "\n")
	}
	for _, l := range a[prefix : len(a)-suffix] {
		body.WriteString("-" + l + "\n")
	}
	for _, l := range b[prefix : len(b)-suffix] {
		body.WriteString("+" + l + "\n")
	}
	for _, l := range a[len(a)-suffix : origTo] {
		body.WriteString(" " + l + "\n")
	}

	hunk := &diff.Hunk{
		OrigStartLine: hunkStart(from, origTo),
		OrigLines:     int32(origTo - from),
		NewStartLine:  hunkStart(from, newTo),
		NewLines:      int32(newTo - from),
		Body:          []byte(body.String()),
	}
	fd := &diff.FileDiff{
		OrigName: "a/" + name,
		NewName:  "b/" + name,
		Hunks:    []*diff.Hunk{hunk},
	}

	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return "", fmt.Errorf("failed to render diff: %w", err)
	}
	return string(out), nil
}

// hunkStart is the 1-based first line of a hunk, or 0 for an empty side.
func hunkStart(from, to int) int32 {
	if to == from {
		return int32(from)
	}
	return int32(from + 1)
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
