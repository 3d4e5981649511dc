// Package snippet builds editor snippets: literal text interleaved with
// numbered tabstops and placeholders, plus comment renderings of the result.
package snippet

import (
	"strconv"
	"strings"
)

// Builder accumulates a snippet and, in parallel, the plain text a user
// would see if every placeholder kept its default value.
//
// Tabstops are numbered from 1 in the order they are appended. The zero
// value is ready to use.
type Builder struct {
	snippet strings.Builder
	plain   strings.Builder
	tabstop int
}

// Append adds literal text.
func (b *Builder) Append(text string) {
	b.snippet.WriteString(escape(text, false))
	b.plain.WriteString(text)
}

// AppendLine adds the given text followed by a line break.
func (b *Builder) AppendLine(text ...string) {
	for _, t := range text {
		b.Append(t)
	}
	b.snippet.WriteByte('\n')
	b.plain.WriteByte('\n')
}

// AppendTabstop adds the next numbered cursor stop.
func (b *Builder) AppendTabstop() {
	b.tabstop++
	b.snippet.WriteByte('$')
	b.snippet.WriteString(strconv.Itoa(b.tabstop))
}

// AppendPlaceholder adds the next numbered cursor stop with default text.
func (b *Builder) AppendPlaceholder(text string) {
	b.tabstop++
	b.snippet.WriteString("${")
	b.snippet.WriteString(strconv.Itoa(b.tabstop))
	b.snippet.WriteByte(':')
	b.snippet.WriteString(escape(text, true))
	b.snippet.WriteByte('}')
	b.plain.WriteString(text)
}

// Tabstops returns how many cursor stops have been appended.
func (b *Builder) Tabstops() int { return b.tabstop }

// String returns the snippet text.
func (b *Builder) String() string { return b.snippet.String() }

// Text returns the text with every tabstop removed and placeholders
// replaced by their defaults.
func (b *Builder) Text() string { return b.plain.String() }

// Lines returns the snippet split into lines. The empty line produced by a
// trailing line break is dropped.
func (b *Builder) Lines() []string { return splitLines(b.snippet.String()) }

// TextLines is Lines for the plain text.
func (b *Builder) TextLines() []string { return splitLines(b.plain.String()) }

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// escape quotes the characters with meaning in snippet syntax. A closing
// brace is only special inside a placeholder.
func escape(s string, inPlaceholder bool) string {
	if !strings.ContainsAny(s, `\$}`) {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\\', r == '$', r == '}' && inPlaceholder:
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
