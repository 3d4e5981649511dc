// Package documenter synthesizes documentation comment skeletons for
// JavaScript and TypeScript. Given a parsed file and a caret position it
// locates the nearest documentable construct, classifies it, and emits an
// ordered list of JSDoc tags together with the position the comment must be
// inserted at.
//
// A File is not safe for concurrent use; callers serialize invocations per
// document.
package documenter

import (
	"context"
	"errors"
	"fmt"

	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/snippet"
	sitter "github.com/smacker/go-tree-sitter"
)

// ErrNoConstruct is reported when nothing documentable is found at the caret.
var ErrNoConstruct = errors.New("no documentable construct")

// LocateError reports the caret at which no construct was found.
type LocateError struct {
	Caret languages.Position
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("could not produce documentation at line %d, character %d", e.Caret.Line+1, e.Caret.Character+1)
}

func (e *LocateError) Unwrap() error { return ErrNoConstruct }

// An empty document has no valid caret offset, so it is parsed as this
// placeholder with the caret after the slashes.
const emptyPlaceholder = "\n///\n"

var emptyCaret = languages.Position{Line: 1, Character: 3}

// File is a parsed source file.
type File struct {
	Path string
	Lang languages.Language

	src   []byte
	empty bool
	tree  *sitter.Tree
	lines languages.LineIndex
}

// Parse parses content as lang. path is used for the file banner only.
func Parse(ctx context.Context, lang languages.Language, path string, content []byte) (*File, error) {
	f := &File{Path: path, Lang: lang, src: content}
	if len(content) == 0 {
		f.empty = true
		f.src = []byte(emptyPlaceholder)
	}

	tree, err := languages.Parse(ctx, lang, f.src)
	if err != nil {
		return nil, err
	}
	f.tree = tree
	f.lines = languages.NewLineIndex(f.src)
	return f, nil
}

// Close releases the syntax tree.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node { return f.tree.RootNode() }

// Source returns the parsed text. For an empty document this is the
// placeholder text.
func (f *File) Source() []byte { return f.src }

// Empty reports whether the document had no content.
func (f *File) Empty() bool { return f.empty }

// Offset converts a caret position to a byte offset in Source.
func (f *File) Offset(caret languages.Position) uint32 { return uint32(f.lines.Offset(caret)) }

// Result is a synthesized comment skeleton.
type Result struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name,omitempty"`

	// Tags holds the comment lines in snippet syntax, with numbered
	// tabstops such as $1 and placeholders such as ${2:text}.
	Tags []string `json:"tags"`

	// Text holds the same lines with tabstops removed and placeholders
	// resolved to their default text.
	Text []string `json:"text"`

	// Snippet is Tags joined with line breaks.
	Snippet string `json:"snippet"`

	// Insert is where the comment goes: the start of the construct, or of
	// the statement or export that encloses it.
	Insert languages.Position `json:"insert"`

	// Range is the text the comment replaces. It is empty at Insert unless
	// the request was completion-triggered, in which case it starts one line
	// above so the line holding the trigger characters is replaced.
	Range languages.Range `json:"range"`

	// Caret is the caret that was used for locating.
	Caret languages.Position `json:"caret"`
}

// HasParent reports whether the comment documents a construct rather than
// the file itself.
func (r *Result) HasParent() bool { return r.Kind != KindSourceFile }

// Comment renders the plain text as a comment. indent prefixes every line
// after the first.
func (r *Result) Comment(indent string) string {
	if !r.HasParent() {
		return snippet.LineComment(r.Text, indent)
	}
	return snippet.Block(r.Text, indent)
}

// SnippetComment renders the snippet lines as a comment, keeping tabstops
// for editors that expand snippets.
func (r *Result) SnippetComment(indent string) string {
	if !r.HasParent() {
		return snippet.LineComment(r.Tags, indent)
	}
	return snippet.Block(r.Tags, indent)
}

// Document synthesizes documentation for the construct nearest to caret.
// When forCompletion is set the replacement range is widened one line up.
func (f *File) Document(caret languages.Position, opts Options, forCompletion bool) (*Result, error) {
	if f.empty {
		caret = emptyCaret
	}

	node := Locate(f.Root(), f.Offset(caret))
	c := Classify(node, f.src)
	if c == nil {
		return nil, &LocateError{Caret: caret}
	}

	var b snippet.Builder
	e := &emitter{b: &b, src: f.src, opts: opts, path: f.Path}
	at, ok := e.emit(c)
	if !ok {
		return nil, &LocateError{Caret: caret}
	}

	start := at
	if forCompletion {
		start.Line = max(at.Line-1, 0)
	}

	return &Result{
		Kind:    c.Kind(),
		Name:    c.Name(),
		Tags:    b.Lines(),
		Text:    b.TextLines(),
		Snippet: b.String(),
		Insert:  at,
		Range:   languages.Range{Start: start, End: at},
		Caret:   caret,
	}, nil
}

// Entry describes one documentable construct of a file.
type Entry struct {
	Kind   Kind               `json:"kind"`
	Name   string             `json:"name,omitempty"`
	Insert languages.Position `json:"insert"`
	Span   languages.Range    `json:"span"`
}

// Constructs lists every construct the classifier can select, in source
// order, starting with the file itself.
func (f *File) Constructs() []Entry {
	var out []Entry
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if c := Classify(n, f.src); c != nil && sameNode(c.Node(), n) {
			out = append(out, Entry{
				Kind:   c.Kind(),
				Name:   c.Name(),
				Insert: insertionPoint(c),
				Span:   languages.NodeRange(n),
			})
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(f.Root())
	return out
}

func insertionPoint(c Construct) languages.Position {
	a := c.anchor()
	if a == nil {
		return languages.Position{}
	}
	return languages.PointPosition(a.StartPoint())
}
