package languages

import (
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrUnsupported is returned when a file or editor language id is outside the
// set of languages documentation can be produced for.
var ErrUnsupported = errors.New("only JavaScript and TypeScript are supported")

// Position represents a position in a text document (LSP-compliant, 0-based)
type Position struct {
	Line      int `json:"line"`      // 0-based line number
	Character int `json:"character"` // 0-based byte offset within the line
}

// Range represents a range in a text document (LSP-compliant, 0-based)
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Language describes a source language the documenter can parse.
type Language interface {
	// Name returns the language identifier (e.g., "typescript", "jsx")
	Name() string

	// Extensions returns the file extensions this language handles (e.g., [".ts"])
	Extensions() []string

	// EditorIDs returns the editor language ids mapped to this language
	// (e.g., "typescriptreact" for TSX).
	EditorIDs() []string

	// TreeSitterLang returns the tree-sitter grammar used for parsing
	TreeSitterLang() *sitter.Language
}
