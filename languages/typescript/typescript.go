// Package typescript registers the JavaScript and TypeScript dialects the
// documenter understands.
package typescript

import (
	"github.com/alburdette619/docthis/languages"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

func init() {
	languages.Register(&TSLanguage{})
	languages.Register(&TSXLanguage{})
	languages.Register(&JSLanguage{})
	languages.Register(&JSXLanguage{})
}

// TSLanguage implements TypeScript (.ts) parsing
type TSLanguage struct{}

func (t *TSLanguage) Name() string                     { return "typescript" }
func (t *TSLanguage) Extensions() []string             { return []string{".ts", ".mts", ".cts"} }
func (t *TSLanguage) EditorIDs() []string              { return []string{"typescript"} }
func (t *TSLanguage) TreeSitterLang() *sitter.Language { return typescript.GetLanguage() }

// TSXLanguage implements TSX (.tsx) parsing
type TSXLanguage struct{}

func (t *TSXLanguage) Name() string                     { return "tsx" }
func (t *TSXLanguage) Extensions() []string             { return []string{".tsx"} }
func (t *TSXLanguage) EditorIDs() []string              { return []string{"typescriptreact"} }
func (t *TSXLanguage) TreeSitterLang() *sitter.Language { return tsx.GetLanguage() }

// JSLanguage implements JavaScript (.js) parsing
type JSLanguage struct{}

func (j *JSLanguage) Name() string                     { return "javascript" }
func (j *JSLanguage) Extensions() []string             { return []string{".js", ".mjs", ".cjs"} }
func (j *JSLanguage) EditorIDs() []string              { return []string{"javascript"} }
func (j *JSLanguage) TreeSitterLang() *sitter.Language { return javascript.GetLanguage() }

// JSXLanguage implements JSX (.jsx) parsing
type JSXLanguage struct{}

func (j *JSXLanguage) Name() string                     { return "jsx" }
func (j *JSXLanguage) Extensions() []string             { return []string{".jsx"} }
func (j *JSXLanguage) EditorIDs() []string              { return []string{"javascriptreact"} }
func (j *JSXLanguage) TreeSitterLang() *sitter.Language { return javascript.GetLanguage() }
