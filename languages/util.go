package languages

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Parse parses content with the language's grammar. The caller owns the
// returned tree and must Close it.
func Parse(ctx context.Context, lang Language, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang.TreeSitterLang())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file: %w", lang.Name(), err)
	}
	return tree, nil
}

// PointPosition converts a tree-sitter point to a Position
func PointPosition(p sitter.Point) Position {
	return Position{Line: int(p.Row), Character: int(p.Column)}
}

// NodeRange converts a tree-sitter node to a Range
func NodeRange(node *sitter.Node) Range {
	return Range{
		Start: PointPosition(node.StartPoint()),
		End:   PointPosition(node.EndPoint()),
	}
}
