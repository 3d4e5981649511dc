package documenter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node kinds shared by the TypeScript and JavaScript grammars.
const (
	kindProgram         = "program"
	kindComment         = "comment"
	kindDecorator       = "decorator"
	kindExport          = "export_statement"
	kindClassBody       = "class_body"
	kindClassHeritage   = "class_heritage"
	kindExtendsClause   = "extends_clause"
	kindImplements      = "implements_clause"
	kindTypeArguments   = "type_arguments"
	kindAccessibility   = "accessibility_modifier"
	kindMethod          = "method_definition"
	kindMethodSignature = "method_signature"
	kindDeclarator      = "variable_declarator"
	kindLexicalDecl     = "lexical_declaration"
	kindVariableDecl    = "variable_declaration"
	kindEnumBody        = "enum_body"
	kindReturn          = "return_statement"
	kindObjectPattern   = "object_pattern"
	kindRestPattern     = "rest_pattern"
)

// text returns the source text of n, or "" for a nil node.
func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

func fieldText(n *sitter.Node, field string, src []byte) string {
	if n == nil {
		return ""
	}
	return text(n.ChildByFieldName(field), src)
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != kindComment {
			out = append(out, c)
		}
	}
	return out
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if kids := namedChildren(n); len(kids) > 0 {
		return kids[0]
	}
	return nil
}

func childOfType(n *sitter.Node, typeName string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == typeName {
			return c
		}
	}
	return nil
}

// sameNode compares two nodes of the same tree by kind and span.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Symbol() == b.Symbol() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

func isFunctionValue(n *sitter.Node) bool {
	switch n.Type() {
	case "arrow_function", "function_expression", "generator_function":
		return true
	case "function":
		return n.IsNamed()
	}
	return false
}

// opensScope reports nodes whose return statements belong to a nested
// function rather than the one being documented.
func opensScope(n *sitter.Node) bool {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration", "method_definition", "class_declaration", "class":
		return n.IsNamed()
	}
	return isFunctionValue(n)
}

// memberName returns the declared name of a class member or signature.
func memberName(n *sitter.Node, src []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return text(name, src)
	}
	return fieldText(n, "property", src)
}

// accessorKeyword returns "get" or "set" for accessors, "" otherwise.
func accessorKeyword(n *sitter.Node) string {
	name := n.ChildByFieldName("name")
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if name != nil && c.StartByte() >= name.StartByte() {
			break
		}
		if !c.IsNamed() && (c.Type() == "get" || c.Type() == "set") {
			return c.Type()
		}
	}
	return ""
}

// typeText extracts the type from a type annotation node, without the
// leading colon. Type predicates read as boolean and assertion signatures as
// void.
func typeText(annotation *sitter.Node, src []byte) string {
	if annotation == nil {
		return ""
	}
	switch annotation.Type() {
	case "type_predicate_annotation", "type_predicate":
		return "boolean"
	case "asserts_annotation", "asserts":
		return "void"
	case "type_annotation", "opting_type_annotation", "omitting_type_annotation":
		if t := firstNamedChild(annotation); t != nil {
			return strings.TrimSpace(text(t, src))
		}
	}
	return strings.TrimSpace(strings.TrimLeft(text(annotation, src), ":?-"))
}

// declarationStart widens a declaration to its export statement.
func declarationStart(n *sitter.Node) *sitter.Node {
	if p := n.Parent(); p != nil && p.Type() == kindExport {
		return p
	}
	return n
}

// memberStart widens a class member to the decorators preceding it.
func memberStart(n *sitter.Node) *sitter.Node {
	start := n
	for p := n.PrevNamedSibling(); p != nil && p.Type() == kindDecorator; p = p.PrevNamedSibling() {
		start = p
	}
	return start
}
