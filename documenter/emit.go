package documenter

import (
	"path/filepath"
	"strings"

	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/snippet"
	sitter "github.com/smacker/go-tree-sitter"
)

// emitter writes the tag lines for one construct.
type emitter struct {
	b    *snippet.Builder
	src  []byte
	opts Options
	path string
}

// emit writes the tags for c and returns where the comment goes. It reports
// false when c cannot be documented.
func (e *emitter) emit(c Construct) (languages.Position, bool) {
	switch c := c.(type) {
	case *SourceFile:
		e.sourceFile()
		return languages.Position{}, true
	case *ClassDeclaration:
		e.class(c)
	case *PropertyLike:
		e.property(c)
	case *FunctionLike:
		switch c.kind {
		case KindConstructor:
			e.constructor(c)
		case KindFunctionExpression:
			e.description()
			e.parameters(c.node)
			e.returns(c.node, c.name)
		default:
			e.function(c)
		}
	case *VariableWithArrow:
		e.variable(c)
	case *EnumMember:
		e.b.AppendLine()
	default:
		return languages.Position{}, false
	}

	a := c.anchor()
	if a == nil {
		return languages.Position{}, false
	}
	return languages.PointPosition(a.StartPoint()), true
}

func (e *emitter) sourceFile() {
	e.b.AppendLine("////")
	if page := pageName(e.path); page != "" {
		e.b.AppendLine("@page ", page)
	}
	e.description()
	e.author()
	e.b.AppendLine("////")
}

// pageName keeps the last two segments of path with script extensions
// removed, e.g. "src/app/main.ts" becomes "app/main".
func pageName(path string) string {
	if path == "" {
		return ""
	}
	path = filepath.ToSlash(path)
	for {
		ext := filepath.Ext(path)
		if !isScriptExt(ext) {
			break
		}
		path = strings.TrimSuffix(path, ext)
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, "/")
}

func isScriptExt(ext string) bool {
	switch ext {
	case ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts":
		return true
	}
	return false
}

func (e *emitter) description() {
	if e.opts.DescriptionTag {
		e.b.Append("@desc ")
		e.b.AppendTabstop()
		e.b.AppendLine()
		return
	}
	// Free-form description area, then a blank line before the tags.
	e.b.AppendTabstop()
	e.b.AppendLine()
	e.b.AppendLine()
}

func (e *emitter) author() {
	if !e.opts.AuthorTag {
		return
	}
	e.b.Append("@author " + e.opts.AuthorName)
	e.b.AppendTabstop()
	e.b.AppendLine()
}

func (e *emitter) modifiers(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != kindAccessibility {
			continue
		}
		switch text(c, e.src) {
		case "public":
			e.b.AppendLine("@public")
		case "private":
			e.b.AppendLine("@private")
		case "protected":
			e.b.AppendLine("@protected")
		}
	}
}

func (e *emitter) class(c *ClassDeclaration) {
	e.description()
	e.author()
	e.modifiers(c.node)

	e.b.Append("@class")
	if c.name != "" {
		e.b.Append(" " + c.name)
	}
	e.b.AppendLine()

	if e.opts.IncludeTypes {
		e.heritage(c.node)
	}
}

// heritage writes one @extends or @implements tag per inherited type.
func (e *emitter) heritage(class *sitter.Node) {
	h := childOfType(class, kindClassHeritage)
	if h == nil {
		return
	}

	clauses := namedChildren(h)
	if len(clauses) > 0 && clauses[0].Type() != kindExtendsClause && clauses[0].Type() != kindImplements {
		// JavaScript: class_heritage holds the base class expression.
		e.b.AppendLine("@extends ", FormatTypeName(text(clauses[0], e.src)))
		return
	}

	for _, clause := range clauses {
		switch clause.Type() {
		case kindExtendsClause:
			var types []string
			for _, t := range namedChildren(clause) {
				if t.Type() == kindTypeArguments && len(types) > 0 {
					types[len(types)-1] += typeArguments(t, e.src)
					continue
				}
				types = append(types, text(t, e.src))
			}
			for _, t := range types {
				e.b.AppendLine("@extends ", FormatTypeName(t))
			}
		case kindImplements:
			for _, t := range namedChildren(clause) {
				e.b.AppendLine("@implements ", FormatTypeName(text(t, e.src)))
			}
		}
	}
}

func typeArguments(n *sitter.Node, src []byte) string {
	var args []string
	for _, a := range namedChildren(n) {
		args = append(args, text(a, src))
	}
	return "<" + strings.Join(args, ", ") + ">"
}

func (e *emitter) property(c *PropertyLike) {
	e.description()
	if c.accessor == "get" && !hasSetter(c.node, c.name, e.src) {
		e.b.AppendLine("@readonly")
	}
	e.modifiers(c.node)

	if !e.opts.IncludeTypes {
		return
	}
	typ := typeText(c.node.ChildByFieldName("type"), e.src)
	if c.accessor != "" {
		typ = typeText(c.node.ChildByFieldName("return_type"), e.src)
	}
	// Function types get no @type; a declared type of any shape rules out
	// the prefix heuristic.
	switch {
	case typ != "":
		if !strings.Contains(typ, "=>") {
			e.b.AppendLine("@type ", FormatTypeName(typ))
		}
	case e.opts.HungarianNotation && IsHungarianName(c.name):
		e.b.AppendLine("@type ", HungarianType(c.name))
	}
}

// hasSetter reports whether the body holding getter also declares a setter
// with the same name.
func hasSetter(getter *sitter.Node, name string, src []byte) bool {
	for _, m := range namedChildren(getter.Parent()) {
		if m.Type() != kindMethod && m.Type() != kindMethodSignature {
			continue
		}
		if accessorKeyword(m) == "set" && memberName(m, src) == name {
			return true
		}
	}
	return false
}

func (e *emitter) function(c *FunctionLike) {
	if c.kind == KindFunction && c.name != "" {
		e.b.AppendLine("@name ", c.name)
	}
	e.description()
	e.author()
	e.modifiers(c.node)
	e.parameters(c.node)
	e.returns(c.node, c.name)
}

func (e *emitter) constructor(c *FunctionLike) {
	if c.class != "" {
		e.b.AppendPlaceholder("Creates an instance of " + c.class + ".")
	} else {
		e.b.AppendPlaceholder("Creates an instance.")
	}
	e.b.AppendLine()
	e.author()
	e.parameters(c.node)
}

func (e *emitter) variable(c *VariableWithArrow) {
	if c.name != "" {
		e.b.AppendLine("@name ", c.name)
	}
	e.author()
	e.description()
	e.parameters(c.function)
	e.returns(c.function, c.name)
}

func (e *emitter) parameters(fn *sitter.Node) {
	for _, p := range parameters(fn, e.src) {
		e.b.Append("@param ")
		if e.opts.IncludeTypes {
			e.b.Append(paramType(p, e.opts) + " ")
		}
		e.b.Append(p.Name)
		if p.Default != "" {
			e.b.Append(" [" + p.Default + "]")
		}
		e.b.Append(" - ")
		e.b.AppendTabstop()
		e.b.AppendLine()
	}
}

// returns writes @returns when fn declares a non-void return type or
// returns a value from its own body.
func (e *emitter) returns(fn *sitter.Node, name string) {
	declared := typeText(fn.ChildByFieldName("return_type"), e.src)
	if !hasValueReturn(fn.ChildByFieldName("body")) && (declared == "" || declared == "void") {
		return
	}

	e.b.Append("@returns ")
	if e.opts.IncludeTypes {
		switch {
		case declared != "":
			e.b.Append(FormatTypeName(declared) + " ")
		case e.opts.InferTypes:
			if t := InferReturnType(name); t != "" {
				e.b.Append(t + " ")
			}
		}
	}
	e.b.AppendTabstop()
	e.b.AppendLine()
}

// hasValueReturn reports a return statement with a value in body, not
// counting nested functions or classes.
func hasValueReturn(body *sitter.Node) bool {
	if body == nil || body.Type() != "statement_block" {
		return false
	}
	var found bool
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for i := 0; i < int(n.NamedChildCount()) && !found; i++ {
			c := n.NamedChild(i)
			switch {
			case c.Type() == kindReturn:
				found = firstNamedChild(c) != nil
			case opensScope(c):
			default:
				walk(c)
			}
		}
	}
	walk(body)
	return found
}
