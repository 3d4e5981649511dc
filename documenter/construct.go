package documenter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Kind names a documentable construct variant.
type Kind string

const (
	KindSourceFile         Kind = "file"
	KindClass              Kind = "class"
	KindProperty           Kind = "property"
	KindFunction           Kind = "function"
	KindMethod             Kind = "method"
	KindConstructor        Kind = "constructor"
	KindFunctionExpression Kind = "function-expression"
	KindVariable           Kind = "variable"
	KindEnumMember         Kind = "enum-member"
)

// Construct is a syntax node selected for documentation. The set of
// implementations is closed: *SourceFile, *ClassDeclaration, *PropertyLike,
// *FunctionLike, *VariableWithArrow and *EnumMember.
//
// A Construct borrows nodes from the tree it was classified in and must not
// outlive it.
type Construct interface {
	Kind() Kind
	Name() string
	Node() *sitter.Node

	// anchor is the node whose start is the insertion point.
	anchor() *sitter.Node
}

// SourceFile is the file itself.
type SourceFile struct {
	node *sitter.Node
}

func (c *SourceFile) Kind() Kind           { return KindSourceFile }
func (c *SourceFile) Name() string         { return "" }
func (c *SourceFile) Node() *sitter.Node   { return c.node }
func (c *SourceFile) anchor() *sitter.Node { return nil }

// ClassDeclaration is a named or anonymous class declaration. A class
// expression assigned to a variable is named after the variable and
// documented at the variable statement.
type ClassDeclaration struct {
	node   *sitter.Node
	name   string
	target *sitter.Node // enclosing variable statement, class expressions only
}

func (c *ClassDeclaration) Kind() Kind         { return KindClass }
func (c *ClassDeclaration) Name() string       { return c.name }
func (c *ClassDeclaration) Node() *sitter.Node { return c.node }
func (c *ClassDeclaration) anchor() *sitter.Node {
	if c.target != nil {
		return declarationStart(c.target)
	}
	return declarationStart(c.node)
}

// PropertyLike is a field, property signature, getter or setter.
type PropertyLike struct {
	node     *sitter.Node
	name     string
	accessor string // "get", "set" or ""
}

func (c *PropertyLike) Kind() Kind           { return KindProperty }
func (c *PropertyLike) Name() string         { return c.name }
func (c *PropertyLike) Node() *sitter.Node   { return c.node }
func (c *PropertyLike) Accessor() string     { return c.accessor }
func (c *PropertyLike) anchor() *sitter.Node { return memberStart(c.node) }

// FunctionLike is a function declaration, method, constructor, or a
// function expression assigned to a property.
type FunctionLike struct {
	node   *sitter.Node
	kind   Kind
	name   string
	class  string       // enclosing class name, constructors only
	target *sitter.Node // insertion anchor for function expressions
}

func (c *FunctionLike) Kind() Kind         { return c.kind }
func (c *FunctionLike) Name() string       { return c.name }
func (c *FunctionLike) Node() *sitter.Node { return c.node }
func (c *FunctionLike) anchor() *sitter.Node {
	switch c.kind {
	case KindFunction:
		return declarationStart(c.node)
	case KindFunctionExpression:
		switch c.target.Type() {
		case "public_field_definition", "field_definition":
			return memberStart(c.target)
		case kindLexicalDecl, kindVariableDecl:
			return declarationStart(c.target)
		}
		return c.target
	default:
		return memberStart(c.node)
	}
}

// VariableWithArrow is a variable statement whose declarations include a
// function initializer. Name is the first declared variable.
type VariableWithArrow struct {
	node     *sitter.Node
	name     string
	function *sitter.Node
}

func (c *VariableWithArrow) Kind() Kind             { return KindVariable }
func (c *VariableWithArrow) Name() string           { return c.name }
func (c *VariableWithArrow) Node() *sitter.Node     { return c.node }
func (c *VariableWithArrow) Function() *sitter.Node { return c.function }
func (c *VariableWithArrow) anchor() *sitter.Node   { return declarationStart(c.node) }

// EnumMember is a single member of an enum body.
type EnumMember struct {
	node *sitter.Node
	name string
}

func (c *EnumMember) Kind() Kind           { return KindEnumMember }
func (c *EnumMember) Name() string         { return c.name }
func (c *EnumMember) Node() *sitter.Node   { return c.node }
func (c *EnumMember) anchor() *sitter.Node { return c.node }

// Classify returns the construct for node or its nearest documentable
// ancestor, or nil if there is none.
//
// A function expression or arrow function counts as the value of an object
// property, an assignment, a class field or a default export. Anywhere else
// it is documented at the nearest enclosing variable statement; without one
// there is no construct.
func Classify(node *sitter.Node, src []byte) Construct {
	for n := node; n != nil; n = n.Parent() {
		switch n.Type() {
		case kindProgram:
			return &SourceFile{node: n}
		case "class_declaration", "abstract_class_declaration":
			return &ClassDeclaration{node: n, name: fieldText(n, "name", src)}
		case "class":
			if n.IsNamed() {
				return classifyClassExpression(n, src)
			}
		case "public_field_definition", "field_definition", "property_signature":
			return &PropertyLike{node: n, name: memberName(n, src)}
		case kindMethod, kindMethodSignature, "abstract_method_signature":
			return classifyMethod(n, src)
		case "function_declaration", "generator_function_declaration", "function_signature":
			return &FunctionLike{node: n, kind: KindFunction, name: fieldText(n, "name", src)}
		case "arrow_function", "function_expression", "generator_function", "function":
			if !isFunctionValue(n) {
				continue
			}
			return classifyFunctionValue(n, src)
		case kindLexicalDecl, kindVariableDecl:
			if c := classifyVariable(n, src); c != nil {
				return c
			}
		case "enum_assignment":
			return &EnumMember{node: n, name: fieldText(n, "name", src)}
		case "property_identifier":
			if p := n.Parent(); p != nil && p.Type() == kindEnumBody {
				return &EnumMember{node: n, name: text(n, src)}
			}
		case kindDecorator:
			if p := n.Parent(); p != nil && p.Type() == kindClassBody {
				if member := decoratedMember(n); member != nil {
					return Classify(member, src)
				}
			}
		}
	}
	return nil
}

func classifyMethod(n *sitter.Node, src []byte) Construct {
	name := memberName(n, src)
	if acc := accessorKeyword(n); acc != "" {
		return &PropertyLike{node: n, name: name, accessor: acc}
	}
	if n.Type() == kindMethod && name == "constructor" {
		return &FunctionLike{node: n, kind: KindConstructor, name: name, class: enclosingClassName(n, src)}
	}
	return &FunctionLike{node: n, kind: KindMethod, name: name}
}

func classifyFunctionValue(n *sitter.Node, src []byte) Construct {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	switch parent.Type() {
	case "pair", "assignment_expression", "public_field_definition", "field_definition":
		name := fieldText(n, "name", src)
		if name == "" {
			name = assignedName(parent, src)
		}
		return &FunctionLike{node: n, kind: KindFunctionExpression, name: name, target: parent}
	case kindExport:
		return &FunctionLike{node: n, kind: KindFunction, name: fieldText(n, "name", src)}
	case kindDeclarator:
		return Classify(parent, src)
	}

	decl := enclosingVariable(parent)
	if decl == nil {
		return nil
	}
	return &FunctionLike{node: n, kind: KindFunctionExpression, name: declaredName(decl, src), target: decl}
}

func classifyClassExpression(n *sitter.Node, src []byte) Construct {
	p := n.Parent()
	if p == nil || p.Type() != kindDeclarator {
		return &ClassDeclaration{node: n, name: fieldText(n, "name", src)}
	}
	name := fieldText(n, "name", src)
	if name == "" {
		name = fieldText(p, "name", src)
	}
	return &ClassDeclaration{node: n, name: name, target: enclosingVariable(p)}
}

// enclosingVariable returns the variable statement holding n.
func enclosingVariable(n *sitter.Node) *sitter.Node {
	for a := n; a != nil; a = a.Parent() {
		switch a.Type() {
		case kindLexicalDecl, kindVariableDecl:
			return a
		case kindProgram:
			return nil
		}
	}
	return nil
}

// declaredName returns the first variable a statement declares.
func declaredName(decl *sitter.Node, src []byte) string {
	for _, d := range namedChildren(decl) {
		if d.Type() == kindDeclarator {
			return fieldText(d, "name", src)
		}
	}
	return ""
}

func classifyVariable(n *sitter.Node, src []byte) Construct {
	var first string
	for _, d := range namedChildren(n) {
		if d.Type() != kindDeclarator {
			continue
		}
		if first == "" {
			first = fieldText(d, "name", src)
		}
		v := d.ChildByFieldName("value")
		switch {
		case v == nil:
		case isFunctionValue(v):
			return &VariableWithArrow{node: n, name: first, function: v}
		case v.Type() == "class" && v.IsNamed():
			return classifyClassExpression(v, src)
		}
	}
	return nil
}

// assignedName is the property a function expression is stored under.
func assignedName(parent *sitter.Node, src []byte) string {
	switch parent.Type() {
	case "pair":
		return fieldText(parent, "key", src)
	case "assignment_expression":
		left := parent.ChildByFieldName("left")
		if left != nil && left.Type() == "member_expression" {
			return fieldText(left, "property", src)
		}
		return text(left, src)
	default:
		return memberName(parent, src)
	}
}

// enclosingClassName names the class a member belongs to. Anonymous class
// expressions fall back to the variable they are assigned to.
func enclosingClassName(member *sitter.Node, src []byte) string {
	body := member.Parent()
	if body == nil {
		return ""
	}
	class := body.Parent()
	if class == nil {
		return ""
	}
	if name := fieldText(class, "name", src); name != "" {
		return name
	}
	if p := class.Parent(); p != nil && p.Type() == kindDeclarator {
		return fieldText(p, "name", src)
	}
	return ""
}

// decoratedMember returns the class member a decorator applies to.
func decoratedMember(n *sitter.Node) *sitter.Node {
	for s := n.NextNamedSibling(); s != nil; s = s.NextNamedSibling() {
		if s.Type() != kindDecorator && s.Type() != kindComment {
			return s
		}
	}
	return nil
}
