package documenter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Parameter is a single documented parameter. Object destructuring patterns
// are flattened into one Parameter per bound element.
type Parameter struct {
	Name     string
	Type     string // declared type text, without the colon
	Default  string // initializer text
	Variadic bool
}

// parameters lists the documented parameters of a function-like node.
func parameters(fn *sitter.Node, src []byte) []Parameter {
	if fn == nil {
		return nil
	}
	// x => x has a bare identifier instead of a parameter list.
	if p := fn.ChildByFieldName("parameter"); p != nil {
		return []Parameter{{Name: text(p, src)}}
	}

	var out []Parameter
	for _, p := range namedChildren(fn.ChildByFieldName("parameters")) {
		out = append(out, describeParameter(p, src)...)
	}
	return out
}

func describeParameter(p *sitter.Node, src []byte) []Parameter {
	switch p.Type() {
	case "required_parameter", "optional_parameter":
		pattern := p.ChildByFieldName("pattern")
		if pattern == nil {
			return nil
		}
		typ := typeText(p.ChildByFieldName("type"), src)
		def := fieldText(p, "value", src)
		if pattern.Type() == kindObjectPattern {
			return bindingParams(pattern, src)
		}
		param := Parameter{Name: text(pattern, src), Type: typ, Default: def}
		if pattern.Type() == kindRestPattern {
			param.Name = restName(pattern, src)
			param.Variadic = true
		}
		return []Parameter{param}
	case "rest_parameter":
		return []Parameter{{
			Name:     restName(p, src),
			Type:     typeText(p.ChildByFieldName("type"), src),
			Variadic: true,
		}}
	case "assignment_pattern":
		left := p.ChildByFieldName("left")
		if left != nil && left.Type() == kindObjectPattern {
			return bindingParams(left, src)
		}
		return []Parameter{{Name: text(left, src), Default: fieldText(p, "right", src)}}
	case kindRestPattern:
		return []Parameter{{Name: restName(p, src), Variadic: true}}
	case kindObjectPattern:
		return bindingParams(p, src)
	case kindDecorator, kindAccessibility:
		return nil
	default:
		return []Parameter{{Name: text(p, src)}}
	}
}

// bindingParams flattens an object destructuring pattern into its bound
// names. Nested patterns are kept whole.
func bindingParams(pattern *sitter.Node, src []byte) []Parameter {
	var out []Parameter
	for _, el := range namedChildren(pattern) {
		switch el.Type() {
		case "shorthand_property_identifier_pattern", "shorthand_property_identifier":
			out = append(out, Parameter{Name: text(el, src)})
		case "object_assignment_pattern":
			out = append(out, Parameter{
				Name:    fieldText(el, "left", src),
				Default: fieldText(el, "right", src),
			})
		case "pair_pattern":
			v := el.ChildByFieldName("value")
			if v != nil && v.Type() == "assignment_pattern" {
				out = append(out, Parameter{Name: fieldText(v, "left", src), Default: fieldText(v, "right", src)})
				continue
			}
			out = append(out, Parameter{Name: text(v, src)})
		case kindRestPattern:
			out = append(out, Parameter{Name: restName(el, src), Variadic: true})
		default:
			out = append(out, Parameter{Name: text(el, src)})
		}
	}
	return out
}

// restName strips the spread token from a rest pattern.
func restName(n *sitter.Node, src []byte) string {
	if inner := firstNamedChild(n); inner != nil && inner.Type() != "type_annotation" {
		return text(inner, src)
	}
	return strings.TrimPrefix(text(n, src), "...")
}
