package documenter

import (
	"regexp"
	"strings"
)

var (
	booleanName   = regexp.MustCompile(`^(is|has|can)[A-Z_]`)
	hungarianName = regexp.MustCompile(`^[abefimos][A-Z]`)
)

var callbackNames = map[string]bool{
	"cb":       true,
	"callback": true,
	"done":     true,
	"next":     true,
	"fn":       true,
}

// IsBooleanName reports names like isOpen, hasValue or can_edit.
func IsBooleanName(name string) bool { return booleanName.MatchString(name) }

// IsCallbackName reports the conventional callback parameter names.
func IsCallbackName(name string) bool { return callbackNames[name] }

// IsHungarianName reports names with a single lower-case type prefix
// followed by an upper-case letter, e.g. sTitle.
func IsHungarianName(name string) bool { return hungarianName.MatchString(name) }

// HungarianType maps the prefix letter of a Hungarian-notation name to a
// doc type.
func HungarianType(name string) string {
	if name == "" {
		return "{any}"
	}
	switch name[0] {
	case 'a':
		return "{Array}"
	case 'b':
		return "{boolean}"
	case 'e': // enumeration
		return "{Object}"
	case 'f':
		return "{function}"
	case 'i':
		return "{number}"
	case 'm': // map
		return "{Object}"
	case 'o':
		return "{Object}"
	case 's':
		return "{string}"
	default:
		return "{any}"
	}
}

// InferParamType guesses a parameter type from its name alone.
func InferParamType(name string) string {
	switch {
	case IsCallbackName(name):
		return "{function}"
	case IsBooleanName(name):
		return "{boolean}"
	default:
		return "{any}"
	}
}

// InferReturnType guesses a return type from the function name. Only
// boolean-like names produce a guess.
func InferReturnType(name string) string {
	if IsBooleanName(name) {
		return "{boolean}"
	}
	return ""
}

// literalType guesses the type of a default value from its text.
func literalType(value string) string {
	switch {
	case value != "" && value[0] >= '0' && value[0] <= '9':
		return "{number}"
	case strings.ContainsAny(value, "\"'`"):
		return "{string}"
	case strings.Contains(value, "true"), strings.Contains(value, "false"):
		return "{boolean}"
	default:
		return ""
	}
}

// paramType resolves the doc type of a parameter. The order is: the shape
// of a default value when no type is declared, the declared type, the
// Hungarian prefix, the name heuristics, and finally {any}.
func paramType(p Parameter, opts Options) string {
	switch {
	case p.Default != "" && p.Type == "":
		if t := literalType(p.Default); t != "" {
			return t
		}
	case p.Type != "":
		if p.Variadic {
			return FormatTypeName("..." + p.Type)
		}
		return FormatTypeName(p.Type)
	case opts.HungarianNotation && IsHungarianName(p.Name):
		return HungarianType(p.Name)
	case opts.InferTypes:
		return InferParamType(p.Name)
	}
	return "{any}"
}
