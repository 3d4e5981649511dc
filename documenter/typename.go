package documenter

import "strings"

// FormatTypeName renders declared type text as a bracketed doc type:
// arrays become Array.<T>, generic arguments use the .<> form, and unions
// and intersections are joined without padding. A leading "..." marks a
// rest parameter and unwraps one array level.
//
// The input must be raw type text; already-bracketed text is not detected.
func FormatTypeName(text string) string {
	t := strings.Join(strings.Fields(text), " ")

	variadic := strings.HasPrefix(t, "...")
	if variadic {
		t = strings.TrimSpace(t[3:])
	}
	if t == "" {
		t = "any"
	}

	if variadic {
		if elem, ok := arrayElement(t); ok {
			t = elem
		}
		return "{..." + formatType(t) + "}"
	}
	return "{" + formatType(t) + "}"
}

func formatType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" || indexTopLevel(t, "=>") >= 0 {
		return t
	}

	for _, sep := range []byte{'|', '&'} {
		if parts := splitTopLevel(t, sep); len(parts) > 1 {
			for i, p := range parts {
				parts[i] = formatType(p)
			}
			return strings.Join(parts, string(sep))
		}
	}

	if elem, ok := arrayElement(t); ok {
		return "Array.<" + formatType(elem) + ">"
	}

	if inner, ok := unwrap(t, '(', ')'); ok {
		return "(" + formatType(inner) + ")"
	}

	if name, args, ok := splitGeneric(t); ok {
		parts := splitTopLevel(args, ',')
		for i, p := range parts {
			parts[i] = formatType(p)
		}
		return name + ".<" + strings.Join(parts, ", ") + ">"
	}

	return t
}

// arrayElement returns T for "T[]" and "Array<T>"; parentheses around T are
// dropped.
func arrayElement(t string) (string, bool) {
	if strings.HasSuffix(t, "[]") {
		elem := strings.TrimSpace(t[:len(t)-2])
		if elem == "" || !balanced(elem) {
			return "", false
		}
		if inner, ok := unwrap(elem, '(', ')'); ok {
			elem = inner
		}
		return elem, true
	}
	if name, args, ok := splitGeneric(t); ok && name == "Array" && len(splitTopLevel(args, ',')) == 1 {
		return args, true
	}
	return "", false
}

// splitGeneric splits "Name<Args>" where the angle brackets enclose the
// rest of the text.
func splitGeneric(t string) (name, args string, ok bool) {
	open := strings.IndexByte(t, '<')
	if open <= 0 || !strings.HasSuffix(t, ">") {
		return "", "", false
	}
	name = strings.TrimSpace(t[:open])
	for _, r := range name {
		if !(r == '_' || r == '$' || r == '.' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "", "", false
		}
	}
	if closing := matchingClose(t, open); closing != len(t)-1 {
		return "", "", false
	}
	return name, strings.TrimSpace(t[open+1 : len(t)-1]), true
}

// unwrap strips one pair of delimiters when they enclose the whole text.
func unwrap(t string, open, close byte) (string, bool) {
	if len(t) < 2 || t[0] != open || t[len(t)-1] != close {
		return "", false
	}
	if matchingClose(t, 0) != len(t)-1 {
		return "", false
	}
	return strings.TrimSpace(t[1 : len(t)-1]), true
}

// scanTopLevel walks t and calls visit for every byte outside of quotes and
// outside of any bracket pair. visit returning false stops the scan. The
// "=>" arrow is never treated as a closing angle bracket.
func scanTopLevel(t string, visit func(i int) bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(t); i++ {
		c := t[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
			continue
		case '(', '[', '{', '<':
			depth++
			continue
		case ')', ']', '}':
			depth--
			continue
		case '>':
			if i > 0 && t[i-1] == '=' {
				break
			}
			depth--
			continue
		}
		if depth == 0 && !visit(i) {
			return
		}
	}
}

func splitTopLevel(t string, sep byte) []string {
	var parts []string
	last := 0
	scanTopLevel(t, func(i int) bool {
		if t[i] == sep {
			parts = append(parts, t[last:i])
			last = i + 1
		}
		return true
	})
	parts = append(parts, t[last:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func indexTopLevel(t, sub string) int {
	found := -1
	scanTopLevel(t, func(i int) bool {
		if strings.HasPrefix(t[i:], sub) {
			found = i
			return false
		}
		return true
	})
	return found
}

// matchingClose returns the index of the bracket closing the one at open,
// or -1.
func matchingClose(t string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(t); i++ {
		c := t[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}':
			depth--
		case '>':
			if i > 0 && t[i-1] == '=' {
				continue
			}
			depth--
		}
		if depth == 0 {
			return i
		}
	}
	return -1
}

func balanced(t string) bool {
	depth := 0
	var quote byte
	for i := 0; i < len(t); i++ {
		c := t[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}':
			depth--
		case '>':
			if i == 0 || t[i-1] != '=' {
				depth--
			}
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0 && quote == 0
}
