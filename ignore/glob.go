package ignore

import (
	"path"
	"strings"
)

// Glob is a slash-separated path pattern. Within a segment, *, ? and
// [classes] behave as in path.Match; a "**" segment matches any number of
// segments, and {a,b} alternatives are expanded before matching.
type Glob string

// Match reports whether name, a slash-separated relative path, matches.
// Malformed patterns match nothing.
func (g Glob) Match(name string) bool {
	name = strings.TrimPrefix(name, "./")
	nameParts := strings.Split(name, "/")
	for _, alt := range expandBraces(string(g)) {
		if matchSegments(strings.Split(alt, "/"), nameParts) {
			return true
		}
	}
	return false
}

func matchSegments(pattern, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchSegments(rest, name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		ok, err := path.Match(pattern[0], name[0])
		if err != nil || !ok {
			return false
		}
		pattern, name = pattern[1:], name[1:]
	}
	return len(name) == 0
}

// expandBraces returns every alternative of the first {a,b} group,
// recursively. Unbalanced braces are kept literally.
func expandBraces(p string) []string {
	open := strings.IndexByte(p, '{')
	if open < 0 {
		return []string{p}
	}

	depth := 0
	closing := -1
	var commas []int
	for i := open; i < len(p) && closing < 0; i++ {
		switch p[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closing = i
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}
	if closing < 0 {
		return []string{p}
	}

	var out []string
	start := open + 1
	for _, c := range append(commas, closing) {
		for _, tail := range expandBraces(p[closing+1:]) {
			out = append(out, expandBraces(p[:open]+p[start:c]+tail)...)
		}
		start = c + 1
	}
	return out
}
