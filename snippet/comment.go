package snippet

import "strings"

// Block renders lines as a JSDoc block comment. Every line after the opening
// delimiter is prefixed with indent, so the result can be inserted at a
// column that is already indented.
func Block(lines []string, indent string) string {
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range lines {
		sb.WriteString(indent)
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(indent)
	sb.WriteString(" */")
	return sb.String()
}

// LineComment renders lines as // comments. Lines that already start with
// "//" (the file banner markers) are kept verbatim.
func LineComment(lines []string, indent string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "//"):
			out[i] = line
		case line == "":
			out[i] = "//"
		default:
			out[i] = "// " + line
		}
	}
	return strings.Join(out, "\n"+indent)
}
