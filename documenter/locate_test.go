package documenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alburdette619/docthis/languages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	src := "const x = 1;\n\n// note\nfunction f() {\n  return x;\n}\n"
	f := parseTS(t, src)

	tests := []struct {
		name     string
		caret    languages.Position
		wantType string
		wantKind Kind
	}{
		{"identifier", languages.Position{Line: 0, Character: 6}, "identifier", KindSourceFile},
		{"blank line before function", languages.Position{Line: 1, Character: 0}, "function", KindFunction},
		{"comment line before function", languages.Position{Line: 2, Character: 4}, "function", KindFunction},
		{"inside body", languages.Position{Line: 4, Character: 2}, "return", KindFunction},
		{"past end of line", languages.Position{Line: 0, Character: 80}, ";", KindSourceFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Locate(f.Root(), f.Offset(tt.caret))
			require.NotNil(t, n)
			assert.Equal(t, tt.wantType, n.Type())

			c := Classify(n, f.Source())
			require.NotNil(t, c)
			assert.Equal(t, tt.wantKind, c.Kind())
		})
	}
}

func TestLocateNeverReturnsComment(t *testing.T) {
	f := parseTS(t, "/* header */\n")

	n := Locate(f.Root(), 3)
	assert.Equal(t, "program", n.Type())
}

func TestOffsetClamps(t *testing.T) {
	f := parseTS(t, "ab\ncd\n")

	assert.EqualValues(t, 0, f.Offset(languages.Position{Line: -1}))
	assert.EqualValues(t, 4, f.Offset(languages.Position{Line: 1, Character: 1}))
	assert.EqualValues(t, 2, f.Offset(languages.Position{Line: 0, Character: 9}))
	assert.EqualValues(t, 6, f.Offset(languages.Position{Line: 9}))
}

func TestTrace(t *testing.T) {
	f := parseTS(t, "const a = 1;\n")

	out := f.Trace(languages.Position{Line: 0, Character: 6})
	require.True(t, strings.HasPrefix(out, "0 to "))

	ident := Locate(f.Root(), 6)
	require.Equal(t, "identifier", ident.Type())

	program := strings.Index(out, ") program\n")
	decl := strings.Index(out, ") lexical_declaration - Index of parent: 0\n")
	leaf := strings.Index(out, fmt.Sprintf("6 to 7 --- (%d) identifier - Index of parent: 0\n      a\n", ident.Symbol()))
	assert.GreaterOrEqual(t, program, 0)
	assert.Greater(t, decl, program)
	assert.Greater(t, leaf, decl)
}
