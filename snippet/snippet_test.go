package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderNumbersTabstopsInOrder(t *testing.T) {
	var b Builder
	b.Append("@param {number} a - ")
	b.AppendTabstop()
	b.AppendLine()
	b.AppendPlaceholder("Creates an instance of Foo.")
	b.AppendLine()

	assert.Equal(t, 2, b.Tabstops())
	assert.Equal(t, "@param {number} a - $1\n${2:Creates an instance of Foo.}\n", b.String())
	assert.Equal(t, "@param {number} a - \nCreates an instance of Foo.\n", b.Text())
	assert.Equal(t, []string{"@param {number} a - $1", "${2:Creates an instance of Foo.}"}, b.Lines())
	assert.Equal(t, []string{"@param {number} a - ", "Creates an instance of Foo."}, b.TextLines())
}

func TestBuilderEscapes(t *testing.T) {
	var b Builder
	b.Append(`cost $5 {x} \n`)
	b.AppendPlaceholder("a}b$")

	assert.Equal(t, `cost \$5 {x} \\n${1:a\}b\$}`, b.String())
	assert.Equal(t, `cost $5 {x} \na}b$`, b.Text())
}

func TestBuilderLinesKeepsInteriorBlankLines(t *testing.T) {
	var b Builder
	b.AppendTabstop()
	b.AppendLine()
	b.AppendLine()
	b.AppendLine("@class Foo")

	assert.Equal(t, []string{"$1", "", "@class Foo"}, b.Lines())

	var empty Builder
	assert.Nil(t, empty.Lines())
}

func TestBlock(t *testing.T) {
	got := Block([]string{"Summary", "", "@returns {string}"}, "  ")
	want := "/**\n  * Summary\n  *\n  * @returns {string}\n   */"
	assert.Equal(t, want, got)
}

func TestLineComment(t *testing.T) {
	got := LineComment([]string{"////", "@page src/util", "", "////"}, "")
	assert.Equal(t, "////\n// @page src/util\n//\n////", got)
}
