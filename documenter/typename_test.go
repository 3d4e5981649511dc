package documenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"string", "{string}"},
		{"", "{any}"},
		{"string[]", "{Array.<string>}"},
		{"Array<number>", "{Array.<number>}"},
		{"string | number", "{string|number}"},
		{"A & B", "{A&B}"},
		{"(string | number)[]", "{Array.<string|number>}"},
		{"Map<string, number[]>", "{Map.<string, Array.<number>>}"},
		{"Promise<\n    void>", "{Promise.<void>}"},
		{"(a: number) => void", "{(a: number) => void}"},
		{"...string[]", "{...string}"},
		{"...any", "{...any}"},
		{"'a' | 'b'", "{'a'|'b'}"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTypeName(tt.in))
		})
	}
}

func TestFormatTypeNameAlwaysBracketed(t *testing.T) {
	for _, in := range []string{"T[][]", "Record<string, Array<T>>", "{ a: string }", "x | (y & z)"} {
		got := FormatTypeName(in)
		assert.Equal(t, byte('{'), got[0], in)
		assert.Equal(t, byte('}'), got[len(got)-1], in)
	}
}
