package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex(t *testing.T) {
	li := NewLineIndex([]byte("ab\ncde\n\nf"))
	assert.Equal(t, 4, li.Lines())

	tests := []struct {
		name string
		pos  Position
		want int
	}{
		{"start", Position{}, 0},
		{"first line", Position{Line: 0, Character: 1}, 1},
		{"second line", Position{Line: 1, Character: 2}, 5},
		{"empty line", Position{Line: 2}, 7},
		{"last line", Position{Line: 3, Character: 1}, 9},
		{"character past line end", Position{Line: 0, Character: 10}, 2},
		{"negative character", Position{Line: 1, Character: -4}, 3},
		{"negative line", Position{Line: -1, Character: 3}, 0},
		{"line past end", Position{Line: 10}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, li.Offset(tt.pos))
		})
	}

	assert.Equal(t, 3, li.LineStart(1))
	assert.Equal(t, 9, li.LineStart(7))
}

func TestLineIndexEmpty(t *testing.T) {
	li := NewLineIndex(nil)
	assert.Equal(t, 1, li.Lines())
	assert.Equal(t, 0, li.Offset(Position{Line: 0, Character: 5}))
	assert.Equal(t, 0, li.Offset(Position{Line: 3}))
}
