package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	input := "div {\n  color: 1;\n}"
	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{name: "start", offset: 0, want: Position{Line: 1, Column: 0}},
		{name: "first line", offset: 4, want: Position{Line: 1, Column: 4}},
		{name: "newline itself", offset: 5, want: Position{Line: 1, Column: 5}},
		{name: "second line start", offset: 6, want: Position{Line: 2, Column: 0}},
		{name: "second line digit", offset: 15, want: Position{Line: 2, Column: 9}},
		{name: "third line", offset: 18, want: Position{Line: 3, Column: 0}},
		{name: "end of input", offset: 19, want: Position{Line: 3, Column: 1}},
		{name: "past end clamps", offset: 100, want: Position{Line: 3, Column: 1}},
		{name: "negative clamps", offset: -3, want: Position{Line: 1, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locate(input, tt.offset))
		})
	}
}

func TestLineAt(t *testing.T) {
	input := "a {\r\n  color: x\n}"
	assert.Equal(t, "a {", LineAt(input, 0))
	assert.Equal(t, "  color: x", LineAt(input, 9))
	assert.Equal(t, "}", LineAt(input, len(input)))
	assert.Equal(t, "", LineAt("", 0))
}

func TestFormat(t *testing.T) {
	input := "p {\n  color: 1;\n}"
	got := Format(input, 13, "could not parse property %s", "value")
	want := "Error at line 2, column 9: could not parse property value\n\n" +
		"  color: 1;\n" +
		"         ^ Near here.\n"
	assert.Equal(t, want, got)
}

func TestFormatWithoutArgs(t *testing.T) {
	got := Format("p", 1, "100% sure")
	assert.Equal(t, "Error at line 1, column 1: 100% sure\n\np\n ^ Near here.\n", got)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "line 4, column 0", Position{Line: 4}.String())
}
