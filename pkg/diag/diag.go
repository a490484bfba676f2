// Package diag renders positioned error messages with a source excerpt.
//
// Lines are 1-indexed and columns 0-indexed, counted in bytes from the start
// of the line. A diagnostic looks like:
//
//	Error at line 2, column 11: could not parse property value
//
//	p { color: 1; }
//	           ^ Near here.
package diag

import (
	"fmt"
	"strings"
)

// Position is a line/column pair within an input.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

func clamp(input string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(input) {
		return len(input)
	}
	return offset
}

// Locate scans input from the start up to offset and returns its position.
// Offsets past the end are clamped to len(input).
func Locate(input string, offset int) Position {
	offset = clamp(input, offset)
	pos := Position{Line: 1}
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			pos.Line++
			pos.Column = 0
			continue
		}
		pos.Column++
	}
	return pos
}

// LineAt returns the full text of the line containing offset, without its
// line terminator.
func LineAt(input string, offset int) string {
	offset = clamp(input, offset)
	start := strings.LastIndexByte(input[:offset], '\n') + 1
	end := strings.IndexByte(input[offset:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += offset
	}
	return strings.TrimSuffix(input[start:end], "\r")
}

// Format renders a diagnostic for offset. msg is a fmt format string applied
// to args.
func Format(input string, offset int, msg string, args ...interface{}) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	pos := Locate(input, offset)

	var b strings.Builder
	fmt.Fprintf(&b, "Error at %s: %s\n\n", pos, msg)
	b.WriteString(LineAt(input, offset))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos.Column))
	b.WriteString("^ Near here.\n")
	return b.String()
}
