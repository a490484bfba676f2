// Package scanner provides the character-level primitives the stylesheet
// parser is built from.
//
// There is no token stream. Each primitive takes the full input and a byte
// offset into it, and returns the offset just past whatever it consumed:
//
//	SkipWhitespace  - zero or more ASCII whitespace bytes, never fails
//	ScanIdentifier  - one or more ASCII letters (e.g., div, color, red)
//	ExpectChar      - exactly one expected byte (e.g., ':', ';', '{', '}')
//
// Offsets equal to len(input) are valid and mean end-of-input.
package scanner

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned when an identifier was required but no
// letter was found at the scan position.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrUnexpectedSyntax is returned when a specific character was required but
// something else (or end-of-input) was found.
var ErrUnexpectedSyntax = errors.New("unexpected syntax")

// SyntaxError records which character ExpectChar wanted and where.
type SyntaxError struct {
	Expected byte
	Found    byte
	EOF      bool
	Offset   int
}

func (e *SyntaxError) Error() string {
	if e.EOF {
		return fmt.Sprintf("expected %q, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %q, found %q", e.Expected, e.Found)
}

// Unwrap lets errors.Is match ErrUnexpectedSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrUnexpectedSyntax
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// SkipWhitespace returns the first offset at or after pos that is not ASCII
// whitespace. It may return len(input).
func SkipWhitespace(input string, pos int) int {
	for pos < len(input) && isSpace(input[pos]) {
		pos++
	}
	return pos
}

// ScanIdentifier consumes a run of ASCII letters starting at pos. The returned
// text is a slice of input, case preserved.
func ScanIdentifier(input string, pos int) (string, int, error) {
	start := pos
	for pos < len(input) && isAlpha(input[pos]) {
		pos++
	}
	if pos == start {
		return "", start, ErrInvalidIdentifier
	}
	return input[start:pos], pos, nil
}

// ExpectChar consumes exactly one byte, which must equal expected.
// No whitespace is skipped.
func ExpectChar(input string, pos int, expected byte) (int, error) {
	if pos >= len(input) {
		return pos, &SyntaxError{Expected: expected, EOF: true, Offset: pos}
	}
	if input[pos] != expected {
		return pos, &SyntaxError{Expected: expected, Found: input[pos], Offset: pos}
	}
	return pos + 1, nil
}

// Peek returns the byte at pos, or 0 at end-of-input.
func Peek(input string, pos int) byte {
	if pos >= len(input) {
		return 0
	}
	return input[pos]
}
