package parser

import (
	"fmt"

	"github.com/chazu/csslite/pkg/css"
	"github.com/chazu/csslite/pkg/diag"
	"github.com/chazu/csslite/pkg/scanner"
)

// Sentinel errors, matched with errors.Is against a returned *Error.
var (
	ErrInvalidIdentifier = scanner.ErrInvalidIdentifier
	ErrUnexpectedSyntax  = scanner.ErrUnexpectedSyntax
	ErrUnknownProperty   = css.ErrUnknownProperty
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	InvalidIdentifier ErrorKind = iota + 1 // expected a run of letters
	UnexpectedSyntax                       // expected a specific character
	UnknownProperty                        // well-formed declaration, unsupported name
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case UnexpectedSyntax:
		return "UnexpectedSyntax"
	case UnknownProperty:
		return "UnknownProperty"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single failure a parse can end with.
type Error struct {
	Kind     ErrorKind
	Expected byte   // UnexpectedSyntax only
	Property string // UnknownProperty only
	Message  string
	Offset   int
	Pos      diag.Position

	// Diagnostic is the rendered message with its source excerpt.
	Diagnostic string

	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap returns the underlying scanner or matcher error.
func (e *Error) Unwrap() error {
	return e.err
}
