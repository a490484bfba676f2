// Package parser converts stylesheet text into a css.Sheet.
//
// The grammar is a small CSS subset, parsed by recursive descent directly
// over the input bytes:
//
//	sheet       = ws* ( rule ws* )*
//	rule        = ws* ident ws* '{' ( ws* declaration )* ws* '}'
//	declaration = ws* ident ws* ':' ws* ident ws* ';'
//	ident       = [A-Za-z]+
//
// The first failure ends the parse. No partial sheet is returned, and the
// returned *Error carries a rendered diagnostic pointing at the failure.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/chazu/csslite/pkg/css"
	"github.com/chazu/csslite/pkg/diag"
	"github.com/chazu/csslite/pkg/scanner"
)

// Parser holds the cursor for a single parse of one input.
type Parser struct {
	input string
	pos   int

	// Diagnostics, if set, receives the rendered diagnostic of a failure
	// before Parse returns it. Writes are best-effort: a write error is
	// ignored and the parse error is returned unchanged.
	Diagnostics io.Writer
}

// New creates a Parser positioned at the start of input.
func New(input string) *Parser {
	return &Parser{input: input}
}

// Parse parses a complete sheet.
func Parse(input string) (*css.Sheet, error) {
	return New(input).Parse()
}

// ParseWithDiagnostics parses input and writes the diagnostic of any failure to w.
func ParseWithDiagnostics(input string, w io.Writer) (*css.Sheet, error) {
	p := New(input)
	p.Diagnostics = w
	return p.Parse()
}

// Parse parses rules until end-of-input. Empty or whitespace-only input
// yields a sheet with no rules.
func (p *Parser) Parse() (*css.Sheet, error) {
	sheet := &css.Sheet{}

	p.pos = 0
	p.skipWhitespace()
	for !p.atEnd() {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, rule)
		p.skipWhitespace()
	}

	return sheet, nil
}

// Helper methods for cursor movement

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) peek() byte {
	return scanner.Peek(p.input, p.pos)
}

func (p *Parser) skipWhitespace() {
	p.pos = scanner.SkipWhitespace(p.input, p.pos)
}

func (p *Parser) identifier(what string) (string, error) {
	text, pos, err := scanner.ScanIdentifier(p.input, p.pos)
	if err != nil {
		return "", p.fail(InvalidIdentifier, p.pos, err, "could not parse %s", what)
	}
	p.pos = pos
	return text, nil
}

func (p *Parser) expect(c byte) error {
	pos, err := scanner.ExpectChar(p.input, p.pos, c)
	if err != nil {
		e := p.fail(UnexpectedSyntax, p.pos, err, "%s", err.Error())
		e.Expected = c
		return e
	}
	p.pos = pos
	return nil
}

// parseRule parses a selector and its brace-delimited block.
func (p *Parser) parseRule() (css.Rule, error) {
	p.skipWhitespace()
	selector, err := p.identifier("selector")
	if err != nil {
		return css.Rule{}, err
	}

	p.skipWhitespace()
	if err := p.expect('{'); err != nil {
		return css.Rule{}, err
	}

	rule := css.Rule{Selector: selector, Properties: []css.Property{}}
	for {
		p.skipWhitespace()
		// End-of-input falls through to expect('}') below.
		if p.peek() == '}' || p.atEnd() {
			break
		}

		prop, err := p.parseDeclaration()
		if err != nil {
			return css.Rule{}, err
		}
		rule.Properties = append(rule.Properties, prop)
	}

	p.skipWhitespace()
	if err := p.expect('}'); err != nil {
		return css.Rule{}, err
	}

	return rule, nil
}

// parseDeclaration parses one `name: value;` statement. Every successful
// call consumes at least the terminating semicolon.
func (p *Parser) parseDeclaration() (css.Property, error) {
	start := p.pos

	p.skipWhitespace()
	name, err := p.identifier("property name")
	if err != nil {
		return css.Property{}, err
	}

	p.skipWhitespace()
	if err := p.expect(':'); err != nil {
		return css.Property{}, err
	}

	p.skipWhitespace()
	value, err := p.identifier("property value")
	if err != nil {
		return css.Property{}, err
	}

	p.skipWhitespace()
	if err := p.expect(';'); err != nil {
		return css.Property{}, err
	}

	prop, err := css.MatchProperty(name, value)
	if err != nil {
		e := p.fail(UnknownProperty, start, err, "unknown property: '%s'", name)
		e.Property = name
		return css.Property{}, e
	}

	return prop, nil
}

// fail builds the *Error for a failure at offset and reports its diagnostic.
func (p *Parser) fail(kind ErrorKind, offset int, cause error, msg string, args ...interface{}) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	text := diag.Format(p.input, offset, "%s", msg)
	e := &Error{
		Kind:       kind,
		Message:    msg,
		Offset:     offset,
		Pos:        diag.Locate(p.input, offset),
		Diagnostic: text,
		err:        cause,
	}
	if p.Diagnostics != nil {
		_, _ = io.WriteString(p.Diagnostics, text)
	}
	return e
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
