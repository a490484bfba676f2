// Package query selects rules from a parsed sheet by selector pattern.
package query

import (
	"fmt"

	"github.com/chazu/csslite/pkg/css"
	"github.com/gobwas/glob"
)

// Matcher matches selectors against a shell-style pattern (e.g. "d*", "{a,p}").
type Matcher struct {
	pattern glob.Glob
	src     string
}

// Compile compiles pattern into a Matcher.
func Compile(pattern string) (*Matcher, error) {
	compiled, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid selector pattern %q: %w", pattern, err)
	}
	return &Matcher{pattern: compiled, src: pattern}, nil
}

// Match reports whether selector matches the pattern.
func (m *Matcher) Match(selector string) bool {
	return m.pattern.Match(selector)
}

func (m *Matcher) String() string {
	return m.src
}

// Filter returns a new sheet holding the matching rules of sheet, in order.
// The rules themselves are shared, not copied.
func (m *Matcher) Filter(sheet *css.Sheet) *css.Sheet {
	out := &css.Sheet{}
	if sheet == nil {
		return out
	}
	for _, rule := range sheet.Rules {
		if m.Match(rule.Selector) {
			out.Rules = append(out.Rules, rule)
		}
	}
	return out
}

// Select compiles pattern and filters sheet with it.
func Select(sheet *css.Sheet, pattern string) (*css.Sheet, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return m.Filter(sheet), nil
}
