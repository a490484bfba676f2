// Package gogen generates Go source that declares a parsed sheet as a
// package-level variable, so styles can be compiled into a binary.
package gogen

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/chazu/csslite/pkg/css"
	"github.com/dave/jennifer/jen"
)

const cssPath = "github.com/chazu/csslite/pkg/css"

// Options controls the generated file.
type Options struct {
	Package string // defaults to "styles"
	Var     string // defaults to "Sheet"
	Source  string // input name mentioned in the header, optional
}

// Result contains the generated code and any warnings.
type Result struct {
	Code     string
	Warnings []string
}

// Generate produces Go source declaring sheet.
func Generate(sheet *css.Sheet, opts Options) (*Result, error) {
	if opts.Package == "" {
		opts.Package = "styles"
	}
	if opts.Var == "" {
		opts.Var = "Sheet"
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	if !token.IsIdentifier(opts.Var) {
		return nil, fmt.Errorf("invalid variable name %q", opts.Var)
	}

	g := &generator{sheet: sheet, warnings: []string{}}
	f := g.generate(opts)

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, fmt.Errorf("rendering generated code: %w", err)
	}

	return &Result{Code: buf.String(), Warnings: g.warnings}, nil
}

type generator struct {
	sheet    *css.Sheet
	warnings []string
}

func (g *generator) generate(opts Options) *jen.File {
	f := jen.NewFile(opts.Package)
	f.ImportName(cssPath, "css")

	if opts.Source != "" {
		f.HeaderComment(fmt.Sprintf("Code generated by csslite from %s. DO NOT EDIT.", opts.Source))
	} else {
		f.HeaderComment("Code generated by csslite. DO NOT EDIT.")
	}

	var rules []jen.Code
	if g.sheet != nil {
		for _, rule := range g.sheet.Rules {
			rules = append(rules, g.rule(rule))
		}
	}

	f.Commentf("%s holds %d parsed rules.", opts.Var, g.sheet.Len())
	f.Var().Id(opts.Var).Op("=").Op("&").Qual(cssPath, "Sheet").Values(jen.Dict{
		jen.Id("Rules"): jen.Index().Qual(cssPath, "Rule").Values(rules...),
	})

	return f
}

func (g *generator) rule(rule css.Rule) jen.Code {
	dict := jen.Dict{
		jen.Id("Selector"): jen.Lit(rule.Selector),
	}

	if len(rule.Properties) > 0 {
		seen := map[css.PropertyKind]int{}
		props := make([]jen.Code, 0, len(rule.Properties))
		for _, p := range rule.Properties {
			seen[p.Kind]++
			props = append(props, jen.Values(jen.Dict{
				jen.Id("Kind"):  jen.Qual(cssPath, p.Kind.GoName()),
				jen.Id("Value"): jen.Lit(p.Value),
			}))
		}
		dict[jen.Id("Properties")] = jen.Index().Qual(cssPath, "Property").Values(props...)

		for _, kind := range css.Kinds() {
			if seen[kind] > 1 {
				g.warnings = append(g.warnings,
					fmt.Sprintf("rule %s declares %s %d times", rule.Selector, kind, seen[kind]))
			}
		}
	}

	return jen.Line().Values(dict)
}
