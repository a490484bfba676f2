package query

import (
	"testing"

	"github.com/chazu/csslite/pkg/css"
	"github.com/chazu/csslite/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	sheet, err := parser.Parse(`
		div { color: red; }
		p { color: blue; }
		dialog { background: black; }
		span { }
	`)
	require.NoError(t, err)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "exact", pattern: "p", want: []string{"p"}},
		{name: "prefix", pattern: "d*", want: []string{"div", "dialog"}},
		{name: "alternatives", pattern: "{span,p}", want: []string{"p", "span"}},
		{name: "single char", pattern: "?", want: []string{"p"}},
		{name: "everything", pattern: "*", want: []string{"div", "p", "dialog", "span"}},
		{name: "nothing", pattern: "table", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(sheet, tt.pattern)
			require.NoError(t, err)

			var selectors []string
			for _, rule := range got.Rules {
				selectors = append(selectors, rule.Selector)
			}
			assert.Equal(t, tt.want, selectors)
		})
	}
}

func TestSelectKeepsDeclarations(t *testing.T) {
	sheet, err := parser.Parse("p { color: red; color: blue; }")
	require.NoError(t, err)

	got, err := Select(sheet, "p")
	require.NoError(t, err)
	require.Len(t, got.Rules, 1)
	assert.Equal(t, []css.Property{
		{Kind: css.Color, Value: "red"},
		{Kind: css.Color, Value: "blue"},
	}, got.Rules[0].Properties)
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile("[")
	assert.Error(t, err)
}

func TestFilterNilSheet(t *testing.T) {
	m, err := Compile("*")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Filter(nil).Len())
	assert.Equal(t, "*", m.String())
}
