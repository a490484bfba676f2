package css

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchProperty(t *testing.T) {
	tests := []struct {
		name     string
		propName string
		value    string
		want     Property
		wantErr  bool
	}{
		{name: "color", propName: "color", value: "red", want: Property{Kind: Color, Value: "red"}},
		{name: "background", propName: "background", value: "white", want: Property{Kind: Background, Value: "white"}},
		{name: "value kept verbatim", propName: "color", value: "ReD", want: Property{Kind: Color, Value: "ReD"}},
		{name: "unknown", propName: "margin", value: "auto", wantErr: true},
		{name: "case sensitive", propName: "Color", value: "red", wantErr: true},
		{name: "empty", propName: "", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchProperty(tt.propName, tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownProperty)
				var unknown *UnknownPropertyError
				require.True(t, errors.As(err, &unknown))
				assert.Equal(t, tt.propName, unknown.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyKindString(t *testing.T) {
	assert.Equal(t, "color", Color.String())
	assert.Equal(t, "background", Background.String())
	assert.Equal(t, "PropertyKind(0)", PropertyKind(0).String())

	for _, k := range Kinds() {
		got, ok := KindOf(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.GoName())
	}
}

func TestRuleLookupKeepsDuplicates(t *testing.T) {
	rule := Rule{
		Selector: "p",
		Properties: []Property{
			{Kind: Color, Value: "red"},
			{Kind: Background, Value: "blue"},
			{Kind: Color, Value: "green"},
		},
	}
	assert.Equal(t, []Property{{Kind: Color, Value: "red"}, {Kind: Color, Value: "green"}}, rule.Lookup(Color))
	assert.Len(t, rule.Lookup(Background), 1)
}

func TestRender(t *testing.T) {
	sheet := &Sheet{Rules: []Rule{
		{Selector: "div", Properties: []Property{{Kind: Background, Value: "white"}}},
		{Selector: "p", Properties: []Property{{Kind: Color, Value: "red"}, {Kind: Background, Value: "blue"}}},
		{Selector: "span"},
	}}

	want := "selector: div\n  background: white\n\n" +
		"selector: p\n  color: red\n  background: blue\n\n" +
		"selector: span\n\n"
	assert.Equal(t, want, sheet.String())
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", (&Sheet{}).String())
	var nilSheet *Sheet
	assert.Equal(t, "", nilSheet.String())
	assert.Equal(t, 0, nilSheet.Len())
}

func TestSheetJSON(t *testing.T) {
	sheet := &Sheet{Rules: []Rule{
		{Selector: "div", Properties: []Property{{Kind: Background, Value: "white"}}},
	}}
	data, err := json.Marshal(sheet)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rules":[{"selector":"div","properties":[{"name":"background","value":"white"}]}]}`, string(data))

	var decoded Sheet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sheet, decoded)
}

func TestSheetClone(t *testing.T) {
	sheet := &Sheet{Rules: []Rule{
		{Selector: "p", Properties: []Property{{Kind: Color, Value: "red"}}},
		{Selector: "span", Properties: []Property{}},
	}}
	c := sheet.Clone()
	require.Equal(t, sheet, c)

	c.Rules[0].Properties[0].Value = "blue"
	c.Rules[1].Selector = "div"
	assert.Equal(t, "red", sheet.Rules[0].Properties[0].Value)
	assert.Equal(t, "span", sheet.Rules[1].Selector)

	var nilSheet *Sheet
	assert.Nil(t, nilSheet.Clone())
}

func TestEmptyRuleJSON(t *testing.T) {
	for _, props := range [][]Property{nil, {}} {
		data, err := json.Marshal(&Sheet{Rules: []Rule{{Selector: "footer", Properties: props}}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"rules":[{"selector":"footer","properties":[]}]}`, string(data))
	}
}

func TestPropertyUnmarshalRejectsUnknown(t *testing.T) {
	var p Property
	err := json.Unmarshal([]byte(`{"name":"margin","value":"auto"}`), &p)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}
