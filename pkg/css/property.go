package css

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownProperty is returned for a declaration whose name is not one of
// the supported property kinds.
var ErrUnknownProperty = errors.New("unknown property")

// PropertyKind identifies a supported property.
type PropertyKind int

// Supported property kinds. The set is closed; there is no "unknown" kind.
const (
	Color PropertyKind = iota + 1
	Background
)

var kindNames = map[PropertyKind]string{
	Color:      "color",
	Background: "background",
}

var kindsByName = map[string]PropertyKind{
	"color":      Color,
	"background": Background,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []PropertyKind {
	return []PropertyKind{Color, Background}
}

func (k PropertyKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PropertyKind(%d)", int(k))
}

// GoName is the exported constant name of the kind in this package.
func (k PropertyKind) GoName() string {
	switch k {
	case Color:
		return "Color"
	case Background:
		return "Background"
	}
	return ""
}

// KindOf looks up a property name. Matching is exact and case-sensitive.
func KindOf(name string) (PropertyKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Property is one declaration. Value is the raw declared text.
type Property struct {
	Kind  PropertyKind
	Value string
}

// Name returns the CSS name of the property.
func (p Property) Name() string {
	return p.Kind.String()
}

func (p Property) String() string {
	return p.Name() + ": " + p.Value
}

type propertyJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes the property as {"name": ..., "value": ...}.
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertyJSON{Name: p.Name(), Value: p.Value})
}

// UnmarshalJSON decodes {"name": ..., "value": ...}, rejecting unknown names.
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	prop, err := MatchProperty(raw.Name, raw.Value)
	if err != nil {
		return err
	}
	*p = prop
	return nil
}

// UnknownPropertyError names the rejected property.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property %q", e.Name)
}

func (e *UnknownPropertyError) Unwrap() error {
	return ErrUnknownProperty
}

// MatchProperty builds the Property for name carrying value verbatim. It
// does not report diagnostics; callers attach their own context.
func MatchProperty(name, value string) (Property, error) {
	kind, ok := KindOf(name)
	if !ok {
		return Property{}, &UnknownPropertyError{Name: name}
	}
	return Property{Kind: kind, Value: value}, nil
}
