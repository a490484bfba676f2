// Package css defines the parsed stylesheet document: sheets made of rules,
// rules made of property declarations.
//
// Values are never normalized or type checked. Text fields are substrings of
// the parsed input, so a Sheet keeps its input alive. Nothing in this package
// mutates a Sheet after the parser builds it.
package css

import "encoding/json"

// Sheet is every rule of one input, in source order.
type Sheet struct {
	Rules []Rule `json:"rules"`
}

// Rule is a single selector and its declarations. Properties keeps source
// order, and duplicate declarations of the same kind are all kept.
type Rule struct {
	Selector   string     `json:"selector"`
	Properties []Property `json:"properties"`
}

// MarshalJSON encodes a rule with no declarations as "properties": [].
func (r Rule) MarshalJSON() ([]byte, error) {
	type plain Rule
	out := plain(r)
	if out.Properties == nil {
		out.Properties = []Property{}
	}
	return json.Marshal(out)
}

// Lookup returns every declaration of kind in the rule, in source order.
func (r Rule) Lookup(kind PropertyKind) []Property {
	var found []Property
	for _, p := range r.Properties {
		if p.Kind == kind {
			found = append(found, p)
		}
	}
	return found
}

// Clone returns a deep copy of the sheet. Text fields still share the
// parsed input's bytes, which are immutable.
func (s *Sheet) Clone() *Sheet {
	if s == nil {
		return nil
	}
	out := &Sheet{}
	if s.Rules != nil {
		out.Rules = make([]Rule, len(s.Rules))
		for i, r := range s.Rules {
			out.Rules[i] = Rule{Selector: r.Selector}
			if r.Properties != nil {
				out.Rules[i].Properties = append(make([]Property, 0, len(r.Properties)), r.Properties...)
			}
		}
	}
	return out
}

// Len returns the number of rules in the sheet.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}
