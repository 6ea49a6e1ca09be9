package css

import (
	"slices"
)

// Stylesheet is the result of a single parse: rules in source order.
type Stylesheet struct {
	Rules []Rule
}

// Rule pairs a selector group with the declarations of its block. A rule may
// have no selectors at all (for example a stray "{}" block).
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Selector is a sequence of simple selectors. Combinators are not supported,
// so it always holds zero or one element.
type Selector struct {
	Simple []SimpleSelector
}

// SimpleSelector is an optional tag, an optional id and a list of classes.
// All names are lower-cased. Classes keep duplicates and source order.
type SimpleSelector struct {
	Tag     string // empty when absent
	ID      string
	HasID   bool // false when no id was given or when several ids were given
	Classes []string
}

// IsZero reports whether the selector has no tag, no id and no classes.
func (s SimpleSelector) IsZero() bool {
	return s.Tag == "" && !s.HasID && len(s.Classes) == 0
}

// Equal compares two simple selectors field by field.
func (s SimpleSelector) Equal(o SimpleSelector) bool {
	return s.Tag == o.Tag && s.HasID == o.HasID && s.ID == o.ID && slices.Equal(s.Classes, o.Classes)
}

// Specificity is the (ids, classes, tags) count triple of a selector, used by
// the cascade to order matching rules.
type Specificity [3]int

// Less orders specificities lexicographically.
func (a Specificity) Less(b Specificity) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Specificity returns the selector's specificity.
func (s SimpleSelector) Specificity() Specificity {
	var sp Specificity
	if s.HasID {
		sp[0] = 1
	}
	sp[1] = len(s.Classes)
	if s.Tag != "" {
		sp[2] = 1
	}
	return sp
}

// Specificity of a selector is the sum over its simple selectors.
func (s Selector) Specificity() Specificity {
	var sp Specificity
	for _, simple := range s.Simple {
		ss := simple.Specificity()
		for i := range sp {
			sp[i] += ss[i]
		}
	}
	return sp
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string // lower-cased property name
	Value    Value
}

// ValueKind discriminates Value payloads.
type ValueKind int

const (
	KindOther  ValueKind = iota // opaque text in Raw
	KindColor                   // Color payload
	KindLength                  // Length payload
)

func (k ValueKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindLength:
		return "length"
	default:
		return "other"
	}
}

// Value is a typed declaration value. Raw always holds the lower-cased source
// text; Color or Length is set according to Kind.
type Value struct {
	Kind   ValueKind
	Color  Color
	Length Length
	Raw    string
}

// ColorValue wraps a parsed color.
func ColorValue(c Color, raw string) Value {
	return Value{Kind: KindColor, Color: c, Raw: raw}
}

// LengthValue wraps a parsed length.
func LengthValue(l Length, raw string) Value {
	return Value{Kind: KindLength, Length: l, Raw: raw}
}

// OtherValue wraps text of a property that has no typed representation.
func OtherValue(raw string) Value {
	return Value{Kind: KindOther, Raw: raw}
}

// Color holds four channels in [0,1].
type Color struct {
	R, G, B, A float32
}

// DefaultColor is used whenever a color cannot be understood.
var DefaultColor = Color{R: 0, G: 0, B: 0, A: 1}

// Length is a magnitude with a unit.
type Length struct {
	Magnitude float32
	Unit      Unit
}
