package dump

import (
	"cssp/css"
)

// Serializable view of the stylesheet shared by yaml and ion writers.
type (
	document struct {
		Source string `yaml:"source,omitempty" ion:"source,omitempty"`
		Rules  []rule `yaml:"rules" ion:"rules"`
	}

	rule struct {
		Selectors    []selector    `yaml:"selectors" ion:"selectors"`
		Declarations []declaration `yaml:"declarations" ion:"declarations"`
	}

	selector struct {
		Text        string   `yaml:"text" ion:"text"`
		Tag         string   `yaml:"tag,omitempty" ion:"tag,omitempty"`
		ID          string   `yaml:"id,omitempty" ion:"id,omitempty"`
		Classes     []string `yaml:"classes,omitempty,flow" ion:"classes,omitempty"`
		Specificity []int    `yaml:"specificity,flow" ion:"specificity"`
	}

	declaration struct {
		Property string  `yaml:"property" ion:"property"`
		Kind     string  `yaml:"kind" ion:"kind"`
		Value    string  `yaml:"value" ion:"value"`
		Raw      string  `yaml:"raw" ion:"raw"`
		Color    *color  `yaml:"color,omitempty,flow" ion:"color,omitempty"`
		Length   *length `yaml:"length,omitempty,flow" ion:"length,omitempty"`
	}

	color struct {
		R float64 `yaml:"r" ion:"r"`
		G float64 `yaml:"g" ion:"g"`
		B float64 `yaml:"b" ion:"b"`
		A float64 `yaml:"a" ion:"a"`
	}

	length struct {
		Magnitude float64 `yaml:"magnitude" ion:"magnitude"`
		Unit      string  `yaml:"unit" ion:"unit"`
	}
)

func newDocument(source string, sheet *css.Stylesheet) *document {
	doc := &document{Source: source, Rules: make([]rule, 0, len(sheet.Rules))}
	for _, r := range sheet.Rules {
		out := rule{
			Selectors:    make([]selector, 0, len(r.Selectors)),
			Declarations: make([]declaration, 0, len(r.Declarations)),
		}
		for _, sel := range r.Selectors {
			out.Selectors = append(out.Selectors, newSelector(sel))
		}
		for _, d := range r.Declarations {
			out.Declarations = append(out.Declarations, newDeclaration(d))
		}
		doc.Rules = append(doc.Rules, out)
	}
	return doc
}

func newSelector(sel css.Selector) selector {
	spec := sel.Specificity()
	out := selector{
		Text:        sel.String(),
		Specificity: spec[:],
	}
	// compound selectors are never produced, only the first part matters
	if len(sel.Simple) > 0 {
		simple := sel.Simple[0]
		out.Tag, out.ID, out.Classes = simple.Tag, simple.ID, simple.Classes
	}
	return out
}

func newDeclaration(d css.Declaration) declaration {
	out := declaration{
		Property: d.Property,
		Kind:     d.Value.Kind.String(),
		Value:    d.Value.String(),
		Raw:      d.Value.Raw,
	}
	switch d.Value.Kind {
	case css.KindColor:
		c := d.Value.Color
		out.Color = &color{R: round(c.R), G: round(c.G), B: round(c.B), A: round(c.A)}
	case css.KindLength:
		l := d.Value.Length
		out.Length = &length{Magnitude: round(l.Magnitude), Unit: l.Unit.String()}
	}
	return out
}
