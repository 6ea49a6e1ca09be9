package css

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes the stylesheet to w as CSS text in source order, implementing
// io.WriterTo. Rules without selectors are written with an empty selector
// group.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.SelectorText())
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// SelectorText renders the selector group, e.g. "div#main.wide, p".
func (r Rule) SelectorText() string {
	parts := make([]string, 0, len(r.Selectors))
	for _, sel := range r.Selectors {
		parts = append(parts, sel.String())
	}
	return strings.Join(parts, ", ")
}

func (s Selector) String() string {
	parts := make([]string, 0, len(s.Simple))
	for _, simple := range s.Simple {
		parts = append(parts, simple.String())
	}
	return strings.Join(parts, " ")
}

func (s SimpleSelector) String() string {
	var sb strings.Builder
	sb.WriteString(s.Tag)
	if s.HasID {
		sb.WriteByte('#')
		sb.WriteString(s.ID)
	}
	for _, class := range s.Classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	return sb.String()
}

// String renders the value as CSS text. Colors are always written in hex
// notation.
func (v Value) String() string {
	switch v.Kind {
	case KindColor:
		return v.Color.Hex()
	case KindLength:
		return v.Length.String()
	default:
		return v.Raw
	}
}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Magnitude), 'f', -1, 32) + l.Unit.String()
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
