package css_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cssp/css"
)

func TestStylesheet_String(t *testing.T) {
	sheet := css.ParseStylesheet(`DIV#Main.A.b, p { color: RED; width: 10PX; display: block } .x{}`)

	want := "div#main.a.b, p {\n" +
		"  color: #ff0000;\n" +
		"  width: 10px;\n" +
		"  display: block;\n" +
		"}\n" +
		"\n" +
		".x {\n" +
		"}\n"

	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_WriteToEmpty(t *testing.T) {
	var sb strings.Builder
	n, err := (&css.Stylesheet{}).WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != 0 || sb.Len() != 0 {
		t.Errorf("WriteTo() wrote %d bytes: %q", n, sb.String())
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestStylesheet_WriteToError(t *testing.T) {
	sheet := css.ParseStylesheet(`p{color:red} a{width:1px}`)
	for after := range 4 {
		if _, err := sheet.WriteTo(&failingWriter{after: after}); err == nil {
			t.Errorf("after %d writes: expected error", after)
		}
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		value css.Value
		want  string
	}{
		{css.ColorValue(css.Color{R: 1, G: 0.5, B: 0, A: 1}, "x"), "#ff8000"},
		{css.LengthValue(css.Length{Magnitude: 1.5, Unit: css.UnitEm}, "x"), "1.5em"},
		{css.LengthValue(css.Length{Magnitude: 50, Unit: css.UnitPercent}, "x"), "50%"},
		{css.OtherValue("inline-block"), "inline-block"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSpecificity(t *testing.T) {
	sheet := css.ParseStylesheet(`p{} .a.b{} div#x.y{} #a#b{} *{}`)
	want := []css.Specificity{{0, 0, 1}, {0, 2, 0}, {1, 1, 1}, {0, 0, 0}, {0, 0, 0}}

	if len(sheet.Rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(sheet.Rules))
	}
	for i, w := range want {
		var got css.Specificity
		for _, sel := range sheet.Rules[i].Selectors {
			got = sel.Specificity()
		}
		if got != w {
			t.Errorf("rule %d: specificity %v, want %v", i, got, w)
		}
	}

	if !(css.Specificity{0, 2, 0}).Less(css.Specificity{1, 0, 0}) {
		t.Error("expected class specificity to be less than id specificity")
	}
	if (css.Specificity{0, 1, 1}).Less(css.Specificity{0, 1, 1}) {
		t.Error("equal specificities must not be less")
	}
}

// generatedSheet builds CSS text from supported constructs only.
func generatedSheet(seed int) (string, int, []int) {
	tags := []string{"div", "p", "span", "h1", "section"}
	props := []struct{ name, value string }{
		{"color", "#12ab3f"},
		{"background-color", "navy"},
		{"border-color", "#f0a"},
		{"width", "120px"},
		{"height", "50%"},
		{"margin-left", "2em"},
		{"padding-top", "3pt"},
		{"border-top-width", "1px"},
		{"display", "block"},
	}

	var sb strings.Builder
	rules := 3 + seed%4
	counts := make([]int, 0, rules)
	for r := range rules {
		tag := tags[(seed+r)%len(tags)]
		fmt.Fprintf(&sb, "%s#id%d.c%d, .k%d {\n", tag, r, seed, r)
		n := 1 + (seed+r)%len(props)
		for d := range n {
			p := props[(seed*7+r+d)%len(props)]
			fmt.Fprintf(&sb, "  %s: %s;\n", p.name, p.value)
		}
		sb.WriteString("}\n\n")
		counts = append(counts, n)
	}
	return sb.String(), rules, counts
}

func sameValue(a, b css.Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case css.KindColor:
		return a.Color.Hex() == b.Color.Hex()
	case css.KindLength:
		return a.Length == b.Length
	default:
		return a.Raw == b.Raw
	}
}

func TestStylesheet_RoundTrip(t *testing.T) {
	for seed := range 12 {
		text, rules, counts := generatedSheet(seed)

		first := css.ParseStylesheet(text)
		if len(first.Rules) != rules {
			t.Fatalf("seed %d: expected %d rules, got %d", seed, rules, len(first.Rules))
		}
		for i, n := range counts {
			if len(first.Rules[i].Declarations) != n {
				t.Errorf("seed %d rule %d: expected %d declarations, got %d", seed, i, n, len(first.Rules[i].Declarations))
			}
			if len(first.Rules[i].Selectors) != 2 {
				t.Errorf("seed %d rule %d: expected 2 selectors, got %d", seed, i, len(first.Rules[i].Selectors))
			}
		}

		second := css.ParseStylesheet(first.String())
		if len(second.Rules) != len(first.Rules) {
			t.Fatalf("seed %d: reparse produced %d rules, want %d", seed, len(second.Rules), len(first.Rules))
		}
		for i := range first.Rules {
			a, b := first.Rules[i], second.Rules[i]
			if a.SelectorText() != b.SelectorText() {
				t.Errorf("seed %d rule %d: selectors %q vs %q", seed, i, a.SelectorText(), b.SelectorText())
			}
			if len(a.Declarations) != len(b.Declarations) {
				t.Fatalf("seed %d rule %d: %d vs %d declarations", seed, i, len(a.Declarations), len(b.Declarations))
			}
			for j := range a.Declarations {
				if a.Declarations[j].Property != b.Declarations[j].Property || !sameValue(a.Declarations[j].Value, b.Declarations[j].Value) {
					t.Errorf("seed %d rule %d decl %d: %+v vs %+v", seed, i, j, a.Declarations[j], b.Declarations[j])
				}
			}
		}
	}
}
