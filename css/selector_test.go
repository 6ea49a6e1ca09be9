package css

import (
	"testing"
)

func TestSelectorBuilder_IDConflict(t *testing.T) {
	var b selectorBuilder
	b.addID("a")
	if !b.sel.HasID || b.sel.ID != "a" {
		t.Fatalf("first id not set: %+v", b.sel)
	}
	b.addID("b")
	if b.sel.HasID || b.sel.ID != "" || !b.idConflict {
		t.Fatalf("second id did not poison: %+v conflict=%v", b.sel, b.idConflict)
	}
	b.addID("c")
	if b.sel.HasID {
		t.Errorf("poisoned selector got id back: %+v", b.sel)
	}
}

func TestSelectorBuilder_EmptyFirstID(t *testing.T) {
	var b selectorBuilder
	b.addID("")
	if b.sel.HasID || b.idConflict {
		t.Errorf("empty id changed state: %+v conflict=%v", b.sel, b.idConflict)
	}
	b.addID("x")
	if !b.sel.HasID || b.sel.ID != "x" {
		t.Errorf("id after empty id not set: %+v", b.sel)
	}
}

func TestIdentifierRunes(t *testing.T) {
	tests := []struct {
		r            rune
		start, inner bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{'é', true, true},
		{0x80, true, true},
		{'7', false, true},
		{'-', false, true},
		{'#', false, false},
		{'.', false, false},
		{' ', false, false},
	}
	for _, tt := range tests {
		if got := isIdentStart(tt.r); got != tt.start {
			t.Errorf("isIdentStart(%q) = %v, want %v", tt.r, got, tt.start)
		}
		if got := isIdentChar(tt.r); got != tt.inner {
			t.Errorf("isIdentChar(%q) = %v, want %v", tt.r, got, tt.inner)
		}
	}
}
