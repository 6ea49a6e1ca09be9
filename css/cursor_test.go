package css

import (
	"testing"
	"unicode"
)

func TestCursor_PeekNext(t *testing.T) {
	c := newCursor("aé")

	r, ok := c.peek()
	if !ok || r != 'a' {
		t.Fatalf("peek() = %q, %v; want 'a', true", r, ok)
	}
	if r, _ := c.peek(); r != 'a' {
		t.Errorf("second peek() = %q, want 'a'", r)
	}
	if r, ok := c.next(); !ok || r != 'a' {
		t.Errorf("next() = %q, %v; want 'a', true", r, ok)
	}
	if r, ok := c.next(); !ok || r != 'é' {
		t.Errorf("next() = %q, %v; want 'é', true", r, ok)
	}
	if !c.eof() {
		t.Error("expected eof")
	}
	if _, ok := c.peek(); ok {
		t.Error("peek() at end reported a rune")
	}
	if _, ok := c.next(); ok {
		t.Error("next() at end reported a rune")
	}
}

func TestCursor_ConsumeWhile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pred  func(rune) bool
		want  string
		rest  string
	}{
		{"prefix", "abc123", unicode.IsLetter, "abc", "123"},
		{"nothing matches", "123", unicode.IsLetter, "", "123"},
		{"everything matches", "abc", unicode.IsLetter, "abc", ""},
		{"empty input", "", unicode.IsLetter, "", ""},
		{"multibyte", "ßø-x", unicode.IsLetter, "ßø", "-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			if got := c.consumeWhile(tt.pred); got != tt.want {
				t.Errorf("consumeWhile() = %q, want %q", got, tt.want)
			}
			if rest := c.input[c.pos:]; rest != tt.rest {
				t.Errorf("remaining input = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestCursor_InvalidUTF8Advances(t *testing.T) {
	c := newCursor("\xff\xfea")
	count := 0
	for !c.eof() {
		c.next()
		count++
		if count > 3 {
			t.Fatal("cursor did not advance")
		}
	}
	if count != 3 {
		t.Errorf("expected 3 runes, got %d", count)
	}
}

func TestCursor_SkipWhitespace(t *testing.T) {
	c := newCursor(" \t\r\n x")
	c.skipWhitespace()
	if r, _ := c.peek(); r != 'x' {
		t.Errorf("peek() after skipWhitespace = %q, want 'x'", r)
	}
}
