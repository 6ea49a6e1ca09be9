package css_test

import (
	"testing"

	"cssp/css"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no comments", "p { color: red; }", "p { color: red; }"},
		{"leading comment", "/* header */p{}", "p{}"},
		{"inside block", "p { /* x */ color: red; }", "p {  color: red; }"},
		{"several", "/*a*/a{}/*b*/b{}", "a{}b{}"},
		{"marker in string", `p { content: "/* not a comment */"; }`, `p { content: "/* not a comment */"; }`},
		{"unterminated", "p{} /* open", "p{} "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := css.StripComments(tt.input); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
