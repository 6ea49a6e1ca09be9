package css

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor reads runes from the input with a single rune of lookahead. Input
// exhaustion is not an error, peek and next simply report false.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// peekIs reports whether the next rune satisfies pred, false at the end of input.
func (c *cursor) peekIs(pred func(rune) bool) bool {
	r, ok := c.peek()
	return ok && pred(r)
}

func (c *cursor) next() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	// invalid bytes decode as RuneError of size 1, so we always advance
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// consumeWhile consumes the longest prefix of runes satisfying pred and
// returns a copy of it.
func (c *cursor) consumeWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for {
		r, ok := c.peek()
		if !ok || !pred(r) {
			break
		}
		c.next()
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *cursor) skipWhitespace() {
	c.consumeWhile(unicode.IsSpace)
}
