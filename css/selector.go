package css

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// selectorBuilder accumulates one simple selector. Once idConflict is set the
// id stays absent for the rest of the selector.
type selectorBuilder struct {
	sel        SimpleSelector
	idConflict bool
}

func (b *selectorBuilder) addID(id string) {
	if b.sel.HasID || b.idConflict {
		b.sel.ID, b.sel.HasID = "", false
		b.idConflict = true
		return
	}
	if id == "" {
		return
	}
	b.sel.ID, b.sel.HasID = id, true
}

func (b *selectorBuilder) addClass(class string) {
	if class != "" {
		b.sel.Classes = append(b.sel.Classes, class)
	}
}

// parseSelectorGroup consumes a comma separated selector list including the
// terminating '{'.
func (sp *sheetParser) parseSelectorGroup() []Selector {
	selectors := make([]Selector, 0)
	for sp.cur.peekIs(func(r rune) bool { return r != '{' }) {
		if sel := sp.parseSelector(); len(sel.Simple) > 0 {
			selectors = append(selectors, sel)
		}
		sp.cur.skipWhitespace()
		if sp.cur.peekIs(func(r rune) bool { return r == ',' }) {
			sp.cur.next()
		}
	}
	sp.cur.next()
	return selectors
}

func isSelectorEnd(r rune) bool {
	return r == ',' || r == '{' || unicode.IsSpace(r)
}

func (sp *sheetParser) parseSelector() Selector {
	var b selectorBuilder

	sp.cur.skipWhitespace()
	if sp.cur.peekIs(isIdentStart) {
		b.sel.Tag = sp.parseIdentifier()
	}

	for sp.cur.peekIs(func(r rune) bool { return !isSelectorEnd(r) }) {
		r, _ := sp.cur.peek()
		switch r {
		case '#':
			sp.cur.next()
			id := sp.parseIdentifier()
			b.addID(id)
			if b.idConflict {
				sp.log.Debug("Multiple ids in selector, dropping id", zap.String("id", id))
			}
		case '.':
			sp.cur.next()
			b.addClass(sp.parseIdentifier())
		default:
			skipped := sp.cur.consumeWhile(func(r rune) bool { return r != ',' && r != '{' })
			sp.log.Debug("Unsupported selector syntax ignored", zap.String("text", strings.TrimSpace(skipped)))
		}
	}

	if b.sel.IsZero() {
		return Selector{}
	}
	return Selector{Simple: []SimpleSelector{b.sel}}
}

// parseIdentifier consumes an identifier and returns it lower-cased, or an
// empty string when the next rune cannot start one.
func (sp *sheetParser) parseIdentifier() string {
	if !sp.cur.peekIs(isIdentStart) {
		return ""
	}
	return strings.ToLower(sp.cur.consumeWhile(isIdentChar))
}

func isIdentStart(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_' || r >= 0x80
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9') || r == '-'
}
