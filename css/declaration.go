package css

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// parseDeclarationBlock consumes "property: value;" pairs including the
// terminating '}'. A missing semicolon is tolerated on the last declaration
// only, any other unterminated declaration is dropped.
func (sp *sheetParser) parseDeclarationBlock() []Declaration {
	declarations := make([]Declaration, 0)

	for sp.cur.peekIs(func(r rune) bool { return r != '}' }) {
		sp.cur.skipWhitespace()
		if sp.cur.eof() || sp.cur.peekIs(func(r rune) bool { return r == '}' }) {
			break
		}

		property := strings.ToLower(sp.cur.consumeWhile(func(r rune) bool {
			return r != ':' && r != ';' && r != '}'
		}))
		if !sp.cur.peekIs(func(r rune) bool { return r == ':' }) {
			// no value at all, drop what we have and resync on ';' or '}'
			sp.log.Debug("Declaration without value dropped", zap.String("text", strings.TrimSpace(property)))
			if sp.cur.peekIs(func(r rune) bool { return r == ';' }) {
				sp.cur.next()
			}
			continue
		}
		property = strings.TrimRightFunc(property, unicode.IsSpace)
		sp.cur.next()
		sp.cur.skipWhitespace()

		raw := strings.ToLower(sp.cur.consumeWhile(func(r rune) bool {
			return r != ';' && r != '\n' && r != '}'
		}))
		raw = strings.TrimRightFunc(raw, unicode.IsSpace)

		decl := Declaration{
			Property: property,
			Value:    sp.translate(LookupProperty(property), raw),
		}

		if sp.cur.peekIs(func(r rune) bool { return r == ';' }) {
			declarations = append(declarations, decl)
			sp.cur.next()
		} else {
			sp.cur.skipWhitespace()
			if sp.cur.peekIs(func(r rune) bool { return r == '}' }) {
				declarations = append(declarations, decl)
			} else {
				sp.log.Debug("Unterminated declaration dropped", zap.String("property", property), zap.String("value", raw))
			}
		}
		sp.cur.skipWhitespace()
	}

	sp.cur.next()
	return declarations
}
