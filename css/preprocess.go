package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StripComments removes /* ... */ comments from CSS text leaving everything
// else byte for byte. Comment markers inside strings are not comments and are
// kept. An unterminated comment runs to the end of input.
func StripComments(text string) string {
	if !strings.Contains(text, "/*") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	lexer := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return sb.String()
		case css.CommentToken:
			continue
		default:
			sb.Write(data)
		}
	}
}
