package css

import (
	"go.uber.org/zap"
)

// Options tune value translation and input preparation.
type Options struct {
	// FractionalLengths parses "1.5em" as 1.5em. When false the number stops
	// at the first non-digit and "1.5em" becomes 1px, which is how the
	// stylesheets this parser was built for have always been read.
	FractionalLengths bool
	// StripComments removes /* ... */ comments before parsing.
	StripComments bool
}

// DefaultOptions returns options compatible with historical behavior.
func DefaultOptions() Options {
	return Options{}
}

// Parser parses CSS stylesheets into rules. It is never modified after
// creation and may be shared.
type Parser struct {
	log  *zap.Logger
	opts Options
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, opts Options) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser"), opts: opts}
}

// ParseStylesheet parses text with default options and no diagnostics.
func ParseStylesheet(text string) *Stylesheet {
	return NewParser(nil, DefaultOptions()).Parse(text)
}

// Parse parses CSS text into a Stylesheet. It never fails: malformed input is
// skipped or degraded to default values. The optional source parameter
// identifies what's being parsed (for debug logging).
func (p *Parser) Parse(text string, source ...string) *Stylesheet {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(text)))
	}
	if p.opts.StripComments {
		text = StripComments(text)
	}

	sp := &sheetParser{cur: newCursor(text), log: p.log, opts: p.opts}
	sheet := sp.parseStylesheet()

	p.log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Rules)))
	return sheet
}

// sheetParser holds the state of a single Parse call.
type sheetParser struct {
	cur  *cursor
	log  *zap.Logger
	opts Options
}

func (sp *sheetParser) parseStylesheet() *Stylesheet {
	sheet := &Stylesheet{Rules: make([]Rule, 0)}
	for {
		sp.cur.skipWhitespace()
		if sp.cur.eof() {
			return sheet
		}
		selectors := sp.parseSelectorGroup()
		declarations := sp.parseDeclarationBlock()
		if len(selectors) == 0 {
			sp.log.Debug("Rule without usable selectors", zap.Int("declarations", len(declarations)))
		}
		sheet.Rules = append(sheet.Rules, Rule{Selectors: selectors, Declarations: declarations})
	}
}
