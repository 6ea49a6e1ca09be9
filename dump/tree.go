package dump

import (
	"fmt"
	"strconv"
	"strings"
)

// treeWriter builds indented human readable tree.
type treeWriter struct {
	w      *strings.Builder
	indent string
}

func newTreeWriter(indent int) *treeWriter {
	return &treeWriter{
		w:      &strings.Builder{},
		indent: strings.Repeat(" ", max(indent, 1)),
	}
}

func (tw *treeWriter) String() string {
	return tw.w.String()
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) textBlock(depth int, label, value string) {
	tw.line(depth, "%s: %s", label, quoteText(value))
}

func quoteText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
