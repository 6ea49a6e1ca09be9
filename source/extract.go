package source

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// styleTags are elements carrying stylesheets: HTML <style> and FictionBook
// <stylesheet>.
var styleTags = map[string]bool{
	"style":      true,
	"stylesheet": true,
}

// ExtractStyles reads markup document and returns text of every embedded CSS
// stylesheet in document order. Elements with "type" attribute other than
// text/css are skipped.
func ExtractStyles(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		// real world HTML is rarely well formed XML
		Permissive: true,
		AutoClose:  xml.HTMLAutoClose,
		Entity:     xml.HTMLEntity,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read markup: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	var styles []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if styleTags[strings.ToLower(child.Tag)] {
				if isCSS(child) {
					styles = append(styles, elementText(child))
				}
				continue
			}
			walk(child)
		}
	}
	walk(&doc.Element)
	return styles, nil
}

func isCSS(el *etree.Element) bool {
	typ := strings.TrimSpace(el.SelectAttrValue("type", ""))
	return typ == "" || strings.EqualFold(typ, "text/css")
}

// elementText concatenates all character data including CDATA sections.
func elementText(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}
