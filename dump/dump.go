// Package dump renders parsed stylesheets in one of supported output formats.
package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/beevik/etree"
	yaml "gopkg.in/yaml.v3"

	"cssp/config"
	"cssp/css"
)

// Options control rendering details.
type Options struct {
	// Source names stylesheet origin, it is recorded in the output when not empty.
	Source string
	// Indent is number of spaces per nesting level for text, yaml and xml.
	Indent int
	// IonBinary switches ion output from text to binary encoding.
	IonBinary bool
}

// OptionsFrom builds rendering options from output configuration.
func OptionsFrom(conf *config.OutputConfig, source string) Options {
	return Options{Source: source, Indent: conf.Indent, IonBinary: conf.IonBinary}
}

// Write renders sheet to w in requested format.
func Write(w io.Writer, sheet *css.Stylesheet, format config.OutputFmt, opts Options) error {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	var err error
	switch format {
	case config.OutputFmtText:
		_, err = io.WriteString(w, Text(sheet, opts))
	case config.OutputFmtYaml:
		err = writeYAML(w, sheet, opts)
	case config.OutputFmtXml:
		err = writeXML(w, sheet, opts)
	case config.OutputFmtIon:
		err = writeIon(w, sheet, opts)
	case config.OutputFmtCss:
		_, err = sheet.WriteTo(w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("unable to write %s output: %w", format, err)
	}
	return nil
}

// Text returns human readable tree of the stylesheet.
func Text(sheet *css.Stylesheet, opts Options) string {
	tw := newTreeWriter(opts.Indent)
	if len(opts.Source) > 0 {
		tw.textBlock(0, "source", opts.Source)
	}
	tw.line(0, "stylesheet: %d rule(s)", len(sheet.Rules))
	for i, r := range sheet.Rules {
		tw.line(1, "rule #%d", i+1)
		tw.line(2, "selectors: %d", len(r.Selectors))
		for _, sel := range r.Selectors {
			spec := sel.Specificity()
			tw.line(3, "%s [specificity %d,%d,%d]", sel, spec[0], spec[1], spec[2])
		}
		tw.line(2, "declarations: %d", len(r.Declarations))
		for _, d := range r.Declarations {
			tw.line(3, "%s: %s (%s)", d.Property, d.Value, d.Value.Kind)
			if d.Value.Kind != css.KindOther {
				tw.textBlock(4, "raw", d.Value.Raw)
			}
		}
	}
	return tw.String()
}

func writeYAML(w io.Writer, sheet *css.Stylesheet, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(newDocument(opts.Source, sheet)); err != nil {
		return err
	}
	return enc.Close()
}

func writeIon(w io.Writer, sheet *css.Stylesheet, opts Options) error {
	marshal := ion.MarshalText
	if opts.IonBinary {
		marshal = func(v any) ([]byte, error) { return ion.MarshalBinary(v) }
	}
	data, err := marshal(newDocument(opts.Source, sheet))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeXML(w io.Writer, sheet *css.Stylesheet, opts Options) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("stylesheet")
	if len(opts.Source) > 0 {
		root.CreateAttr("source", opts.Source)
	}
	for _, r := range sheet.Rules {
		re := root.CreateElement("rule")
		for _, sel := range r.Selectors {
			spec := sel.Specificity()
			se := re.CreateElement("selector")
			se.CreateAttr("specificity", fmt.Sprintf("%d,%d,%d", spec[0], spec[1], spec[2]))
			if len(sel.Simple) > 0 {
				simple := sel.Simple[0]
				if len(simple.Tag) > 0 {
					se.CreateAttr("tag", simple.Tag)
				}
				if simple.HasID {
					se.CreateAttr("id", simple.ID)
				}
				if len(simple.Classes) > 0 {
					se.CreateAttr("class", strings.Join(simple.Classes, " "))
				}
			}
			se.SetText(sel.String())
		}
		for _, d := range r.Declarations {
			de := re.CreateElement("declaration")
			de.CreateAttr("property", d.Property)
			de.CreateAttr("kind", d.Value.Kind.String())
			if d.Value.Kind != css.KindOther {
				de.CreateAttr("raw", d.Value.Raw)
			}
			de.SetText(d.Value.String())
		}
	}

	doc.Indent(opts.Indent)
	_, err := doc.WriteTo(w)
	return err
}

// round drops float32 representation noise: 0.5019608 instead of
// 0.501960813999176.
func round(v float32) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', -1, 32), 64)
	return f
}
