package process

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cssp/config"
	"cssp/css"
	"cssp/source"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context      string
	SourceFile   string
	SourceDir    string
	Index        int
	Format       string
	Rules        int
	Declarations int
}

func expandTemplate(name, field string, sheet source.Sheet, parsed *css.Stylesheet, format config.OutputFmt) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    name,
		SourceFile: strings.TrimSuffix(filepath.Base(sheet.Path), filepath.Ext(sheet.Path)),
		SourceDir:  filepath.ToSlash(filepath.Dir(sheet.Path)),
		Index:      sheet.Index,
		Format:     format.String(),
	}
	if parsed != nil {
		values.Rules = len(parsed.Rules)
		for _, rule := range parsed.Rules {
			values.Declarations += len(rule.Declarations)
		}
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
