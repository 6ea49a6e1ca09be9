package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"cssp/css"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Parser.FractionalLengths {
		t.Error("FractionalLengths should be off by default")
	}
	if !cfg.Parser.StripComments {
		t.Error("StripComments should be on by default")
	}
	if cfg.Output.Format != OutputFmtText {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("Indent = %d, want 2", cfg.Output.Indent)
	}
	if cfg.Output.NameTemplate != "" {
		t.Errorf("NameTemplate = %q, want empty", cfg.Output.NameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if !strings.HasSuffix(cfg.Reporting.Destination, "cssp-report.zip") {
		t.Errorf("Report destination = %q", cfg.Reporting.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
parser:
  fractional_lengths: true
  strip_comments: false
output:
  format: ion
  slugify_names: true
  ion_binary: true
  indent: 4
  name_template: '{{ .Format }}/{{ .SourceFile | lower }}'
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(t.TempDir(), "test-report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Parser.FractionalLengths || cfg.Parser.StripComments {
		t.Errorf("Parser = %+v", cfg.Parser)
	}
	if cfg.Output.Format != OutputFmtIon {
		t.Errorf("Format = %v, want ion", cfg.Output.Format)
	}
	if !cfg.Output.SlugifyNames || !cfg.Output.IonBinary || cfg.Output.Indent != 4 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	// expanded per output file later, kept as is
	if cfg.Output.NameTemplate != "{{ .Format }}/{{ .SourceFile | lower }}" {
		t.Errorf("NameTemplate = %q", cfg.Output.NameTemplate)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
output:
  format: css
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != OutputFmtCss {
		t.Errorf("Format = %v, want css", cfg.Output.Format)
	}
	// values not present in the file come from the template
	if !cfg.Parser.StripComments {
		t.Error("StripComments should keep default value")
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("Indent = %d, should keep default value", cfg.Output.Indent)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nparser:\n  strip_comments: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown nested field", "version: 1\nparser:\n  selectors: all\n"},
		{"bad version", "version: 2\n"},
		{"bad format", "version: 1\noutput:\n  format: pdf\n"},
		{"bad indent", "version: 1\noutput:\n  indent: 20\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template actions unexpanded")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Format = OutputFmtYaml
	cfg.Parser.FractionalLengths = true

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() should write format by name:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Format != OutputFmtYaml || !cfg2.Parser.FractionalLengths {
		t.Errorf("Dump/load mismatch: %+v", cfg2)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestParserConfig_Options(t *testing.T) {
	conf := ParserConfig{FractionalLengths: true}
	want := css.Options{FractionalLengths: true}
	if got := conf.Options(); got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
}

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		fmt  OutputFmt
		name string
		ext  string
	}{
		{OutputFmtText, "text", ".txt"},
		{OutputFmtYaml, "yaml", ".yaml"},
		{OutputFmtXml, "xml", ".xml"},
		{OutputFmtIon, "ion", ".ion"},
		{OutputFmtCss, "css", ".css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fmt.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.fmt.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			parsed, err := ParseOutputFmt(tt.name)
			if err != nil || parsed != tt.fmt {
				t.Errorf("ParseOutputFmt(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if OutputFmt(99).IsValid() {
		t.Error("OutputFmt(99) should not be valid")
	}
	if got := OutputFmt(99).String(); got != "OutputFmt(99)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := ParseOutputFmt("pdf"); !errors.Is(err, ErrInvalidOutputFmt) {
		t.Errorf("ParseOutputFmt(pdf) error = %v", err)
	}
	if names := OutputFmtNames(); len(names) != 5 || names[0] != "text" || names[4] != "css" {
		t.Errorf("OutputFmtNames() = %v", names)
	}
}

func TestOutputFmt_YAML(t *testing.T) {
	var out OutputConfig
	if err := yaml.Unmarshal([]byte("format: xml\n"), &out); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if out.Format != OutputFmtXml {
		t.Errorf("Format = %v, want xml", out.Format)
	}
	if err := yaml.Unmarshal([]byte("format: docx\n"), &out); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestOutputFmt_Ext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Ext() should panic for invalid format")
		}
	}()
	OutputFmt(99).Ext()
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"main.css", "main.css"},
		{"a" + string(os.PathSeparator) + "b.css", "ab.css"},
		{"bad\x01name.css", "badname.css"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
