package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	conf := ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r
}

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Contents(t *testing.T) {
	r := newTestReport(t)

	src := filepath.Join(t.TempDir(), "main.css")
	if err := os.WriteFile(src, []byte("p { color: red }"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	r.Store("source-10", src)
	r.Store("source-9", src)
	r.StoreData("config.yaml", []byte("version: 1\n"))
	if err := r.StoreCopy("input", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	name := r.Name()

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readReport(t, name)
	for _, want := range []string{"MANIFEST", "source-9", "source-10", "config.yaml", "input"} {
		if _, ok := files[want]; !ok {
			t.Errorf("report is missing %q, has %v", want, files)
		}
	}
	if files["config.yaml"] != "version: 1\n" {
		t.Errorf("config.yaml = %q", files["config.yaml"])
	}
	if files["input"] != "p { color: red }" {
		t.Errorf("input = %q", files["input"])
	}

	manifest := files["MANIFEST"]
	if i, j := strings.Index(manifest, "source-9"), strings.Index(manifest, "source-10"); i < 0 || j < 0 || i > j {
		t.Errorf("manifest is not in natural order:\n%s", manifest)
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	r := newTestReport(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "debug.txt"), []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if err := r.StoreCopy("workdir", dir); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	scratch := r.entries["workdir"].scratch
	if scratch == "" {
		t.Fatal("StoreCopy() did not record temporary copy")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		os.RemoveAll(scratch)
		t.Errorf("expected temporary copy to be removed")
	}
	// original is left alone
	if _, err := os.Stat(filepath.Join(dir, "debug.txt")); err != nil {
		t.Errorf("original should not be removed: %v", err)
	}
}

func TestReport_StoreCopySnapshot(t *testing.T) {
	r := newTestReport(t)

	dir := filepath.Join(t.TempDir(), "styles")
	if err := os.MkdirAll(filepath.Join(dir, "theme"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	file := filepath.Join(dir, "theme", "main.css")
	if err := os.WriteFile(file, []byte("p{}"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	if err := r.StoreCopy("input/styles", dir); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("input/styles", dir); err != nil {
		t.Fatalf("second StoreCopy() error = %v", err)
	}
	if len(r.entries) != 2 {
		t.Errorf("expected versioned second copy, have %d entries", len(r.entries))
	}

	// later changes must not reach the report
	if err := os.WriteFile(file, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to rewrite source: %v", err)
	}
	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readReport(t, name)
	if got, ok := files["input/styles/theme/main.css"]; !ok || got != "p{}" {
		t.Errorf("input/styles/theme/main.css = %q (present %v), report has %v", got, ok, files)
	}
	if !strings.Contains(files["MANIFEST"], "input/styles\t") {
		t.Errorf("manifest does not list copy:\n%s", files["MANIFEST"])
	}
}

func TestReport_StoreCopyMissing(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	if err := r.StoreCopy("missing", filepath.Join(t.TempDir(), "absent.css")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	r.StoreData("data", []byte("a"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate data entry")
		}
	}()
	r.StoreData("data", []byte("b"))
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// all methods are safe on nil report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("Name on nil report should be empty")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
