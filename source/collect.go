package source

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"cssp/archive"
)

// MaxEntrySize limits stylesheet and markup documents read from archives.
const MaxEntrySize = 64 << 20

// Sheet is a single stylesheet found in the source.
type Sheet struct {
	// Path is relative to the source root and always includes file name. For
	// a single file it is just its base name.
	Path string
	// Index is 1 based position of stylesheet embedded in markup document, 0
	// for standalone stylesheets.
	Index int
	Text  string
}

// Name identifies stylesheet in logs and reports.
func (s Sheet) Name() string {
	if s.Index == 0 {
		return s.Path
	}
	return s.Path + "#" + strconv.Itoa(s.Index)
}

// Collector gathers stylesheets from files, directories and archives.
type Collector struct {
	log *zap.Logger
	// forced character set, used for stylesheets which are not valid UTF-8
	// and for non UTF-8 file names in archives
	enc encoding.Encoding

	root   string
	sheets []Sheet
	errs   error
}

func NewCollector(log *zap.Logger, enc encoding.Encoding) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{log: log.Named("source"), enc: enc}
}

// Collect resolves src which could be a file, a directory or a path inside
// zip archive ("styles.zip/theme/main.css") and returns stylesheets found
// ordered by path. Problems with individual files do not stop collection,
// they are combined in returned error together with partial result.
func (c *Collector) Collect(ctx context.Context, src string) ([]Sheet, error) {
	c.root, c.sheets, c.errs = "", nil, nil

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := c.collectDir(ctx, head); err != nil {
				return nil, fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		kind, err := DetectFile(head)
		if err != nil {
			return nil, fmt.Errorf("unable to check file type: %w", err)
		}
		if kind == KindArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := c.collectArchive(ctx, head, tail, ""); err != nil {
				return nil, fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}
		if kind != KindUnknown && len(tail) == 0 {
			data, err := os.ReadFile(head)
			if err != nil {
				return nil, err
			}
			if err := c.add(kind, filepath.Base(head), data); err != nil {
				return nil, err
			}
			break
		}
		return nil, fmt.Errorf("input was not recognized as stylesheet, markup or archive (%s)", head)
	}
	if len(head) == 0 {
		return nil, fmt.Errorf("input source was not found (%s)", src)
	}
	c.root = head

	// results do not depend on directory listing and archive order
	sort.SliceStable(c.sheets, func(i, j int) bool {
		if c.sheets[i].Path != c.sheets[j].Path {
			return natural.Less(c.sheets[i].Path, c.sheets[j].Path)
		}
		return c.sheets[i].Index < c.sheets[j].Index
	})
	return c.sheets, c.errs
}

// Root returns file system part of the last collected source: the file, the
// directory or the archive holding requested path.
func (c *Collector) Root() string {
	return c.root
}

// collectDir walks directory tree looking for stylesheets, markup documents
// and archives.
func (c *Collector) collectDir(ctx context.Context, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			c.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		kind, err := DetectFile(path)
		if err != nil {
			c.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		switch kind {
		case KindUnknown:
			c.log.Debug("Skipping file, not recognized", zap.String("file", path))
		case KindArchive:
			if err := c.collectArchive(ctx, path, "", filepath.Dir(rel)); err != nil {
				c.fail(fmt.Errorf("archive %s: %w", path, err))
			}
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				c.fail(err)
				return nil
			}
			if err := c.add(kind, rel, data); err != nil {
				c.fail(err)
			}
		}
		return nil
	})
}

// collectArchive walks all files inside archive under "pathIn" placing them
// under "pathOut".
func (c *Collector) collectArchive(ctx context.Context, path, pathIn, pathOut string) error {
	count := 0
	err := archive.Walk(ctx, path, pathIn, func(arc string, f *zip.File) error {
		name := c.entryName(f)
		kind := KindByName(name)
		if kind == KindUnknown {
			c.log.Debug("Skipping file in archive, not recognized", zap.String("archive", arc), zap.String("file", name))
			return nil
		}
		count++

		data, err := archive.ReadFile(f, MaxEntrySize)
		if err != nil {
			c.fail(fmt.Errorf("%s: %w", arc, err))
			return nil
		}
		if err := c.add(kind, filepath.Join(pathOut, filepath.FromSlash(name)), data); err != nil {
			c.fail(fmt.Errorf("%s: %w", arc, err))
		}
		return nil
	})
	if err == nil && count == 0 {
		c.log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
	}
	return err
}

// entryName decodes archive entry name using forced character set when zip
// header says name is not UTF-8.
func (c *Collector) entryName(f *zip.File) string {
	name := f.FileHeader.Name
	if c.enc == nil || !f.FileHeader.NonUTF8 {
		return name
	}
	n, err := c.enc.NewDecoder().String(name)
	if err != nil {
		c.log.Warn("Unable to convert archive name from specified encoding", zap.String("path", name), zap.Error(err))
		return name
	}
	return n
}

func (c *Collector) add(kind Kind, path string, data []byte) error {
	switch kind {
	case KindStylesheet:
		text, err := Decode(data, c.enc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		c.sheets = append(c.sheets, Sheet{Path: path, Text: text})
	case KindMarkup:
		styles, err := ExtractStyles(c.markupReader(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(styles) == 0 {
			c.log.Debug("No embedded stylesheets", zap.String("file", path))
		}
		for i, text := range styles {
			c.sheets = append(c.sheets, Sheet{Path: path, Index: i + 1, Text: text})
		}
	}
	return nil
}

// markupReader applies forced character set to markup which is not UTF-8 and
// does not declare its encoding.
func (c *Collector) markupReader(data []byte) io.Reader {
	r := bytes.NewReader(data)
	if c.enc == nil || utf8.Valid(data) || xmlEncoding.Match(data) {
		return r
	}
	return c.enc.NewDecoder().Reader(r)
}

func (c *Collector) fail(err error) {
	c.log.Error("Unable to process file", zap.Error(err))
	c.errs = multierr.Append(c.errs, err)
}
