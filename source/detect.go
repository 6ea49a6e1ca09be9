// Package source finds stylesheets: standalone CSS files, styles embedded in
// markup documents, and both of those inside directories and zip archives.
package source

import (
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// Kind is a type of input recognized by file name and content.
type Kind int

const (
	KindUnknown Kind = iota
	KindStylesheet
	KindMarkup
	KindArchive
)

func (k Kind) String() string {
	switch k {
	case KindStylesheet:
		return "stylesheet"
	case KindMarkup:
		return "markup"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}

var markupExts = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
	".xml":   true,
	".fb2":   true,
}

// KindByName classifies stylesheet and markup files by extension. Archives
// need a look at the content, see DetectFile.
func KindByName(name string) Kind {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case ext == ".css":
		return KindStylesheet
	case markupExts[ext]:
		return KindMarkup
	default:
		return KindUnknown
	}
}

// DetectFile classifies file on disk.
func DetectFile(name string) (Kind, error) {
	if kind := KindByName(name); kind != KindUnknown {
		return kind, nil
	}
	archive, err := isArchiveFile(name)
	if err != nil {
		return KindUnknown, err
	}
	if archive {
		return KindArchive, nil
	}
	return KindUnknown, nil
}

// isArchiveFile checks that file has proper extension and zip signature.
func isArchiveFile(name string) (bool, error) {
	if !strings.EqualFold(path.Ext(name), ".zip") {
		return false, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs only first 262 bytes
	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(header[:n], "zip"), nil
}
