package source

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnknownCharset is returned for character sets known by name only.
var ErrUnknownCharset = errors.New("character set is not supported")

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	// must be the very first thing in the stylesheet
	charsetRule = regexp.MustCompile(`^@charset\s+"([^"]+)"\s*;`)
	// XML declaration with encoding, handled by XML reader itself
	xmlEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*encoding\s*=`)
)

// Decode converts raw stylesheet bytes to text. Byte order mark wins, then
// @charset rule, then forced encoding if data is not valid UTF-8. Bytes which
// could not be decoded are passed as is.
func Decode(data []byte, forced encoding.Encoding) (string, error) {
	if rest, ok := bytes.CutPrefix(data, utf8BOM); ok {
		return string(rest), nil
	}

	enc := forced
	if m := charsetRule.FindSubmatch(data); m != nil {
		label := string(m[1])
		declared, err := ianaindex.IANA.Encoding(label)
		if err != nil {
			return "", fmt.Errorf("unsupported @charset %q: %w", label, err)
		}
		if declared == nil {
			return "", fmt.Errorf("@charset %q: %w", label, ErrUnknownCharset)
		}
		enc = declared
	} else if utf8.Valid(data) {
		return string(data), nil
	}

	if enc == nil {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("unable to decode stylesheet: %w", err)
	}
	return string(out), nil
}

// LookupCharset finds encoding by its IANA name.
func LookupCharset(name string) (encoding.Encoding, string, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, "", err
	}
	if enc == nil {
		return nil, "", fmt.Errorf("%s: %w", name, ErrUnknownCharset)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return enc, canonical, nil
}
