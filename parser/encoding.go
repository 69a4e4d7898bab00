package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Encoding decodes one logical character of a line. A Buffer picks one
// encoding when it is created and never changes it.
type Encoding interface {
	Name() string
	// DecodeRune returns the character at the start of s and its width in
	// bytes. Undecodable input yields utf8.RuneError with a width of 1.
	DecodeRune(s string) (rune, int)
	UTF8() bool
}

// UTF8 is the multi-byte encoding.
var UTF8 Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) Name() string { return "UTF-8" }

func (utf8Encoding) DecodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

func (utf8Encoding) UTF8() bool { return true }

// legacyEncoding is a single byte character set decoded through a lookup
// table.
type legacyEncoding struct {
	name string
	cm   *charmap.Charmap
}

func (e legacyEncoding) Name() string { return e.name }

func (e legacyEncoding) DecodeRune(s string) (rune, int) {
	if s == "" {
		return utf8.RuneError, 0
	}
	return e.cm.DecodeByte(s[0]), 1
}

func (e legacyEncoding) UTF8() bool { return false }

// LegacyEncoding wraps a single byte charmap.
func LegacyEncoding(cm *charmap.Charmap) Encoding {
	return legacyEncoding{name: cm.String(), cm: cm}
}

var encodingAliases = map[string]string{
	"latin1":          "iso88591",
	"latin2":          "iso88592",
	"cp1250":          "windows1250",
	"cp1251":          "windows1251",
	"cp1252":          "windows1252",
	"microsoftcp1251": "windows1251",
}

// LookupEncoding resolves an encoding by name. Names are compared without
// case, spaces, dashes or underscores, so "ISO8859-2", "iso-8859-2" and
// "ISO 8859-2" are the same encoding.
func LookupEncoding(name string) (Encoding, error) {
	key := normalizeEncodingName(name)
	if alias, ok := encodingAliases[key]; ok {
		key = alias
	}
	if key == "utf8" {
		return UTF8, nil
	}
	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		if normalizeEncodingName(cm.String()) == key {
			return LegacyEncoding(cm), nil
		}
	}
	return nil, errors.Errorf("unsupported encoding %q", name)
}

func normalizeEncodingName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
