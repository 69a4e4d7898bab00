package parser

import "unicode"

// WordChars classifies characters that may appear inside a word. Letters
// always belong to a word; extra characters such as the apostrophe, the
// hyphen or digits are configured per language.
type WordChars struct {
	chars string
	extra map[rune]struct{}
}

// NewWordChars returns a set of letters plus every character of extra.
func NewWordChars(extra string) *WordChars {
	w := &WordChars{chars: extra, extra: make(map[rune]struct{})}
	for _, r := range extra {
		if r == unicode.ReplacementChar {
			continue
		}
		w.extra[r] = struct{}{}
	}
	return w
}

// Contains reports whether r is a word character.
func (w *WordChars) Contains(r rune) bool {
	if r == 0 || r == unicode.ReplacementChar {
		return false
	}
	if unicode.IsLetter(r) {
		return true
	}
	_, ok := w.extra[r]
	return ok
}

func (w *WordChars) String() string {
	return w.chars
}
