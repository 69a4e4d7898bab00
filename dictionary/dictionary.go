// Package dictionary is a word list checker with a replacement table. It is
// a small stand-in for a full morphological spelling engine.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Dictionary accepts the words of its word list. Capitalised and upper case
// forms of a listed word are accepted too.
type Dictionary struct {
	words        map[string]struct{}
	replacements map[string]string
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		words:        make(map[string]struct{}),
		replacements: make(map[string]string),
	}
}

// Add adds words to the dictionary.
func (d *Dictionary) Add(words ...string) {
	for _, w := range words {
		if w != "" {
			d.words[w] = struct{}{}
		}
	}
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// ReadWords adds the words of r, one per line. Blank lines and lines
// starting with '#' are ignored.
func (d *Dictionary) ReadWords(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.Add(line)
	}
	return errors.Wrap(s.Err(), "reading word list")
}

// ReadReplacements loads a YAML mapping from misspelled words to their
// replacement. Listed replacements are added as words.
func (d *Dictionary) ReadReplacements(r io.Reader) error {
	var table map[string]string
	if err := yaml.NewDecoder(r).Decode(&table); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding replacement table")
	}
	for wrong, right := range table {
		d.replacements[wrong] = right
		d.Add(right)
	}
	return nil
}

// LoadFile reads a word list file.
func (d *Dictionary) LoadFile(path string) error {
	return withFile(path, d.ReadWords)
}

// LoadReplacementsFile reads a YAML replacement table file.
func (d *Dictionary) LoadReplacementsFile(path string) error {
	return withFile(path, d.ReadReplacements)
}

func withFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return errors.Wrapf(read(f), "loading %s", path)
}

// Check reports whether word is in the dictionary.
func (d *Dictionary) Check(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := d.words[word]; ok {
		return true
	}
	for _, form := range caseForms(word) {
		if _, ok := d.words[form]; ok {
			return true
		}
	}
	return false
}

// Suggest returns the replacement of word, keeping a leading capital.
func (d *Dictionary) Suggest(word string) []string {
	if r, ok := d.replacements[word]; ok {
		return []string{r}
	}
	for _, form := range caseForms(word) {
		if r, ok := d.replacements[form]; ok {
			return []string{capitalize(r)}
		}
	}
	return nil
}

// caseForms returns the lower case spellings a capitalised or upper case
// word may be listed under.
func caseForms(word string) []string {
	first, size := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return nil
	}
	forms := []string{string(unicode.ToLower(first)) + word[size:]}
	if lower := strings.ToLower(word); lower != forms[0] {
		forms = append(forms, lower)
	}
	return forms
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
