package parser

import "strings"

// Pattern is a pair of delimiters around a markup construct.
type Pattern struct {
	Open  string
	Close string
}

// PatternTable is an ordered list of patterns. Order is priority: the first
// entry that matches wins, so longer forms must come before their prefixes.
type PatternTable []Pattern

type column uint

const (
	openColumn column = iota
	closeColumn
)

const noMatch = -1

// index of the generic tag form in MarkupPatterns.
const genericTagPattern = 2

// MarkupPatterns are the constructs skipped by the tokenizer: comments,
// CDATA sections and plain tags.
var MarkupPatterns = NewPatternTable(
	Pattern{"<!--", "-->"},
	Pattern{"<![CDATA[", "]]>"},
	Pattern{"<", ">"},
)

// ImageAltPatterns marks the alt attribute of img tags for inspection, so the
// image description is checked like body text.
var ImageAltPatterns = NewPatternTable(
	Pattern{"<img", "alt="},
)

// NewPatternTable builds a table from the given patterns. Delimiters are
// lowercased since matching folds the input to lower case.
func NewPatternTable(patterns ...Pattern) PatternTable {
	t := make(PatternTable, 0, len(patterns))
	for _, p := range patterns {
		t = append(t, Pattern{
			Open:  strings.ToLower(p.Open),
			Close: strings.ToLower(p.Close),
		})
	}
	return t
}

func (p Pattern) delimiter(c column) string {
	if c == closeColumn {
		return p.Close
	}
	return p.Open
}

// lookPattern returns the index of the first entry of table whose delimiter
// in column c starts at line[pos:], or noMatch. The input is ASCII folded to
// lower case before comparison. Nothing is consumed.
func lookPattern(line string, pos int, table PatternTable, c column) int {
	for i := range table {
		if hasLowerPrefix(line, pos, table[i].delimiter(c)) {
			return i
		}
	}
	return noMatch
}

func hasLowerPrefix(line string, pos int, prefix string) bool {
	if pos < 0 || pos > len(line) || len(line)-pos < len(prefix) {
		return false
	}
	for k := 0; k < len(prefix); k++ {
		if toLowerASCII(line[pos+k]) != prefix[k] {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
