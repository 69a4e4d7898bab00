package parser

import (
	"html"
	"strings"
)

// ampPlaceholder stands in for '&' while it is escaped, so the ampersands of
// the entities written afterwards are never escaped a second time.
const ampPlaceholder = "\x00namp;\x00"

// escapeSteps run in order. '&' goes first; moving it later would escape the
// entities produced by the other steps.
var escapeSteps = []struct{ old, new string }{
	{"&", ampPlaceholder},
	{ampPlaceholder, "&amp;"},
	{"'", entityApos},
	{`"`, "&quot;"},
	{">", "&gt;"},
	{"<", "&lt;"},
}

// EscapeToken rewrites the characters of word that are significant in markup
// as entities. A word without such characters is returned as is.
//
// EscapeToken is not idempotent: escaping an escaped word escapes the
// ampersands of its entities again.
func EscapeToken(word string) string {
	if !strings.ContainsAny(word, `'"&<>`) {
		return word
	}
	for _, s := range escapeSteps {
		word = strings.ReplaceAll(word, s.old, s.new)
	}
	return word
}

// UnescapeToken decodes the entities of a token as returned by NextToken, so
// "don&apos;t" reads "don't" and "caf&eacute;" reads "café".
func UnescapeToken(token string) string {
	if !strings.Contains(token, "&") {
		return token
	}
	return html.UnescapeString(token)
}
