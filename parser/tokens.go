package parser

// Token is a word found in a document.
type Token struct {
	// Text is the word as written in the document, entities included.
	Text string
	// Line is the 1-based line number.
	Line int
	// Offset is the byte offset of the word in its line.
	Offset int
}

// Word returns the token text with its entities decoded.
func (t Token) Word() string {
	return UnescapeToken(t.Text)
}

// Misspelling is a token rejected by a Checker.
type Misspelling struct {
	Token
	Suggestions []string
}
