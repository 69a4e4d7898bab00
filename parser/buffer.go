package parser

import "strings"

// number of lines kept for PrevLine
const maxPrevLine = 4

// Buffer holds the lines being scanned, the scan cursor and the start of
// the current token. It classifies characters through its Encoding and
// WordChars, and owns the text the tokenizer reports and rewrites.
type Buffer struct {
	lines     [maxPrevLine]string
	actual    int
	head      int
	token     int
	tokenEnd  int
	enc       Encoding
	wordChars *WordChars
	urls      []bool

	// CheckURLs makes words inside URLs, e-mail addresses and paths
	// visible. They are skipped by default.
	CheckURLs bool
}

// NewBuffer returns an empty buffer. A nil enc means UTF-8; a nil wc means
// letters only.
func NewBuffer(enc Encoding, wc *WordChars) *Buffer {
	if enc == nil {
		enc = UTF8
	}
	if wc == nil {
		wc = NewWordChars("")
	}
	return &Buffer{enc: enc, wordChars: wc}
}

// PutLine makes s the current line and moves the cursor to its start.
func (b *Buffer) PutLine(s string) {
	b.actual = (b.actual + 1) % maxPrevLine
	b.lines[b.actual] = s
	b.token = 0
	b.tokenEnd = 0
	b.head = 0
	b.checkURLs()
}

// Line returns the current line, including any changes made by ChangeToken.
func (b *Buffer) Line() string {
	return b.lines[b.actual]
}

// PrevLine returns the line put n lines before the current one.
func (b *Buffer) PrevLine(n int) string {
	if n < 0 || n >= maxPrevLine {
		return ""
	}
	return b.lines[(b.actual+maxPrevLine-n)%maxPrevLine]
}

// TokenPos returns the byte offset of the last token in the current line.
func (b *Buffer) TokenPos() int {
	return b.token
}

// UTF8 reports whether the buffer decodes lines as UTF-8.
func (b *Buffer) UTF8() bool {
	return b.enc.UTF8()
}

// Encoding returns the encoding used to decode lines.
func (b *Buffer) Encoding() Encoding {
	return b.enc
}

func (b *Buffer) byteAt(pos int) byte {
	line := b.Line()
	if pos < 0 || pos >= len(line) {
		return 0
	}
	return line[pos]
}

// IsWordChar reports whether the character at pos is a word character. The
// end of the line never is.
func (b *Buffer) IsWordChar(pos int) bool {
	line := b.Line()
	if pos < 0 || pos >= len(line) {
		return false
	}
	r, _ := b.enc.DecodeRune(line[pos:])
	return b.wordChars.Contains(r)
}

func (b *Buffer) isWordRune(r rune) bool {
	return b.wordChars.Contains(r)
}

// LegacyLetter reports the byte length of a letter spelled out as a Latin-1
// entity at pos.
func (b *Buffer) LegacyLetter(pos int) (int, bool) {
	return latin1Entity(b.Line(), pos)
}

// NextChar moves the cursor to the next character. It returns true, without
// moving, when the cursor is already at the end of the line.
func (b *Buffer) NextChar() bool {
	return b.nextChar(&b.head)
}

func (b *Buffer) nextChar(pos *int) bool {
	line := b.Line()
	if *pos >= len(line) {
		return true
	}
	_, size := b.enc.DecodeRune(line[*pos:])
	if size < 1 {
		size = 1
	}
	*pos += size
	return false
}

// Span returns a copy of the current line between start and end.
func (b *Buffer) Span(start, end int) string {
	line := b.Line()
	if start < 0 {
		start = 0
	}
	if end > len(line) {
		end = len(line)
	}
	if start >= end {
		return ""
	}
	return strings.Clone(line[start:end])
}

// allocToken returns the text between the token start and the cursor.
// Tokens inside URLs are dropped unless CheckURLs is set. A trailing colon is
// removed, for languages that list it as a word character.
func (b *Buffer) allocToken() (string, bool) {
	if !b.CheckURLs && b.inURL(b.token) {
		return "", false
	}
	t := b.Span(b.token, b.head)
	t = strings.TrimSuffix(t, ":")
	if t == "" {
		return "", false
	}
	b.tokenEnd = b.token + len(t)
	return t, true
}

// ChangeToken replaces the text of the last token of the current line with
// word and moves the cursor back to the token start, so the replacement is
// scanned again. A colon stripped from the token stays in the line.
func (b *Buffer) ChangeToken(word string) {
	line := b.Line()
	if b.tokenEnd > len(line) || b.token > b.tokenEnd {
		return
	}
	b.lines[b.actual] = line[:b.token] + word + line[b.tokenEnd:]
	b.head = b.token
	b.checkURLs()
}

func (b *Buffer) inURL(pos int) bool {
	return pos >= 0 && pos < len(b.urls) && b.urls[pos]
}

// checkURLs marks the bytes of the current line that belong to a URL, an
// e-mail address or a file path.
func (b *Buffer) checkURLs() {
	line := b.Line()
	b.urls = make([]bool, len(line)+1)

	inWord, url := false, false
	start := 0
	for pos := 0; ; {
		c := b.byteAt(pos)
		if !inWord {
			if b.IsWordChar(pos) {
				inWord, start = true, pos
			} else if c == '/' {
				inWord, start, url = true, pos, true
			}
		} else if c == '@' || strings.HasPrefix(line[pos:], `:\`) || strings.HasPrefix(line[pos:], "://") {
			url = true
		} else if !b.IsWordChar(pos) && !isURLByte(c) {
			if url {
				for i := start; i < pos; i++ {
					b.urls[i] = true
				}
			}
			inWord, url = false, false
		}
		if b.nextChar(&pos) {
			return
		}
	}
}

func isURLByte(c byte) bool {
	switch c {
	case '-', '_', '\\', '.', ':', '/', '~', '%', '*', '$', '[', ']', '?', '!':
		return true
	}
	return '0' <= c && c <= '9'
}
