package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

//go:generate stringer -type=tokenizerState
type tokenizerState uint

const (
	nonWordState tokenizerState = iota
	wordState
	tagState
	charEntityState
	attributeState
)

// attrCheck tracks the progress through a tag matched by the inspection
// table.
type attrCheck uint

const (
	attrNone    attrCheck = iota // not in an inspected tag
	attrPending                  // in an inspected tag, before its marked attribute
	attrInside                   // in the marked attribute of an inspected tag
)

const (
	entityApos = "&apos;"
	utf8Apos   = "’"
)

type parserStateHandler func() (bool, tokenizerState)

// XMLTokenizer extracts the words of an XML or HTML document, skipping tags,
// comments, CDATA sections and character entities. It reads lines from its
// embedded Buffer and can be resumed across lines: a tag left open at the
// end of one line continues on the next.
//
// An XMLTokenizer is not safe for concurrent use.
type XMLTokenizer struct {
	*Buffer

	returnState, currentState tokenizerState
	patterns                  PatternTable
	inspect                   PatternTable
	patternNum                int
	inspectNum                int
	checkAttr                 attrCheck
	quoteMark                 byte
	emitted                   []string
	log                       *logrus.Entry
}

// Option configures an XMLTokenizer.
type Option func(*XMLTokenizer)

// WithInspectPatterns sets the table of tags whose marked attribute is
// scanned for words, for example ImageAltPatterns.
func WithInspectPatterns(t PatternTable) Option {
	return func(p *XMLTokenizer) {
		p.inspect = t
	}
}

// WithLogger sets the logger that receives state transitions at trace level.
func WithLogger(log *logrus.Entry) Option {
	return func(p *XMLTokenizer) {
		if log != nil {
			p.log = log
		}
	}
}

// NewXMLTokenizer creates a tokenizer reading from buf. Without options no
// attribute is inspected.
func NewXMLTokenizer(buf *Buffer, opts ...Option) *XMLTokenizer {
	p := &XMLTokenizer{
		Buffer:   buf,
		patterns: MarkupPatterns,
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset returns the tokenizer to its initial state, outside any markup.
func (p *XMLTokenizer) Reset() {
	p.currentState = nonWordState
	p.returnState = nonWordState
	p.patternNum = 0
	p.inspectNum = 0
	p.checkAttr = attrNone
	p.quoteMark = 0
	p.emitted = nil
}

func (p *XMLTokenizer) stateToParser(state tokenizerState) parserStateHandler {
	switch state {
	case nonWordState:
		return p.nonWordStateParser
	case wordState:
		return p.wordStateParser
	case tagState:
		return p.tagStateParser
	case charEntityState:
		return p.charEntityStateParser
	case attributeState:
		return p.attributeStateParser
	}

	return nil
}

// NextToken returns the next word of the current line. It returns false when
// the line is exhausted; the caller then puts the next line and calls again.
// The word keeps its original spelling, entities included.
func (p *XMLTokenizer) NextToken() (string, bool) {
	for {
		reconsume, next := p.stateToParser(p.currentState)()
		if next != p.currentState && p.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			p.log.WithFields(logrus.Fields{
				"pos":  p.head,
				"from": p.currentState,
				"to":   next,
			}).Tracef("[TOKEN] byte: %q", p.byteAt(p.head))
		}
		p.currentState = next

		if token, ok := p.takeToken(); ok {
			return token, true
		}
		if reconsume {
			continue
		}
		if p.NextChar() {
			return "", false
		}
	}
}

// ChangeToken writes word in place of the last token, escaping the
// characters that are significant in markup.
func (p *XMLTokenizer) ChangeToken(word string) {
	p.Buffer.ChangeToken(EscapeToken(word))
}

func (p *XMLTokenizer) emit(token string) {
	p.emitted = append(p.emitted, token)
}

func (p *XMLTokenizer) takeToken() (string, bool) {
	if len(p.emitted) == 0 {
		return "", false
	}
	t := p.emitted[0]
	p.emitted = p.emitted[1:]
	return t, true
}

// skip moves the cursor to the last byte of an n byte sequence at the
// cursor; the regular advance then steps over the whole sequence.
func (p *XMLTokenizer) skip(n int) {
	if n > 1 {
		p.head += n - 1
	}
}

func (p *XMLTokenizer) nonWordStateParser() (bool, tokenizerState) {
	p.returnState = nonWordState
	line := p.Line()
	if i := lookPattern(line, p.head, p.patterns, openColumn); i != noMatch {
		p.patternNum = i
		p.checkAttr = attrNone
		if j := lookPattern(line, p.head, p.inspect, openColumn); j != noMatch {
			p.inspectNum = j
			p.checkAttr = attrPending
		}
		return false, tagState
	}
	if p.IsWordChar(p.head) {
		p.token = p.head
		return false, wordState
	}
	if n, ok := p.LegacyLetter(p.head); ok {
		p.token = p.head
		p.skip(n)
		return false, wordState
	}
	if p.byteAt(p.head) == '&' {
		return false, charEntityState
	}
	return false, nonWordState
}

func (p *XMLTokenizer) wordStateParser() (bool, tokenizerState) {
	// a quote closes the attribute value even when it is a word character
	if p.returnState == attributeState && p.byteAt(p.head) == p.quoteMark {
		return p.endWord()
	}
	if n, ok := p.LegacyLetter(p.head); ok {
		p.skip(n)
		return false, wordState
	}
	if n := p.apostropheLen(p.head); n > 0 {
		p.skip(n)
		return false, wordState
	}
	if !p.IsWordChar(p.head) {
		return p.endWord()
	}
	return false, wordState
}

// endWord emits the word ending at the cursor. The character after the word
// belongs to the state we return to.
func (p *XMLTokenizer) endWord() (bool, tokenizerState) {
	if token, ok := p.allocToken(); ok {
		p.emit(token)
	}
	return true, p.returnState
}

// apostropheLen returns the length of an apostrophe written as &apos; or, in
// UTF-8 mode, as a right single quotation mark, when the apostrophe is a word
// character and the word continues after it.
func (p *XMLTokenizer) apostropheLen(pos int) int {
	line := p.Line()
	if pos >= len(line) {
		return 0
	}
	rest := line[pos:]
	apos := p.isWordRune('\'')
	if (apos || (p.UTF8() && p.isWordRune('’'))) &&
		strings.HasPrefix(rest, entityApos) && p.IsWordChar(pos+len(entityApos)) {
		return len(entityApos)
	}
	if p.UTF8() && apos &&
		strings.HasPrefix(rest, utf8Apos) && p.IsWordChar(pos+len(utf8Apos)) {
		return len(utf8Apos)
	}
	return 0
}

func (p *XMLTokenizer) tagStateParser() (bool, tokenizerState) {
	line := p.Line()
	if p.checkAttr == attrPending {
		i := lookPattern(line, p.head, p.inspect, closeColumn)
		if i != noMatch && p.inspect[i].Open == p.inspect[p.inspectNum].Open {
			p.checkAttr = attrInside
			return false, tagState
		}
	}

	c := p.byteAt(p.head)
	if p.checkAttr != attrNone && c == '>' {
		p.checkAttr = attrNone
		return false, nonWordState
	}

	opened := p.patterns[p.patternNum]
	if i := lookPattern(line, p.head, p.patterns, closeColumn); i != noMatch && p.patterns[i].Close == opened.Close {
		p.checkAttr = attrNone
		p.skip(len(opened.Close))
		return false, nonWordState
	}
	// only plain tags have attributes; comments and CDATA never quote
	if opened.Open == "<" && (c == '"' || c == '\'') {
		p.quoteMark = c
		return false, attributeState
	}
	return false, tagState
}

func (p *XMLTokenizer) attributeStateParser() (bool, tokenizerState) {
	p.returnState = attributeState
	c := p.byteAt(p.head)
	if c == p.quoteMark {
		if p.checkAttr == attrInside {
			p.checkAttr = attrPending
		}
		return false, tagState
	}
	if p.checkAttr == attrInside && p.IsWordChar(p.head) {
		p.token = p.head
		return false, wordState
	}
	if c == '&' {
		return false, charEntityState
	}
	return false, attributeState
}

// charEntityStateParser skips an entity up to its ';'. The ';' is handed
// back to the return state: a word state looking for "&apos;" needs to see
// the whole entity text.
func (p *XMLTokenizer) charEntityStateParser() (bool, tokenizerState) {
	if p.byteAt(p.head) == ';' {
		return true, p.returnState
	}
	return false, charEntityState
}
