package parser

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Checker is the spelling engine words are handed to.
type Checker interface {
	Check(word string) bool
	Suggest(word string) []string
}

// Parser runs a tokenizer over a whole document, one line at a time.
type Parser struct {
	Tokenizer *XMLTokenizer
	input     *bufio.Reader
	lineNo    int
	log       *logrus.Entry
}

// NewParser creates a parser that reads the document from in.
func NewParser(in io.Reader, tokenizer *XMLTokenizer) *Parser {
	return &Parser{
		Tokenizer: tokenizer,
		input:     bufio.NewReader(in),
		log:       tokenizer.log.WithField("component", "parser"),
	}
}

// nextLine hands the next line of the input to the tokenizer. It returns the
// line terminator that was stripped, and false at the end of the input.
func (p *Parser) nextLine() (string, bool, error) {
	s, err := p.input.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, errors.Wrapf(err, "reading line %d", p.lineNo+1)
	}
	if s == "" && err == io.EOF {
		return "", false, nil
	}
	p.lineNo++
	line, eol := splitEOL(s)
	p.Tokenizer.PutLine(line)
	return eol, true, nil
}

func splitEOL(s string) (string, string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	}
	return s, ""
}

// scan calls onToken for every token of the document and onLine once a line
// is exhausted, with the line as possibly rewritten by onToken.
func (p *Parser) scan(onToken func(Token), onLine func(line, eol string) error) error {
	for {
		eol, ok, err := p.nextLine()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		for {
			text, found := p.Tokenizer.NextToken()
			if !found {
				break
			}
			onToken(Token{Text: text, Line: p.lineNo, Offset: p.Tokenizer.TokenPos()})
		}
		if onLine != nil {
			if err := onLine(p.Tokenizer.Line(), eol); err != nil {
				return err
			}
		}
	}
}

// Words returns every word of the document in order.
func (p *Parser) Words() ([]Token, error) {
	var tokens []Token
	err := p.scan(func(t Token) {
		tokens = append(tokens, t)
	}, nil)
	return tokens, err
}

// Stream sends every word of the document on tokens as it is found, and
// closes tokens when done. It stops after the current line once ctx is done.
func (p *Parser) Stream(ctx context.Context, tokens chan<- Token) error {
	defer close(tokens)
	var cancelled error
	err := p.scan(func(t Token) {
		if cancelled != nil {
			return
		}
		select {
		case tokens <- t:
		case <-ctx.Done():
			cancelled = ctx.Err()
		}
	}, func(string, string) error {
		return cancelled
	})
	if err != nil {
		return err
	}
	return cancelled
}

// Misspellings returns the words of the document rejected by c, with the
// suggestions c offers for them.
func (p *Parser) Misspellings(c Checker) ([]Misspelling, error) {
	var found []Misspelling
	err := p.scan(func(t Token) {
		word := t.Word()
		if c.Check(word) {
			return
		}
		found = append(found, Misspelling{Token: t, Suggestions: c.Suggest(word)})
	}, nil)
	return found, err
}

// Correct writes the document to w with every word rejected by c replaced by
// its first suggestion. Replacements are escaped for markup. It returns the
// number of replaced words.
func (p *Parser) Correct(c Checker, w io.Writer) (int, error) {
	out := bufio.NewWriter(w)
	changed := 0
	// end of the last replacement; the tokenizer scans it again and those
	// tokens are already settled
	guardLine, guardEnd := 0, 0

	err := p.scan(func(t Token) {
		if t.Line == guardLine && t.Offset < guardEnd {
			return
		}
		word := t.Word()
		if c.Check(word) {
			return
		}
		suggestions := c.Suggest(word)
		if len(suggestions) == 0 {
			return
		}
		p.log.WithFields(logrus.Fields{
			"line":   t.Line,
			"offset": t.Offset,
			"word":   word,
		}).Debugf("replacing with %q", suggestions[0])
		p.Tokenizer.ChangeToken(suggestions[0])
		guardLine, guardEnd = t.Line, t.Offset+len(EscapeToken(suggestions[0]))
		changed++
	}, func(line, eol string) error {
		if _, err := out.WriteString(line + eol); err != nil {
			return errors.Wrap(err, "writing corrected document")
		}
		return nil
	})
	if err != nil {
		return changed, err
	}
	return changed, errors.Wrap(out.Flush(), "writing corrected document")
}
