package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferPrevLine(t *testing.T) {
	b := NewBuffer(nil, nil)
	for _, l := range []string{"one", "two", "three", "four", "five"} {
		b.PutLine(l)
	}
	require.Equal(t, "five", b.Line())
	require.Equal(t, "five", b.PrevLine(0))
	require.Equal(t, "four", b.PrevLine(1))
	require.Equal(t, "two", b.PrevLine(3))
	require.Equal(t, "", b.PrevLine(maxPrevLine))
	require.Equal(t, "", b.PrevLine(-1))
}

func TestBufferNextChar(t *testing.T) {
	b := NewBuffer(UTF8, nil)
	b.PutLine("aé’")

	var positions []int
	for {
		positions = append(positions, b.head)
		if b.NextChar() {
			break
		}
	}
	require.Equal(t, []int{0, 1, 3, 6}, positions)
	require.True(t, b.NextChar(), "the end of the line does not move")
	require.Equal(t, 6, b.head)
}

func TestBufferNextCharInvalidUTF8(t *testing.T) {
	b := NewBuffer(UTF8, nil)
	b.PutLine("a\xffb")
	require.False(t, b.IsWordChar(1))
	require.False(t, b.NextChar())
	require.False(t, b.NextChar())
	require.Equal(t, 2, b.head)
	require.True(t, b.IsWordChar(2))
}

func TestBufferIsWordChar(t *testing.T) {
	b := NewBuffer(UTF8, NewWordChars("'-"))
	b.PutLine("a'-1 ")
	require.True(t, b.IsWordChar(0))
	require.True(t, b.IsWordChar(1))
	require.True(t, b.IsWordChar(2))
	require.False(t, b.IsWordChar(3))
	require.False(t, b.IsWordChar(4))
	require.False(t, b.IsWordChar(5), "end of line")
}

func TestBufferSpan(t *testing.T) {
	b := NewBuffer(nil, nil)
	b.PutLine("hello world")
	require.Equal(t, "world", b.Span(6, 11))
	require.Equal(t, "world", b.Span(6, 50))
	require.Equal(t, "", b.Span(4, 2))
}

func TestBufferChangeToken(t *testing.T) {
	b := NewBuffer(nil, nil)
	b.PutLine("a teh b")
	b.token, b.head = 2, 5
	_, ok := b.allocToken()
	require.True(t, ok)

	b.ChangeToken("the")
	require.Equal(t, "a the b", b.Line())
	require.Equal(t, 2, b.head)

	b.token, b.head = 2, 5
	_, ok = b.allocToken()
	require.True(t, ok)
	b.ChangeToken("")
	require.Equal(t, "a  b", b.Line())
}

func TestBufferChangeTokenKeepsStrippedColon(t *testing.T) {
	b := NewBuffer(nil, NewWordChars(":"))
	b.PutLine("Huomm: x")
	b.token, b.head = 0, 6

	token, ok := b.allocToken()
	require.True(t, ok)
	require.Equal(t, "Huomm", token)

	b.ChangeToken("Huom")
	require.Equal(t, "Huom: x", b.Line())
	require.Equal(t, 0, b.head)
}

func TestBufferURLs(t *testing.T) {
	tests := []struct {
		line string
		url  string
	}{
		{"go to http://example.com/x?y now", "http://example.com/x?y"},
		{"write to john@example.com today", "john@example.com"},
		{"open C:\\temp\\file.txt please", "C:\\temp\\file.txt"},
		{"list /usr/local/bin here", "/usr/local/bin"},
		{"and/or either", ""},
	}
	for _, tt := range tests {
		b := NewBuffer(nil, nil)
		b.PutLine(tt.line)
		marked := ""
		for i := 0; i < len(tt.line); i++ {
			if b.inURL(i) {
				marked += tt.line[i : i+1]
			}
		}
		require.Equal(t, tt.url, marked, "line %q", tt.line)
	}
}

func TestBufferAllocToken(t *testing.T) {
	b := NewBuffer(nil, NewWordChars(":"))
	b.PutLine("word: :")

	b.token, b.head = 0, 5
	token, ok := b.allocToken()
	require.True(t, ok)
	require.Equal(t, "word", token)

	b.token, b.head = 6, 7
	_, ok = b.allocToken()
	require.False(t, ok)
}
