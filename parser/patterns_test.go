package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookPattern(t *testing.T) {
	tests := []struct {
		line     string
		pos      int
		column   column
		expected int
	}{
		{"<!-- c -->", 0, openColumn, 0},
		{"<![CDATA[x]]>", 0, openColumn, 1},
		{"<![cdata[x]]>", 0, openColumn, 1},
		{"<b>", 0, openColumn, 2},
		{"<!-", 0, openColumn, 2},
		{"x<b>", 0, openColumn, noMatch},
		{"x<b>", 1, openColumn, 2},
		{"", 0, openColumn, noMatch},
		{"-->", 0, closeColumn, 0},
		{"]]>", 0, closeColumn, 1},
		{">", 0, closeColumn, 2},
		{"--", 0, closeColumn, noMatch},
		{"a-->", 1, closeColumn, 0},
		{"a", 5, closeColumn, noMatch},
	}
	for _, tt := range tests {
		got := lookPattern(tt.line, tt.pos, MarkupPatterns, tt.column)
		require.Equal(t, tt.expected, got, "line %q at %d", tt.line, tt.pos)
	}
}

func TestLookPatternEmptyTable(t *testing.T) {
	require.Equal(t, noMatch, lookPattern("<img alt=''>", 0, nil, openColumn))
	require.Equal(t, noMatch, lookPattern("<img alt=''>", 0, PatternTable{}, closeColumn))
}

func TestLookPatternFirstMatchWins(t *testing.T) {
	table := NewPatternTable(Pattern{"<", ">"}, Pattern{"<!--", "-->"})
	require.Equal(t, 0, lookPattern("<!-- c -->", 0, table, openColumn))
}

func TestNewPatternTableLowercases(t *testing.T) {
	table := NewPatternTable(Pattern{"<IMG", "ALT="})
	require.Equal(t, PatternTable{{"<img", "alt="}}, table)
	require.Equal(t, 0, lookPattern(`<Img Alt="x">`, 5, table, closeColumn))
}
