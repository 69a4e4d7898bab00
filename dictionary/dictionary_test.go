package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	d := New()
	d.Add("hello", "world", "NASA", "iPhone")

	require.True(t, d.Check("hello"))
	require.True(t, d.Check("Hello"))
	require.True(t, d.Check("HELLO"))
	require.True(t, d.Check("NASA"))
	require.False(t, d.Check("nasa"))
	require.True(t, d.Check("iPhone"))
	require.False(t, d.Check("helo"))
	require.False(t, d.Check(""))
	require.Equal(t, 4, d.Len())
}

func TestReadWords(t *testing.T) {
	d := New()
	err := d.ReadWords(strings.NewReader("# comment\nalpha\n\n  beta  \ngamma"))
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
	require.True(t, d.Check("beta"))
	require.False(t, d.Check("# comment"))
}

func TestReadReplacements(t *testing.T) {
	d := New()
	err := d.ReadReplacements(strings.NewReader("teh: the\nrecieve: receive\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"the"}, d.Suggest("teh"))
	require.Equal(t, []string{"The"}, d.Suggest("Teh"))
	require.Nil(t, d.Suggest("unknown"))
	require.True(t, d.Check("receive"), "replacements are words")
}

func TestReadReplacementsEmpty(t *testing.T) {
	require.NoError(t, New().ReadReplacements(strings.NewReader("")))
}

func TestReadReplacementsInvalid(t *testing.T) {
	err := New().ReadReplacements(strings.NewReader("- just\n- a list\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding replacement table")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	repl := filepath.Join(dir, "repl.yaml")
	require.NoError(t, os.WriteFile(words, []byte("cat\nhat\n"), 0o600))
	require.NoError(t, os.WriteFile(repl, []byte("kat: cat\n"), 0o600))

	d := New()
	require.NoError(t, d.LoadFile(words))
	require.NoError(t, d.LoadReplacementsFile(repl))
	require.True(t, d.Check("hat"))
	require.Equal(t, []string{"cat"}, d.Suggest("kat"))

	err := d.LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.txt")
}
