package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/heathj/xmlwords/parser"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults().Encoding, cfg.Encoding)
	require.Equal(t, Defaults().WordChars, cfg.WordChars)
	require.False(t, cfg.CheckURLs)
	require.Empty(t, cfg.Inspect)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`encoding: ISO8859-2
wordchars: "-"
check_urls: true
inspect:
  - open: "<img"
    close: "alt="
dictionary: words.txt
log_level: debug
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "ISO8859-2", cfg.Encoding)
	require.Equal(t, "-", cfg.WordChars)
	require.True(t, cfg.CheckURLs)
	require.Equal(t, []InspectPattern{{Open: "<img", Close: "alt="}}, cfg.Inspect)
	require.Equal(t, "words.txt", cfg.Dictionary)
	require.Equal(t, parser.ImageAltPatterns, cfg.InspectPatterns())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Encoding = "klingon"
	require.Error(t, bad.Validate())

	bad = cfg
	bad.LogLevel = "loud"
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Inspect = []InspectPattern{{Open: "<img"}}
	require.Error(t, bad.Validate())
}

func TestNewTokenizer(t *testing.T) {
	cfg := Defaults()
	cfg.Inspect = []InspectPattern{{Open: "<img", Close: "alt="}}

	p, err := cfg.NewTokenizer(logrus.NewEntry(logrus.New()))
	require.NoError(t, err)
	require.True(t, p.UTF8())

	p.PutLine(`<img alt="don’t panic">`)
	var tokens []string
	for {
		token, ok := p.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	require.Equal(t, []string{"don’t", "panic"}, tokens)
}
