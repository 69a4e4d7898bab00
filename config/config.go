// Package config holds the scanner configuration and loads it with viper.
package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/heathj/xmlwords/parser"
)

// InspectPattern marks an attribute of a tag whose value is scanned for
// words, e.g. {Open: "<img", Close: "alt="}.
type InspectPattern struct {
	Open  string `mapstructure:"open"`
	Close string `mapstructure:"close"`
}

// Config is the scanner configuration.
type Config struct {
	Encoding     string           `mapstructure:"encoding"`
	WordChars    string           `mapstructure:"wordchars"`
	CheckURLs    bool             `mapstructure:"check_urls"`
	Inspect      []InspectPattern `mapstructure:"inspect"`
	Dictionary   string           `mapstructure:"dictionary"`
	Replacements string           `mapstructure:"replacements"`
	LogLevel     string           `mapstructure:"log_level"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Encoding:  "UTF-8",
		WordChars: "'’",
		LogLevel:  "warn",
	}
}

// SetDefaults registers the defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("wordchars", d.WordChars)
	v.SetDefault("check_urls", d.CheckURLs)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the configuration from v. When path is set the file must
// exist; otherwise only defaults and values already bound to v are used.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, cfg.Validate()
}

// Validate checks the encoding, the log level and the inspect patterns.
func (c Config) Validate() error {
	if _, err := parser.LookupEncoding(c.Encoding); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	for i, p := range c.Inspect {
		if p.Open == "" || p.Close == "" {
			return errors.Errorf("invalid config: inspect pattern %d needs open and close", i)
		}
	}
	return nil
}

// InspectPatterns returns the inspect patterns as a pattern table.
func (c Config) InspectPatterns() parser.PatternTable {
	patterns := make([]parser.Pattern, 0, len(c.Inspect))
	for _, p := range c.Inspect {
		patterns = append(patterns, parser.Pattern{Open: p.Open, Close: p.Close})
	}
	return parser.NewPatternTable(patterns...)
}

// NewTokenizer builds a tokenizer for the configuration.
func (c Config) NewTokenizer(log *logrus.Entry) (*parser.XMLTokenizer, error) {
	enc, err := parser.LookupEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}
	buf := parser.NewBuffer(enc, parser.NewWordChars(c.WordChars))
	buf.CheckURLs = c.CheckURLs
	return parser.NewXMLTokenizer(buf,
		parser.WithInspectPatterns(c.InspectPatterns()),
		parser.WithLogger(log),
	), nil
}
