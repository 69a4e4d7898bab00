package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heathj/xmlwords/config"
	"github.com/heathj/xmlwords/dictionary"
	"github.com/heathj/xmlwords/parser"
)

var version = "dev"

// config file picked up from the working directory when --config is not set
const defaultConfigFile = ".xmlwords.yaml"

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "xmlwords",
		Short: "Spell checking helper for XML and HTML documents",
		Long: `xmlwords extracts the natural language words of XML and HTML documents,
skipping tags, comments, CDATA sections and entities, and writes corrected
words back with markup characters escaped.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: "+defaultConfigFile+" in the current directory)")
	flags.StringP("encoding", "e", "", "character encoding of the documents (default UTF-8)")
	flags.StringP("wordchars", "w", "", "characters besides letters that belong to words")
	flags.Bool("check-urls", false, "check words inside URLs, e-mail addresses and paths")
	flags.Bool("inspect-alt", false, "check the alt text of images")
	flags.StringP("dict", "d", "", "word list, one word per line")
	flags.StringP("replacements", "r", "", "YAML table of misspellings and their replacement")
	flags.String("log-level", "", "log level: trace, debug, info, warn or error")

	// Bind flags to viper
	_ = a.v.BindPFlag("encoding", flags.Lookup("encoding"))
	_ = a.v.BindPFlag("wordchars", flags.Lookup("wordchars"))
	_ = a.v.BindPFlag("check_urls", flags.Lookup("check-urls"))
	_ = a.v.BindPFlag("dictionary", flags.Lookup("dict"))
	_ = a.v.BindPFlag("replacements", flags.Lookup("replacements"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newWordsCmd(a),
		newCheckCmd(a),
		newCorrectCmd(a),
		newEscapeCmd(),
	)
	return rootCmd
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	if inspectAlt, _ := cmd.Flags().GetBool("inspect-alt"); inspectAlt {
		cfg.Inspect = append(cfg.Inspect, config.InspectPattern{Open: "<img", Close: "alt="})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.cfg = cfg

	a.log.WithFields(logrus.Fields{
		"config":   a.v.ConfigFileUsed(),
		"encoding": cfg.Encoding,
	}).Debug("configuration loaded")
	return nil
}

// eachInput runs fn with a parser for every named file, or for standard input
// when no file is named or the name is "-".
func (a *app) eachInput(cmd *cobra.Command, args []string, fn func(name string, p *parser.Parser) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := a.withInput(cmd, name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) withInput(cmd *cobra.Command, name string, fn func(name string, p *parser.Parser) error) error {
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		in = f
	}

	tokenizer, err := a.cfg.NewTokenizer(a.log.WithField("file", name))
	if err != nil {
		return err
	}
	return fn(name, parser.NewParser(in, tokenizer))
}

func (a *app) loadDictionary() (*dictionary.Dictionary, error) {
	if a.cfg.Dictionary == "" && a.cfg.Replacements == "" {
		return nil, errors.New("no dictionary: use --dict or --replacements, or set them in the config")
	}
	d := dictionary.New()
	if a.cfg.Dictionary != "" {
		if err := d.LoadFile(a.cfg.Dictionary); err != nil {
			return nil, err
		}
	}
	if a.cfg.Replacements != "" {
		if err := d.LoadReplacementsFile(a.cfg.Replacements); err != nil {
			return nil, err
		}
	}
	a.log.WithField("words", d.Len()).Debug("dictionary loaded")
	return d, nil
}
