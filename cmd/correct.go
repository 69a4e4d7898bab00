package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heathj/xmlwords/parser"
)

func newCorrectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "correct [FILE]",
		Short: "Write the document with misspelled words replaced",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDictionary()
			if err != nil {
				return err
			}
			return a.eachInput(cmd, args, func(name string, p *parser.Parser) error {
				changed, err := p.Correct(d, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				a.log.WithField("file", name).Infof("%d words replaced", changed)
				return nil
			})
		},
	}
}
