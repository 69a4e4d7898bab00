package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heathj/xmlwords/parser"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE...]",
		Short: "List the misspelled words of the documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDictionary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.eachInput(cmd, args, func(name string, p *parser.Parser) error {
				found, err := p.Misspellings(d)
				if err != nil {
					return err
				}
				for _, m := range found {
					fmt.Fprintf(out, "%s:%d:%d: %s", name, m.Line, m.Offset, m.Word())
					if len(m.Suggestions) > 0 {
						fmt.Fprintf(out, " (%s)", strings.Join(m.Suggestions, ", "))
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}
}
