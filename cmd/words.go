package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/heathj/xmlwords/parser"
)

func newWordsCmd(a *app) *cobra.Command {
	var raw, positions bool
	cmd := &cobra.Command{
		Use:   "words [FILE...]",
		Short: "Print the words of the documents, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.eachInput(cmd, args, func(name string, p *parser.Parser) error {
				tokens := make(chan parser.Token)
				var wg sync.WaitGroup
				wg.Add(1)
				go func() {
					defer wg.Done()
					for t := range tokens {
						word := t.Word()
						if raw {
							word = t.Text
						}
						if positions {
							fmt.Fprintf(out, "%s:%d:%d: %s\n", name, t.Line, t.Offset, word)
						} else {
							fmt.Fprintln(out, word)
						}
					}
				}()

				err := p.Stream(cmd.Context(), tokens)
				wg.Wait()
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print words as written, entities included")
	cmd.Flags().BoolVar(&positions, "positions", false, "prefix words with file, line and byte offset")
	return cmd
}
