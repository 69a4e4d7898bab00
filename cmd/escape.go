package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heathj/xmlwords/parser"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape WORD...",
		Short: "Print words with markup characters escaped",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range args {
				fmt.Fprintln(cmd.OutOrStdout(), parser.EscapeToken(w))
			}
			return nil
		},
	}
}
