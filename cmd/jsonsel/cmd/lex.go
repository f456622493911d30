package cmd

import (
	"fmt"

	"github.com/ericchiang/jsonsel"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <selector>",
	Short: "Print the raw token stream for a selector expression",
	Long: `lex runs the selector lexer alone and prints each token it
produces, useful when a selector fails to parse and the cause isn't
obvious from the parser's error message.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	toks, err := jsonsel.Lex(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, tok := range toks {
		fmt.Fprintln(out, tok)
	}
	return nil
}
