package cmd

import (
	"fmt"

	"github.com/ericchiang/jsonsel"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <selector>",
	Short: "Print the parsed AST for a selector expression",
	Long: `parse runs the selector parser alone and prints the resulting
abstract syntax tree, without compiling or evaluating it. Useful when a
selector compiles to something other than what was intended.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	dump, err := jsonsel.ParseDebug(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), dump)
	return nil
}
