package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ericchiang/jsonsel"
	"github.com/ericchiang/jsonsel/internal/domnode"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var prettyPrint bool

var queryCmd = &cobra.Command{
	Use:   "query <selector> [file]",
	Short: "Print every value a selector matches in a JSON document",
	Long: `query compiles a selector expression, binds it to a JSON document,
and prints every match in document order, one per line.

Examples:
  # Match against a file
  jsonsel query ".items > number" doc.json

  # Match against stdin
  cat doc.json | jsonsel query ":has(.error)"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().BoolVar(&prettyPrint, "pretty", false, "pretty-print each matched value")
}

func runQuery(cmd *cobra.Command, args []string) error {
	log := logger()

	plan, err := jsonsel.Compile(args[0])
	if err != nil {
		return fmt.Errorf("compiling selector: %w", err)
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	root := domnode.Parse(string(data))
	handle, err := plan.Bind(root)
	if err != nil {
		return fmt.Errorf("binding document: %w", err)
	}
	defer handle.Release()

	count := 0
	for {
		n, ok, err := handle.Next()
		if err != nil {
			return fmt.Errorf("evaluating selector: %w", err)
		}
		if !ok {
			break
		}
		count++
		printMatch(cmd, n.Raw())
	}
	log.Debug("query finished", "matches", count)
	return nil
}

func printMatch(cmd *cobra.Command, raw string) {
	if prettyPrint {
		cmd.OutOrStdout().Write(pretty.Pretty([]byte(raw)))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), raw)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 2 {
		return os.ReadFile(args[1])
	}
	return io.ReadAll(cmd.InOrStdin())
}
