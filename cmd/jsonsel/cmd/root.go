package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ericchiang/jsonsel/internal/cliutil"
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	logLevel  string
	logFormat = cliutil.FormatLogfmt
)

var rootCmd = &cobra.Command{
	Use:   "jsonsel",
	Short: "Select values from a JSON document with a CSS-inspired selector language",
	Long: `jsonsel queries a JSON document using a selector language modeled on
CSS Selectors Level 3: type atoms (object, array, string, number,
boolean, null), key atoms (.name), pseudo-classes (:root, :nth-child,
:val, :contains, :has, ...), and the descendant, child (>), and
general sibling (~) combinators.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Var(cliutil.NewFormatValue(cliutil.FormatLogfmt, &logFormat), "log-format", "log format: logfmt, json")
}

// logger builds the slog.Logger for the current invocation from the
// persistent --log-level/--log-format flags.
func logger() *slog.Logger {
	h, err := cliutil.NewHandler(os.Stderr, logLevel, string(logFormat))
	if err != nil {
		exitWithError("%v", err)
	}
	return slog.New(h)
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
