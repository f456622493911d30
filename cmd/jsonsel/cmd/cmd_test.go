package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// runCmd executes rootCmd with args and stdin, returning its stdout and
// stderr combined. Cobra's root command is package-level state shared
// across tests: each call resets its output streams and arguments, and
// its input only when stdin is non-empty. Flag values are not reset
// between calls.
func runCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return out.String()
}

func TestQueryCommand(t *testing.T) {
	doc := `{"name": "widget", "tags": ["a", "b"], "count": 3}`

	tests := []struct {
		name string
		args []string
	}{
		{"select key", []string{"query", ".name"}},
		{"select array", []string{"query", "array"}},
		{"select numbers", []string{"query", "number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runCmd(t, doc, tt.args...)
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestLexCommand(t *testing.T) {
	out := runCmd(t, "", "lex", "object.name:val(\"x\")")
	snaps.MatchSnapshot(t, out)
}

func TestParseCommand(t *testing.T) {
	out := runCmd(t, "", "parse", "object > .name, string:contains(\"x\")")
	snaps.MatchSnapshot(t, out)
}

func TestVersionCommand(t *testing.T) {
	// version.go writes straight to os.Stdout like the teacher's
	// version command does, so there's nothing to capture here; just
	// confirm the command is wired up and exits cleanly.
	runCmd(t, "", "version")
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
