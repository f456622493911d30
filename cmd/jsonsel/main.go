// Command jsonsel selects values out of a JSON document using a
// CSS-inspired selector language.
package main

import (
	"os"

	"github.com/ericchiang/jsonsel/cmd/jsonsel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
