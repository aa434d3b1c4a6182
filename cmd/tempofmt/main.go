// Command tempofmt converts between the WKT and WKB renderings of a
// Temporal value, for shell-level inspection and scripting.
package main

import (
	"fmt"
	"os"

	"github.com/temporalcore/tempo/cmd/tempofmt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
