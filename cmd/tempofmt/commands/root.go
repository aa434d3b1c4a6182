package commands

import (
	"github.com/spf13/cobra"
)

var srid int32

// rootCmd is the base command when tempofmt is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tempofmt",
	Short: "Convert temporal values between WKT and WKB",
	Long: `tempofmt converts a Temporal value between its WKT textual
rendering and its WKB binary rendering.

Examples:
  tempofmt wkt2wkb 'POINT(0 0)@2020-01-01'
  tempofmt wkb2wkt 010200000000000000000000000000000000000000...`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int32Var(&srid, "srid", 0, "default SRID applied to a literal that carries none")
}
