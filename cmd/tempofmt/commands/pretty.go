package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalcore/tempo/wkt"
)

var prettyCmd = &cobra.Command{
	Use:   "pretty <wkt-literal>",
	Short: "Parse a WKT literal and re-print it in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runPretty,
}

func init() {
	rootCmd.AddCommand(prettyCmd)
}

func runPretty(cmd *cobra.Command, args []string) error {
	var opts []wkt.Option
	if srid != 0 {
		opts = append(opts, wkt.WithSRID(srid))
	}

	t, err := wkt.Parse(args[0], opts...)
	if err != nil {
		return fmt.Errorf("parsing WKT literal: %w", err)
	}

	out, err := wkt.Format(t)
	if err != nil {
		return fmt.Errorf("formatting WKT: %w", err)
	}

	cmd.Println(out)

	return nil
}
