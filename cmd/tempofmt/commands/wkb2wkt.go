package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalcore/tempo/wkb"
	"github.com/temporalcore/tempo/wkt"
)

var wkb2wktCmd = &cobra.Command{
	Use:   "wkb2wkt <hex-wkb>",
	Short: "Decode a hex-WKB string and print its WKT rendering",
	Args:  cobra.ExactArgs(1),
	RunE:  runWKB2WKT,
}

func init() {
	rootCmd.AddCommand(wkb2wktCmd)
}

func runWKB2WKT(cmd *cobra.Command, args []string) error {
	t, err := wkb.DecodeHex(args[0])
	if err != nil {
		return fmt.Errorf("decoding hex-WKB: %w", err)
	}

	out, err := wkt.Format(t)
	if err != nil {
		return fmt.Errorf("formatting WKT: %w", err)
	}

	cmd.Println(out)

	return nil
}
