package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalcore/tempo/wkb"
	"github.com/temporalcore/tempo/wkt"
)

var (
	bigEndian   bool
	includeBBox bool
)

var wkt2wkbCmd = &cobra.Command{
	Use:   "wkt2wkb <wkt-literal>",
	Short: "Parse a WKT literal and print its hex-WKB encoding",
	Args:  cobra.ExactArgs(1),
	RunE:  runWKT2WKB,
}

func init() {
	rootCmd.AddCommand(wkt2wkbCmd)
	wkt2wkbCmd.Flags().BoolVar(&bigEndian, "big-endian", false, "encode big-endian instead of little-endian")
	wkt2wkbCmd.Flags().BoolVar(&includeBBox, "bbox", false, "include the optional bounding-box payload")
}

func runWKT2WKB(cmd *cobra.Command, args []string) error {
	var wktOpts []wkt.Option
	if srid != 0 {
		wktOpts = append(wktOpts, wkt.WithSRID(srid))
	}

	t, err := wkt.Parse(args[0], wktOpts...)
	if err != nil {
		return fmt.Errorf("parsing WKT literal: %w", err)
	}

	var wkbOpts []wkb.Option
	if bigEndian {
		wkbOpts = append(wkbOpts, wkb.WithEngine(bigEndianEngine()))
	}
	if includeBBox {
		wkbOpts = append(wkbOpts, wkb.WithBBox())
	}

	hexStr, err := wkb.EncodeHex(t, wkbOpts...)
	if err != nil {
		return fmt.Errorf("encoding WKB: %w", err)
	}

	cmd.Println(hexStr)

	return nil
}
