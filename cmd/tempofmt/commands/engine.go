package commands

import "github.com/temporalcore/tempo/endian"

func bigEndianEngine() endian.EndianEngine { return endian.GetBigEndianEngine() }
