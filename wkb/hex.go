package wkb

import (
	"encoding/hex"
	"fmt"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/temporal"
)

// EncodeHex renders t as the hex-WKB string variant of §4.9: the same
// bytes Encode produces, uppercase-hex encoded.
func EncodeHex(t temporal.Temporal, opts ...Option) (string, error) {
	b, err := Encode(t, opts...)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%X", b), nil
}

// DecodeHex is the inverse of EncodeHex.
func DecodeHex(s string, opts ...Option) (temporal.Temporal, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex-WKB string: %v", errs.ErrBinaryInput, err)
	}

	return Decode(b, opts...)
}
