package wkb

// Flag-byte bit positions, per §4.9: "a 1-byte flag byte (X, Z, T,
// geodetic, linear, has-SRID, has-bbox, discrete)".
const (
	flagX uint8 = 1 << iota
	flagZ
	flagT
	flagGeodetic
	flagLinear
	flagSRID
	flagBBox
	flagDiscrete
)

// Bit positions within the 1-byte sequence inclusivity field.
const (
	incLower uint8 = 1 << iota
	incUpper
)
