// Package wkb implements the binary WKB codec of §4.9: a type-tagged,
// endian-aware encoder/decoder for Temporal values, a hex-string variant,
// an optional compressed-frame extension built on the compress package,
// and a separate frame for STBox (a value in its own right, §1.3/§2-C2,
// not merely a Temporal accessory).
//
// The Temporal frame layout is: 1-byte endian marker (0 big, 1 little);
// 2-byte TempType code (format.TempType.Code()); 1-byte flag byte (X, Z,
// T, geodetic, linear, has-SRID, has-bbox, discrete); 1-byte Subtype tag
// (format.Subtype) identifying which of Instant/Sequence/SequenceSet the
// payload recurses into — the grammar of §4.9 leaves the subtype
// discriminant's exact placement unstated since every flag-byte bit is
// already spoken for, so it gets its own byte rather than stealing one;
// optional 4-byte SRID; optional cached-bbox payload; the subtype
// payload itself.
//
// The STBox frame (EncodeSTBox/DecodeSTBox) reuses the same endian
// marker and flag bits (X, Z, T, geodetic, has-SRID) but carries no
// TempType code or Subtype tag — a box has no recursive payload, just
// an optional SRID, optional X/Y/Z bounds and an optional Period.
package wkb

import (
	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/internal/options"
)

// DefaultCompressionThreshold is the payload size (bytes) above which
// WriteCompressed actually compresses rather than passing the frame
// through unchanged.
const DefaultCompressionThreshold = 4096

// Config holds the options governing one Encode/Decode/WriteCompressed
// call.
type Config struct {
	Engine               endian.EndianEngine
	Compression          format.CompressionType
	CompressionThreshold int
	IncludeBBox          bool
}

// Option configures Encode, Decode or WriteCompressed.
type Option = options.Option[*Config]

// WithEngine selects the byte order Encode/WriteCompressed uses. Decode
// ignores this option: the frame's leading endian marker is authoritative.
func WithEngine(eng endian.EndianEngine) Option {
	return options.NoError[*Config](func(c *Config) { c.Engine = eng })
}

// WithCompression selects the algorithm WriteCompressed uses once the
// encoded frame exceeds the compression threshold.
func WithCompression(ct format.CompressionType) Option {
	return options.NoError[*Config](func(c *Config) { c.Compression = ct })
}

// WithCompressionThreshold overrides DefaultCompressionThreshold.
func WithCompressionThreshold(n int) Option {
	return options.NoError[*Config](func(c *Config) { c.CompressionThreshold = n })
}

// WithBBox requests that Encode embed the value's cached bounding box in
// the frame. Decode always recomputes bounds from the decoded instants
// regardless of this flag; the embedded copy exists only so a reader that
// wants bounds without fully decoding the payload still can.
func WithBBox() Option {
	return options.NoError[*Config](func(c *Config) { c.IncludeBBox = true })
}

func newConfig(opts []Option) (*Config, error) {
	c := &Config{
		Engine:               endian.GetLittleEndianEngine(),
		Compression:          format.CompressionNone,
		CompressionThreshold: DefaultCompressionThreshold,
	}
	if err := options.Apply[*Config](c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
