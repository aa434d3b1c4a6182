// Package tempo provides a temporal-value algebra over timestamps,
// periods, and per-base-kind values (scalars, points, circular buffers,
// network points, poses), following the MobilityDB/MEOS family of
// primitives.
//
// # Core Features
//
//   - Timestamp/Period/PeriodSet set algebra (timeset)
//   - Spatiotemporal bounding boxes (stbox)
//   - A tagged-union Temporal value model (Instant/Sequence/SequenceSet)
//   - Segment-level geometric kernels, synchronization and lifting
//   - A restriction engine (at/minus value, range, period, timestamp)
//   - WKT parsing/printing and a binary WKB codec
//   - Derived constructors for circular-buffer and pose values
//
// # Basic Usage
//
// Parsing and restricting a temporal float:
//
//	import (
//		"github.com/temporalcore/tempo"
//		"github.com/temporalcore/tempo/basevalue"
//		"github.com/temporalcore/tempo/temporal"
//	)
//
//	t, _ := tempo.ParseWKT("{1.0@2020-01-01, 2.0@2020-01-02, 3.0@2020-01-03}")
//	restricted, _ := temporal.AtValue(t, basevalue.NewFloat(2))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around wkt/wkb for
// the most common parse/print/encode/decode use cases. For advanced
// usage (restriction, lifting, synchronization, derived constructors),
// use the timeset, stbox, temporal, segment, wkt, wkb and derived
// packages directly.
package tempo

import (
	"github.com/temporalcore/tempo/stbox"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/wkb"
	"github.com/temporalcore/tempo/wkt"
)

// ParseWKT parses s as a Temporal value using the §4.8 WKT grammar.
func ParseWKT(s string, opts ...wkt.Option) (temporal.Temporal, error) {
	return wkt.Parse(s, opts...)
}

// FormatWKT renders t back to its WKT textual form.
func FormatWKT(t temporal.Temporal) (string, error) {
	return wkt.Format(t)
}

// ParseSTBox parses s as an STBox using the §4.8 STBox grammar.
func ParseSTBox(s string, opts ...wkt.Option) (stbox.STBox, error) {
	return wkt.ParseSTBox(s, opts...)
}

// FormatSTBox renders b back to its WKT textual form.
func FormatSTBox(b stbox.STBox) string {
	return wkt.FormatSTBox(b)
}

// EncodeWKB encodes t to the §4.9 binary WKB frame.
func EncodeWKB(t temporal.Temporal, opts ...wkb.Option) ([]byte, error) {
	return wkb.Encode(t, opts...)
}

// DecodeWKB decodes a §4.9 binary WKB frame back to a Temporal value.
func DecodeWKB(b []byte, opts ...wkb.Option) (temporal.Temporal, error) {
	return wkb.Decode(b, opts...)
}

// EncodeHexWKB encodes t to the hex-WKB text variant.
func EncodeHexWKB(t temporal.Temporal, opts ...wkb.Option) (string, error) {
	return wkb.EncodeHex(t, opts...)
}

// DecodeHexWKB decodes a hex-WKB string back to a Temporal value.
func DecodeHexWKB(s string, opts ...wkb.Option) (temporal.Temporal, error) {
	return wkb.DecodeHex(s, opts...)
}

// EncodeSTBoxWKB encodes b to its own binary WKB frame (§1.4/§8.6).
func EncodeSTBoxWKB(b stbox.STBox, opts ...wkb.Option) ([]byte, error) {
	return wkb.EncodeSTBox(b, opts...)
}

// DecodeSTBoxWKB decodes a binary WKB frame back to an STBox.
func DecodeSTBoxWKB(b []byte, opts ...wkb.Option) (stbox.STBox, error) {
	return wkb.DecodeSTBox(b, opts...)
}
