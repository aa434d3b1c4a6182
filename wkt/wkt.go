// Package wkt implements the WKT-style textual parser and printer of
// §4.8: a recursive-descent grammar for Temporal values and a second one
// for STBox, both sharing the teacher's two-pass philosophy — blob.Encoder
// first accumulates a claimed element count (StartMetricID(id,
// numOfDataPoints)) before filling its columnar arrays; wkt's parser
// likewise counts top-level elements of a composite literal before
// allocating the instant/sequence slice it fills on the second pass,
// rather than growing a slice element-by-element.
//
// The spec's grammar leaves the shape of an individual BaseValue literal
// abstract ("BaseValue"). This package resolves that ambiguity (an open
// question, recorded in DESIGN.md) by tagging each spatial/compound kind
// with a keyword mirroring its basevalue ParseElement convention: bare
// numerals for Int/Float, a single-quoted literal for Text, and
// "KIND(...)" for the point-shaped kinds (Point, GeogPoint, CBuffer,
// NPoint, Pose). Parsing of a tag's inner content always defers to
// basevalue.Dispatch.ParseElement, so the tag-stripping done here and the
// field-splitting done in basevalue/*_kind.go never duplicate logic.
package wkt

import (
	"github.com/temporalcore/tempo/internal/options"
)

// Config carries parser options applied via functional Option values
// (internal/options, the same plumbing the teacher's blob package uses
// for its encoder/decoder constructors).
type Config struct {
	// SRID, when non-zero, is used as the default SRID for a parsed
	// Temporal or STBox that carries no explicit "SRID=" prefix. A
	// literal's own explicit SRID takes precedence and is not compared
	// with this value.
	SRID int32

	// Engine-independent: currently just SRID. Grows as new parse-time
	// defaults are needed.
}

// Option configures a Parse or ParseSTBox call.
type Option = options.Option[*Config]

// WithSRID sets the default SRID applied when a literal carries none.
func WithSRID(srid int32) Option {
	return options.NoError[*Config](func(c *Config) { c.SRID = srid })
}

func newConfig(opts []Option) (*Config, error) {
	c := &Config{}
	if err := options.Apply[*Config](c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
