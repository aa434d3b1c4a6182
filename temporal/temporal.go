// Package temporal implements the tagged-union temporal value model of
// §3/§4.4, its constructors and accessors (§4.4), synchronization and
// lifting (§4.6), and the restriction engine (§4.7).
//
// Temporal is realized as an interface implemented by the three concrete
// subtypes (TInstant, TSequence, TSequenceSet) rather than as a single
// struct with nil-able variant fields — the idiomatic Go rendering of a
// tagged union, used the same way the teacher keeps NumericBlob and
// TextBlob as distinct concrete types behind a shared `blob.Blob`-style
// accessor contract rather than one struct trying to be both.
package temporal

import (
	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/timeset"
)

// Temporal is the tagged union of §3: "one of {Instant, Sequence
// (possibly Discrete), SequenceSet}". The discrete sub-case of Sequence
// is a TSequence with Interp == format.InterpDiscrete, not a separate
// Go type (§3).
type Temporal interface {
	// Subtype reports which of the three concrete variants this value is.
	Subtype() format.Subtype
	// Type reports the TempType (BaseKind + continuity) shared by every
	// instant the value carries.
	Type() format.TempType
	// Timespan returns the PeriodSet of support times: a single instant
	// for TInstant, the contiguous bounding period for TSequence, and the
	// union of component periods for TSequenceSet (§4.4).
	Timespan() timeset.PeriodSet
	// Bounds returns the cached bounding box (§3).
	Bounds() BBox
}

// TInstant is a single (base-value, timestamp) pair tagged with a
// TempType (§3).
type TInstant struct {
	T        timeset.Timestamp
	V        basevalue.Value
	TempType format.TempType
}

// NewInstant builds a TInstant.
func NewInstant(t timeset.Timestamp, v basevalue.Value) TInstant {
	return TInstant{T: t, V: v, TempType: format.NewTempType(v.Kind)}
}

func (i TInstant) Subtype() format.Subtype { return format.SubtypeInstant }
func (i TInstant) Type() format.TempType   { return i.TempType }

func (i TInstant) Timespan() timeset.PeriodSet {
	ps, _ := timeset.NewPeriodSet([]timeset.Period{timeset.Instant(i.T)})

	return ps
}

func (i TInstant) Bounds() BBox { return boundsOf(i.TempType.Base, []TInstant{i}) }
