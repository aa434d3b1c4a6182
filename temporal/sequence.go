package temporal

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/segment"
	"github.com/temporalcore/tempo/timeset"
)

// TSequence is an ordered, normalized run of TInstants sharing one
// TempType and interpolation mode (§3).
type TSequence struct {
	Instants           []TInstant
	TempTypeV          format.TempType
	Interp             format.Interpolation
	LowerInc, UpperInc bool
	bbox               BBox
}

// NewSequence builds a TSequence, validating the §3 invariants and
// normalizing unless normalize is false.
func NewSequence(instants []TInstant, interp format.Interpolation, lowerInc, upperInc bool, normalize bool) (TSequence, error) {
	if len(instants) == 0 {
		return TSequence{}, fmt.Errorf("%w: sequence", errs.ErrEmptyInput)
	}

	tt := instants[0].TempType
	for i, inst := range instants {
		if inst.TempType != tt {
			return TSequence{}, fmt.Errorf("%w: sequence instants must share one TempType", errs.ErrMixedTempType)
		}
		if i > 0 && inst.T <= instants[i-1].T {
			return TSequence{}, fmt.Errorf("%w: sequence timestamps must be strictly increasing", errs.ErrNonMonotonic)
		}
	}

	if interp == format.InterpLinear && !tt.Base.Continuous() {
		return TSequence{}, fmt.Errorf("%w: linear interpolation requires a continuous base kind", errs.ErrInterpolationIllegal)
	}
	if interp == format.InterpDiscrete && !(lowerInc && upperInc) {
		return TSequence{}, fmt.Errorf("%w: a discrete sequence must have both bounds inclusive", errs.ErrBoundInclusivity)
	}
	if interp == format.InterpStep && !upperInc && len(instants) >= 2 {
		last, prev := instants[len(instants)-1], instants[len(instants)-2]
		if !basevalue.For(tt.Base).Equal(last.V, prev.V) {
			return TSequence{}, fmt.Errorf("%w: a step sequence with exclusive upper bound must repeat its last value", errs.ErrInvalidArg)
		}
	}

	cp := make([]TInstant, len(instants))
	copy(cp, instants)
	if normalize {
		cp = normalizeInstants(cp, tt.Base, interp)
	}

	seq := TSequence{
		Instants: cp, TempTypeV: tt, Interp: interp,
		LowerInc: lowerInc, UpperInc: upperInc,
	}
	seq.bbox = boundsOf(tt.Base, cp)

	return seq, nil
}

// normalizeInstants removes redundant interior breakpoints (§3: "three
// consecutive collinear linear instants, or two consecutive equal step
// instants followed by a third, are reduced").
func normalizeInstants(instants []TInstant, kind format.BaseKind, interp format.Interpolation) []TInstant {
	if len(instants) < 3 {
		return instants
	}

	out := make([]TInstant, 0, len(instants))
	out = append(out, instants[0])

	for i := 1; i < len(instants)-1; i++ {
		prev, cur, next := out[len(out)-1], instants[i], instants[i+1]

		switch interp {
		case format.InterpLinear:
			if segment.Collinear(kind, prev.T, cur.T, next.T, prev.V, cur.V, next.V) {
				continue // cur is redundant: prev..next already interpolates through it
			}
		case format.InterpStep:
			if basevalue.For(kind).Equal(prev.V, cur.V) {
				continue // cur repeats prev's value under step semantics
			}
		}

		out = append(out, cur)
	}
	out = append(out, instants[len(instants)-1])

	return out
}

func (s TSequence) Subtype() format.Subtype { return format.SubtypeSequence }
func (s TSequence) Type() format.TempType   { return s.TempTypeV }
func (s TSequence) Bounds() BBox            { return s.bbox }

func (s TSequence) Timespan() timeset.PeriodSet {
	p, _ := timeset.NewPeriod(s.Instants[0].T, s.Instants[len(s.Instants)-1].T, s.LowerInc, s.UpperInc)
	ps, _ := timeset.NewPeriodSet([]timeset.Period{p})

	return ps
}

// Period returns s's bounding period directly (a convenience accessor
// used throughout lift/sync/restrict, since it is by far the most common
// thing callers want from Timespan()).
func (s TSequence) Period() timeset.Period {
	p, _ := timeset.NewPeriod(s.Instants[0].T, s.Instants[len(s.Instants)-1].T, s.LowerInc, s.UpperInc)

	return p
}

// FindTimestamp returns an index i such that inst[i].t <= t <= inst[i+1].t
// via binary search (§4.4), or -1 if t falls on an excluded endpoint or
// outside the sequence's span.
func (s TSequence) FindTimestamp(t timeset.Timestamp) int {
	if !s.Period().ContainsTimestamp(t) {
		return -1
	}

	lo, hi := 0, len(s.Instants)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.Instants[mid].T <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	if lo == len(s.Instants)-1 && s.Instants[lo].T != t {
		return -1
	}

	return lo
}

// segmentAt returns the Segment spanning inst[i] and inst[i+1].
func (s TSequence) segmentAt(i int) segment.Segment {
	return segment.Segment{
		T1: s.Instants[i].T, T2: s.Instants[i+1].T,
		V1: s.Instants[i].V, V2: s.Instants[i+1].V,
		Interp: s.Interp,
	}
}

// ValueAt returns s's value at t, or false if t falls outside s's
// temporal extent (honoring bound inclusivity).
func (s TSequence) ValueAt(t timeset.Timestamp) (basevalue.Value, bool) {
	if !s.Period().ContainsTimestamp(t) {
		return basevalue.Value{}, false
	}

	i := s.FindTimestamp(t)
	if i < 0 {
		return basevalue.Value{}, false
	}
	if i == len(s.Instants)-1 || s.Instants[i].T == t {
		return s.Instants[i].V, true
	}

	v, err := segment.ValueAtTime(s.segmentAt(i), t)
	if err != nil {
		return basevalue.Value{}, false
	}

	return v, true
}
