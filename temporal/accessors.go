package temporal

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/timeset"
)

// StartValue and EndValue return a sequence's first and last values.
func (s TSequence) StartValue() basevalue.Value { return s.Instants[0].V }
func (s TSequence) EndValue() basevalue.Value   { return s.Instants[len(s.Instants)-1].V }

// ValueN returns the value of the n'th instant (0-based).
func (s TSequence) ValueN(n int) (basevalue.Value, error) {
	if n < 0 || n >= len(s.Instants) {
		return basevalue.Value{}, fmt.Errorf("%w: instant index %d out of range", errs.ErrInvalidArg, n)
	}

	return s.Instants[n].V, nil
}

// Values returns the sequence's deduplicated set of distinct values, in
// temporal order of first occurrence (§4.4).
func (s TSequence) Values() []basevalue.Value {
	return dedupValues(s.TempTypeV.Base, s.Instants)
}

func dedupValues(kind format.BaseKind, instants []TInstant) []basevalue.Value {
	disp := basevalue.For(kind)
	out := make([]basevalue.Value, 0, len(instants))
	for _, inst := range instants {
		dup := false
		for _, v := range out {
			if disp.Equal(v, inst.V) {
				dup = true

				break
			}
		}
		if !dup {
			out = append(out, inst.V)
		}
	}

	return out
}

// MinValue and MaxValue are only defined for numeric sequences, read
// from the cached TBox (§3).
func (s TSequence) MinValue() (float64, bool) {
	if s.bbox.TBox == nil {
		return 0, false
	}

	return s.bbox.TBox.Min, true
}

func (s TSequence) MaxValue() (float64, bool) {
	if s.bbox.TBox == nil {
		return 0, false
	}

	return s.bbox.TBox.Max, true
}

// Duration returns the sequence's temporal span.
func (s TSequence) Duration() timeset.Interval {
	return s.Instants[len(s.Instants)-1].T.Sub(s.Instants[0].T)
}

// ShiftScale translates every instant by shift and rescales the
// sequence's span by factor around its start time (§4.4).
func ShiftScale(s TSequence, shift timeset.Interval, factor float64) (TSequence, error) {
	if len(s.Instants) == 1 {
		shifted := TInstant{T: s.Instants[0].T.AddInterval(shift), V: s.Instants[0].V, TempType: s.Instants[0].TempType}

		return NewSequence([]TInstant{shifted}, s.Interp, s.LowerInc, s.UpperInc, false)
	}

	start := s.Instants[0].T

	out := make([]TInstant, len(s.Instants))
	for i, inst := range s.Instants {
		offsetMicros := int64(float64(inst.T-start) * factor)
		t := start.AddInterval(timeset.Interval{Micros: offsetMicros}).AddInterval(shift)
		out[i] = TInstant{T: t, V: inst.V, TempType: inst.TempType}
	}

	return NewSequence(out, s.Interp, s.LowerInc, s.UpperInc, false)
}

// Values on a sequence set unions the deduplicated values of its
// components.
func (s TSequenceSet) Values() []basevalue.Value {
	all := make([]TInstant, 0)
	for _, seq := range s.Sequences {
		all = append(all, seq.Instants...)
	}

	return dedupValues(s.TempTypeV.Base, all)
}

func (s TSequenceSet) Duration() timeset.Interval {
	var total timeset.Interval
	for _, seq := range s.Sequences {
		total.Micros += seq.Duration().Micros
	}

	return total
}

func (s TSequenceSet) MinValue() (float64, bool) {
	if s.bbox.TBox == nil {
		return 0, false
	}

	return s.bbox.TBox.Min, true
}

func (s TSequenceSet) MaxValue() (float64, bool) {
	if s.bbox.TBox == nil {
		return 0, false
	}

	return s.bbox.TBox.Max, true
}
