package temporal

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/timeset"
)

// sliceOverPeriod extracts the portion of seq covered by p, which must
// lie within seq's support. Boundary values are sampled via ValueAt
// unless overridden by lowerOverride/upperOverride (used by AtRange,
// which substitutes the range bound for the re-projected segment value
// per §4.7, and by AtValue, which substitutes the target value).
func sliceOverPeriod(seq TSequence, p timeset.Period, lowerOverride, upperOverride *basevalue.Value) (TSequence, error) {
	lowerVal, ok := seq.ValueAt(p.Lower)
	if !ok {
		return TSequence{}, fmt.Errorf("%w: slice lower bound outside sequence support", errs.ErrRestrictViolation)
	}
	if lowerOverride != nil {
		lowerVal = *lowerOverride
	}

	instants := []TInstant{{T: p.Lower, V: lowerVal, TempType: seq.TempTypeV}}

	if p.Upper > p.Lower {
		for _, inst := range seq.Instants {
			if inst.T > p.Lower && inst.T < p.Upper {
				instants = append(instants, inst)
			}
		}

		upperVal, ok := seq.ValueAt(p.Upper)
		if !ok {
			return TSequence{}, fmt.Errorf("%w: slice upper bound outside sequence support", errs.ErrRestrictViolation)
		}
		if upperOverride != nil {
			upperVal = *upperOverride
		}
		instants = append(instants, TInstant{T: p.Upper, V: upperVal, TempType: seq.TempTypeV})
	}

	return NewSequence(instants, seq.Interp, p.LowerInc, p.UpperInc, true)
}

// AtPeriod restricts temp to the portion overlapping p, or returns a nil
// Temporal (not an error) if there is no overlap.
func AtPeriod(temp Temporal, p timeset.Period) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		if p.ContainsTimestamp(t.T) {
			return t, nil
		}

		return nil, nil
	case TSequence:
		overlap, ok := t.Period().Intersect(p)
		if !ok {
			return nil, nil
		}

		return sliceOverPeriod(t, overlap, nil, nil)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			overlap, ok := seq.Period().Intersect(p)
			if !ok {
				continue
			}
			sub, err := sliceOverPeriod(seq, overlap, nil, nil)
			if err != nil {
				return nil, err
			}
			parts = append(parts, sub)
		}
		if len(parts) == 0 {
			return nil, nil
		}

		return MergeArray(parts)
	default:
		return nil, fmt.Errorf("%w: unknown Temporal variant", errs.ErrInternalType)
	}
}

// MinusPeriod restricts temp to the portion NOT overlapping p.
func MinusPeriod(temp Temporal, p timeset.Period) (Temporal, error) {
	ps, err := timeset.NewPeriodSet([]timeset.Period{p})
	if err != nil {
		return nil, err
	}

	return MinusPeriodSet(temp, ps)
}

// AtPeriodSet restricts temp to the portions overlapping any period in ps.
func AtPeriodSet(temp Temporal, ps timeset.PeriodSet) (Temporal, error) {
	var parts []TSequence
	for i := 0; i < ps.Len(); i++ {
		res, err := AtPeriod(temp, ps.At(i))
		if err != nil {
			return nil, err
		}
		parts = append(parts, flattenToSequences(res)...)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts) == 1 && isSingleInstant(parts[0]) {
		return parts[0].Instants[0], nil
	}

	return MergeArray(parts)
}

// MinusPeriodSet restricts temp to the portions not overlapping any
// period in ps.
func MinusPeriodSet(temp Temporal, ps timeset.PeriodSet) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		if ps.ContainsTimestamp(t.T) {
			return nil, nil
		}

		return t, nil
	case TSequence:
		return minusPeriodSetFromSequence(t, ps)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			res, err := minusPeriodSetFromSequence(seq, ps)
			if err != nil {
				return nil, err
			}
			parts = append(parts, flattenToSequences(res)...)
		}
		if len(parts) == 0 {
			return nil, nil
		}

		return MergeArray(parts)
	default:
		return nil, fmt.Errorf("%w: unknown Temporal variant", errs.ErrInternalType)
	}
}

func minusPeriodSetFromSequence(seq TSequence, ps timeset.PeriodSet) (Temporal, error) {
	own, _ := timeset.NewPeriodSet([]timeset.Period{seq.Period()})
	gaps, ok := own.Difference(ps)
	if !ok {
		return nil, nil
	}

	var parts []TSequence
	for i := 0; i < gaps.Len(); i++ {
		sub, err := sliceOverPeriod(seq, gaps.At(i), nil, nil)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub)
	}
	if len(parts) == 0 {
		return nil, nil
	}

	return MergeArray(parts)
}

// flattenToSequences unwraps a Temporal (possibly nil) into its
// component TSequences, promoting a lone TInstant to a singleton
// sequence so callers can feed it back into MergeArray uniformly.
func flattenToSequences(temp Temporal) []TSequence {
	switch t := temp.(type) {
	case nil:
		return nil
	case TInstant:
		seq, err := NewSequence([]TInstant{t}, format.InterpDiscrete, true, true, false)
		if err != nil {
			return nil
		}

		return []TSequence{seq}
	case TSequence:
		return []TSequence{t}
	case TSequenceSet:
		return t.Sequences
	default:
		return nil
	}
}

func isSingleInstant(seq TSequence) bool {
	return len(seq.Instants) == 1
}

// AtTimestamp is a thin wrapper over find_timestamp + value_at_time (§4.7).
func AtTimestamp(temp Temporal, t timeset.Timestamp) (TInstant, bool) {
	switch tv := temp.(type) {
	case TInstant:
		if tv.T == t {
			return tv, true
		}

		return TInstant{}, false
	case TSequence:
		v, ok := tv.ValueAt(t)
		if !ok {
			return TInstant{}, false
		}

		return TInstant{T: t, V: v, TempType: tv.TempTypeV}, true
	case TSequenceSet:
		seq, ok := tv.SequenceAt(t)
		if !ok {
			return TInstant{}, false
		}

		return AtTimestamp(seq, t)
	default:
		return TInstant{}, false
	}
}

// AtTimestampSet samples temp at every timestamp in ts that it covers.
func AtTimestampSet(temp Temporal, ts timeset.TimestampSet) []TInstant {
	var out []TInstant
	for i := 0; i < ts.Len(); i++ {
		inst, ok := AtTimestamp(temp, ts.At(i))
		if ok {
			out = append(out, inst)
		}
	}

	return out
}
