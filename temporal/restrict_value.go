package temporal

import (
	"fmt"
	"sort"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/segment"
	"github.com/temporalcore/tempo/timeset"
)

// matchedPeriods returns the sorted periods of seq whose value equals
// target (§4.7): under Step it is the half-open run where the held value
// equals target; under Linear it is an isolated instant wherever the
// segment crosses target, or a closed run across any segment whose
// endpoints both equal target (a constant sub-run). Runs of consecutive
// constant segments share their common endpoint; all other periods are
// disjoint.
func matchedPeriods(seq TSequence, target basevalue.Value) ([]timeset.Period, error) {
	disp := basevalue.For(seq.TempTypeV.Base)
	n := len(seq.Instants)

	var periods []timeset.Period

	switch seq.Interp {
	case format.InterpStep, format.InterpDiscrete:
		i := 0
		for i < n-1 {
			if !disp.Equal(seq.Instants[i].V, target) {
				i++

				continue
			}
			start := i
			for i < n-1 && disp.Equal(seq.Instants[i].V, target) {
				i++
			}
			lo, hi := seq.Instants[start].T, seq.Instants[i].T
			loInc := start > 0 || seq.LowerInc
			hiInc := i == n-1 && seq.UpperInc && disp.Equal(seq.Instants[i].V, target)
			p, err := timeset.NewPeriod(lo, hi, loInc, hiInc)
			if err != nil {
				return nil, err
			}
			periods = append(periods, p)
		}
		if n == 1 && disp.Equal(seq.Instants[0].V, target) {
			p, err := timeset.NewPeriod(seq.Instants[0].T, seq.Instants[0].T, true, true)
			if err != nil {
				return nil, err
			}
			periods = append(periods, p)
		}

	default: // Linear
		for i := 0; i < n-1; i++ {
			v1, v2 := seq.Instants[i].V, seq.Instants[i+1].V
			switch {
			case disp.Equal(v1, target) && disp.Equal(v2, target):
				loInc := i == 0 && seq.LowerInc || i > 0
				hiInc := i == n-2 && seq.UpperInc || i < n-2
				p, err := timeset.NewPeriod(seq.Instants[i].T, seq.Instants[i+1].T, loInc, hiInc)
				if err != nil {
					return nil, err
				}
				periods = append(periods, p)
			default:
				roots, err := segment.ValueIntersection(seq.segmentAt(i), target)
				if err != nil {
					continue // kind has no closed-form crossing solver: only exact instant matches apply
				}
				for _, root := range roots {
					if root <= seq.Instants[i].T || root >= seq.Instants[i+1].T {
						continue
					}
					p, err := timeset.NewPeriod(root, root, true, true)
					if err != nil {
						return nil, err
					}
					periods = append(periods, p)
				}
			}
		}
		for i, inst := range seq.Instants {
			if !disp.Equal(inst.V, target) {
				continue
			}
			covered := false
			for _, p := range periods {
				if p.ContainsTimestamp(inst.T) {
					covered = true

					break
				}
			}
			if covered {
				continue // already inside a constant run
			}
			loInc := i > 0 || seq.LowerInc
			hiInc := i < n-1 || seq.UpperInc
			p, err := timeset.NewPeriod(inst.T, inst.T, loInc, hiInc)
			if err != nil {
				return nil, err
			}
			periods = append(periods, p)
		}
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].Lower < periods[j].Lower })

	return periods, nil
}

// AtValue restricts temp to the instants/runs where its value equals
// target, producing a SequenceSet (or a single Instant) per §4.7.
func AtValue(temp Temporal, target basevalue.Value) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		if basevalue.For(t.TempType.Base).Equal(t.V, target) {
			return t, nil
		}

		return nil, nil
	case TSequence:
		return atValueSequence(t, target)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			res, err := atValueSequence(seq, target)
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

func atValueSequence(seq TSequence, target basevalue.Value) (Temporal, error) {
	matched, err := matchedPeriods(seq, target)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, nil
	}

	var parts []TSequence
	for _, p := range matched {
		sub, err := sliceOverPeriod(seq, p, &target, &target)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub)
	}
	if len(parts) == 1 && isSingleInstant(parts[0]) {
		return parts[0].Instants[0], nil
	}

	return MergeArray(parts)
}

// MinusValue restricts temp to the portions where its value does NOT
// equal target.
func MinusValue(temp Temporal, target basevalue.Value) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		if basevalue.For(t.TempType.Base).Equal(t.V, target) {
			return nil, nil
		}

		return t, nil
	case TSequence:
		return minusValueSequence(t, target)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			res, err := minusValueSequence(seq, target)
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

func minusValueSequence(seq TSequence, target basevalue.Value) (Temporal, error) {
	matched, err := matchedPeriods(seq, target)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return seq, nil
	}

	matchedPS, err := timeset.NewPeriodSet(matched)
	if err != nil {
		return nil, err
	}
	own, _ := timeset.NewPeriodSet([]timeset.Period{seq.Period()})
	gaps, ok := own.Difference(matchedPS)
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

// numericOf reads a numeric Value as a float64 (Int or Float only).
func numericOf(v basevalue.Value) (float64, error) {
	switch v.Kind {
	case format.KindInt:
		return float64(v.I), nil
	case format.KindFloat:
		return v.F, nil
	default:
		return 0, fmt.Errorf("%w: range restriction requires a numeric base kind", errs.ErrRestrictViolation)
	}
}

// AtRange restricts a numeric temp to the portions whose value falls
// within [lo, hi] (inclusivity per loInc/hiInc); boundary instants take
// the exact range bound as their value rather than the re-projected
// segment value (§4.7).
func AtRange(temp Temporal, lo, hi float64, loInc, hiInc bool) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		v, err := numericOf(t.V)
		if err != nil {
			return nil, err
		}
		if inRange(v, lo, hi, loInc, hiInc) {
			return t, nil
		}

		return nil, nil
	case TSequence:
		return atRangeSequence(t, lo, hi, loInc, hiInc)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			res, err := atRangeSequence(seq, lo, hi, loInc, hiInc)
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

func inRange(v, lo, hi float64, loInc, hiInc bool) bool {
	if v < lo || (v == lo && !loInc) {
		return false
	}
	if v > hi || (v == hi && !hiInc) {
		return false
	}

	return true
}

func atRangeSequence(seq TSequence, lo, hi float64, loInc, hiInc bool) (Temporal, error) {
	n := len(seq.Instants)
	var periods []timeset.Period
	overrides := map[timeset.Timestamp]basevalue.Value{}

	for i := 0; i < n-1; i++ {
		v1, err := numericOf(seq.Instants[i].V)
		if err != nil {
			return nil, err
		}
		v2, err := numericOf(seq.Instants[i+1].V)
		if err != nil {
			return nil, err
		}
		t1, t2 := seq.Instants[i].T, seq.Instants[i+1].T

		segLo, segHi := v1, v2
		if segLo > segHi {
			segLo, segHi = segHi, segLo
		}
		if segHi < lo || segLo > hi {
			continue
		}

		cutLo, cutHi := t1, t2
		cutLoInc := i == 0 && seq.LowerInc || i > 0
		cutHiInc := i == n-2 && seq.UpperInc || i < n-2

		if seq.Interp == format.InterpLinear {
			if v1 < lo || v1 > hi {
				root, val, ok := rangeCrossing(seq, i, lo, hi, v1, v2)
				if ok {
					cutLo, cutLoInc = root, true
					overrides[root] = val
				}
			}
			if v2 < lo || v2 > hi {
				root, val, ok := rangeCrossingFromEnd(seq, i, lo, hi, v1, v2)
				if ok {
					cutHi, cutHiInc = root, true
					overrides[root] = val
				}
			}
		} else if !inRange(v1, lo, hi, true, true) {
			continue // Step: the whole half-open run carries v1, all-or-nothing
		}

		if cutLo > cutHi || (cutLo == cutHi && !(cutLoInc && cutHiInc)) {
			continue
		}
		p, err := timeset.NewPeriod(cutLo, cutHi, cutLoInc, cutHiInc)
		if err != nil {
			continue
		}
		periods = append(periods, p)
	}

	if n == 1 {
		v, err := numericOf(seq.Instants[0].V)
		if err != nil {
			return nil, err
		}
		if inRange(v, lo, hi, loInc, hiInc) {
			p, _ := timeset.NewPeriod(seq.Instants[0].T, seq.Instants[0].T, true, true)
			periods = append(periods, p)
		}
	}

	if len(periods) == 0 {
		return nil, nil
	}

	var parts []TSequence
	for _, p := range periods {
		var loOv, hiOv *basevalue.Value
		if v, ok := overrides[p.Lower]; ok {
			loOv = &v
		}
		if v, ok := overrides[p.Upper]; ok {
			hiOv = &v
		}
		sub, err := sliceOverPeriod(seq, p, loOv, hiOv)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub)
	}

	return MergeArray(parts)
}

// boundValue builds a Value of kind carrying the numeric literal f,
// matching whichever of Int/Float the sequence's own values use.
func boundValue(kind format.BaseKind, f float64) basevalue.Value {
	if kind == format.KindInt {
		return basevalue.NewInt(int64(f))
	}

	return basevalue.NewFloat(f)
}

// rangeCrossing locates where segment i enters [lo, hi] from outside it,
// starting from its v1 endpoint, returning the crossing timestamp and
// the exact range bound it crossed.
func rangeCrossing(seq TSequence, i int, lo, hi, v1, v2 float64) (timeset.Timestamp, basevalue.Value, bool) {
	bound := lo
	if v1 > hi {
		bound = hi
	}
	roots, err := segment.ValueIntersection(seq.segmentAt(i), boundValue(seq.TempTypeV.Base, bound))
	if err != nil || len(roots) == 0 {
		return 0, basevalue.Value{}, false
	}

	return roots[0], boundValue(seq.TempTypeV.Base, bound), true
}

func rangeCrossingFromEnd(seq TSequence, i int, lo, hi, v1, v2 float64) (timeset.Timestamp, basevalue.Value, bool) {
	bound := lo
	if v2 > hi {
		bound = hi
	}
	roots, err := segment.ValueIntersection(seq.segmentAt(i), boundValue(seq.TempTypeV.Base, bound))
	if err != nil || len(roots) == 0 {
		return 0, basevalue.Value{}, false
	}

	return roots[len(roots)-1], boundValue(seq.TempTypeV.Base, bound), true
}

// MinusRange restricts a numeric temp to the portions whose value falls
// outside [lo, hi].
func MinusRange(temp Temporal, lo, hi float64, loInc, hiInc bool) (Temporal, error) {
	at, err := AtRange(temp, lo, hi, loInc, hiInc)
	if err != nil {
		return nil, err
	}

	atPS := flattenToSequences(at)
	if len(atPS) == 0 {
		return temp, nil
	}

	switch t := temp.(type) {
	case TSequence:
		return subtractSequencesFromSequence(t, atPS)
	case TSequenceSet:
		var parts []TSequence
		for _, seq := range t.Sequences {
			res, err := subtractSequencesFromSequence(seq, atPS)
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
		return nil, nil
	}
}

func subtractSequencesFromSequence(seq TSequence, cut []TSequence) (Temporal, error) {
	periods := make([]timeset.Period, 0, len(cut))
	for _, c := range cut {
		if c.Period().Overlaps(seq.Period()) {
			periods = append(periods, c.Period())
		}
	}
	if len(periods) == 0 {
		return seq, nil
	}

	cutPS, err := timeset.NewPeriodSetFromUnsorted(periods)
	if err != nil {
		return nil, err
	}
	own, _ := timeset.NewPeriodSet([]timeset.Period{seq.Period()})
	gaps, ok := own.Difference(cutPS)
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
