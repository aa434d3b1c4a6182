package temporal

import (
	"fmt"
	"sort"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/segment"
	"github.com/temporalcore/tempo/timeset"
)

// Synchronize aligns a and b onto a shared timeline spanning their
// overlap, returning one TSequence per side with matching instant
// timestamps (§4.6). When withCrossings is true, instants are also
// inserted at every value-crossing point of the two segments (used by
// comparison lifting); when false, only each side's own breakpoints are
// used (used by arithmetic lifting and by the derived constructors).
func Synchronize(a, b TSequence, withCrossings bool) (TSequence, TSequence, error) {
	overlap, ok := a.Period().Intersect(b.Period())
	if !ok {
		return TSequence{}, TSequence{}, fmt.Errorf("%w: sequences do not overlap", errs.ErrDisjointPeriods)
	}

	times := map[timeset.Timestamp]bool{}
	collect := func(s TSequence) {
		for _, inst := range s.Instants {
			if overlap.ContainsTimestamp(inst.T) {
				times[inst.T] = true
			}
		}
	}
	collect(a)
	collect(b)

	ordered := make([]timeset.Timestamp, 0, len(times))
	for t := range times {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	if withCrossings {
		crossings, err := valueCrossings(a, b, ordered)
		if err != nil {
			return TSequence{}, TSequence{}, err
		}
		if len(crossings) > 0 {
			for _, t := range crossings {
				times[t] = true
			}
			ordered = ordered[:0]
			for t := range times {
				ordered = append(ordered, t)
			}
			sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
		}
	}

	aInst, err := sampleAt(a, ordered)
	if err != nil {
		return TSequence{}, TSequence{}, err
	}
	bInst, err := sampleAt(b, ordered)
	if err != nil {
		return TSequence{}, TSequence{}, err
	}

	aSync, err := NewSequence(aInst, a.Interp, overlap.LowerInc, overlap.UpperInc, false)
	if err != nil {
		return TSequence{}, TSequence{}, err
	}
	bSync, err := NewSequence(bInst, b.Interp, overlap.LowerInc, overlap.UpperInc, false)
	if err != nil {
		return TSequence{}, TSequence{}, err
	}

	return aSync, bSync, nil
}

func sampleAt(s TSequence, times []timeset.Timestamp) ([]TInstant, error) {
	out := make([]TInstant, 0, len(times))
	for _, t := range times {
		v, ok := s.ValueAt(t)
		if !ok {
			return nil, fmt.Errorf("%w: timestamp %d not covered by sequence", errs.ErrRestrictViolation, t)
		}
		out = append(out, TInstant{T: t, V: v, TempType: s.TempTypeV})
	}

	return out, nil
}

// valueCrossings finds every instant strictly between consecutive entries
// of ordered (a's and b's merged own breakpoints) at which a's and b's
// interpolated values become equal. Each window [ordered[k-1], ordered[k]]
// is a genuine shared time domain for both sides, so a and b are each
// sampled at the window's ends and handed to segment.Intersection as a
// single synthetic segment pair — mirroring the synchronization loop of
// tsequence.c:985-1005, which inserts a crossing instant between every
// consecutive pair of merged breakpoints via tsegment_intersection.
func valueCrossings(a, b TSequence, ordered []timeset.Timestamp) ([]timeset.Timestamp, error) {
	var out []timeset.Timestamp

	for k := 1; k < len(ordered); k++ {
		lo, hi := ordered[k-1], ordered[k]
		if a.Interp == format.InterpStep && b.Interp == format.InterpStep {
			continue // no crossing possible unless at least one side is linear
		}

		segA, okA := windowSegment(a, lo, hi)
		segB, okB := windowSegment(b, lo, hi)
		if !okA || !okB {
			continue
		}

		t, ok, err := segment.Intersection(segA, segB)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}

	return out, nil
}

// windowSegment builds the synthetic segment representing s's
// interpolated behavior over [lo, hi], by sampling s's own value at each
// end. Discrete sequences have no interior value and never contribute a
// crossing.
func windowSegment(s TSequence, lo, hi timeset.Timestamp) (segment.Segment, bool) {
	if s.Interp == format.InterpDiscrete {
		return segment.Segment{}, false
	}

	v1, ok := s.ValueAt(lo)
	if !ok {
		return segment.Segment{}, false
	}
	v2, ok := s.ValueAt(hi)
	if !ok {
		return segment.Segment{}, false
	}

	return segment.Segment{T1: lo, T2: hi, V1: v1, V2: v2, Interp: s.Interp}, true
}
