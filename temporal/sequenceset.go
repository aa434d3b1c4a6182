package temporal

import (
	"fmt"
	"sort"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/timeset"
)

// TSequenceSet is an ordered run of pairwise non-overlapping TSequences
// sharing one TempType and interpolation mode (§3).
type TSequenceSet struct {
	Sequences []TSequence
	TempTypeV format.TempType
	Interp    format.Interpolation
	bbox      BBox
}

// NewSequenceSet builds a TSequenceSet from component sequences, sorting
// them by start time and merging adjacent runs via MergeArray (§4.4);
// components that overlap otherwise are rejected with ErrOverlap.
func NewSequenceSet(sequences []TSequence) (TSequenceSet, error) {
	if len(sequences) == 0 {
		return TSequenceSet{}, fmt.Errorf("%w: sequence set", errs.ErrEmptyInput)
	}

	tt, interp := sequences[0].TempTypeV, sequences[0].Interp
	for _, s := range sequences {
		if s.TempTypeV != tt || s.Interp != interp {
			return TSequenceSet{}, fmt.Errorf("%w: sequence set components must share TempType and interpolation", errs.ErrMixedTempType)
		}
	}

	return MergeArray(sequences)
}

// MergeArray sorts sequences by start time and glues together any pair
// that mergeSequences can join (sharing a boundary instant with a matching
// value), per §4.4. Other overlapping components make it fail with
// ErrOverlap; disjoint ones are kept apart as distinct elements of the set.
func MergeArray(sequences []TSequence) (TSequenceSet, error) {
	sorted := make([]TSequence, len(sequences))
	copy(sorted, sequences)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Instants[0].T < sorted[j].Instants[0].T
	})

	tt, interp := sorted[0].TempTypeV, sorted[0].Interp

	merged := []TSequence{sorted[0]}
	for _, next := range sorted[1:] {
		last := merged[len(merged)-1]
		glued, ok := mergeSequences(last, next)
		if ok {
			merged[len(merged)-1] = glued
			continue
		}
		if last.Period().Overlaps(next.Period()) {
			return TSequenceSet{}, fmt.Errorf("%w: sequence set components must not overlap", errs.ErrOverlap)
		}
		merged = append(merged, next)
	}

	bbox := merged[0].bbox
	for _, s := range merged[1:] {
		bbox = mergeBounds(bbox, s.bbox)
	}

	return TSequenceSet{Sequences: merged, TempTypeV: tt, Interp: interp, bbox: bbox}, nil
}

// mergeSequences glues a and b into one sequence when they touch at a
// shared boundary instant (b starts exactly where a ends, at least one
// side includes that instant, and the values there match) — the
// adjacency rule of §4.4.
func mergeSequences(a, b TSequence) (TSequence, bool) {
	aEnd, bStart := a.Instants[len(a.Instants)-1], b.Instants[0]
	if aEnd.T != bStart.T {
		return TSequence{}, false
	}
	if !a.UpperInc && !b.LowerInc {
		return TSequence{}, false // neither side covers the boundary instant: a gap, not adjacency
	}
	if !basevalue.For(a.TempTypeV.Base).Equal(aEnd.V, bStart.V) {
		return TSequence{}, false // same instant, different values: a jump, kept as distinct set elements
	}

	instants := make([]TInstant, 0, len(a.Instants)+len(b.Instants)-1)
	instants = append(instants, a.Instants...)
	instants = append(instants, b.Instants[1:]...)

	glued, err := NewSequence(instants, a.Interp, a.LowerInc, b.UpperInc, true)
	if err != nil {
		return TSequence{}, false
	}

	return glued, true
}

func (s TSequenceSet) Subtype() format.Subtype { return format.SubtypeSequenceSet }
func (s TSequenceSet) Type() format.TempType   { return s.TempTypeV }
func (s TSequenceSet) Bounds() BBox            { return s.bbox }

func (s TSequenceSet) Timespan() timeset.PeriodSet {
	periods := make([]timeset.Period, len(s.Sequences))
	for i, seq := range s.Sequences {
		periods[i] = seq.Period()
	}
	ps, _ := timeset.NewPeriodSet(periods)

	return ps
}

// SequenceAt returns the component sequence covering t, if any.
func (s TSequenceSet) SequenceAt(t timeset.Timestamp) (TSequence, bool) {
	i := sort.Search(len(s.Sequences), func(i int) bool {
		return s.Sequences[i].Period().Upper >= t
	})
	if i == len(s.Sequences) {
		return TSequence{}, false
	}
	if !s.Sequences[i].Period().ContainsTimestamp(t) {
		return TSequence{}, false
	}

	return s.Sequences[i], true
}
