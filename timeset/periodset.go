package timeset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/temporalcore/tempo/errs"
)

// PeriodSet is a sequence of pairwise-disjoint, non-adjacent periods in
// ascending order, with a cached bounding period (§3).
type PeriodSet struct {
	periods []Period
	bound   Period
}

// NewPeriodSet builds a PeriodSet from periods, which must already be
// sorted, pairwise disjoint and non-adjacent.
func NewPeriodSet(periods []Period) (PeriodSet, error) {
	if len(periods) == 0 {
		return PeriodSet{}, fmt.Errorf("%w: period set", errs.ErrEmptyInput)
	}

	cp := make([]Period, len(periods))
	copy(cp, periods)
	for i := 1; i < len(cp); i++ {
		if cp[i].Lower < cp[i-1].Upper || (cp[i].Lower == cp[i-1].Upper && (cp[i].LowerInc || cp[i-1].UpperInc)) {
			return PeriodSet{}, fmt.Errorf("%w: period set periods must be disjoint and non-adjacent", errs.ErrOverlap)
		}
	}

	bound, _ := NewPeriod(cp[0].Lower, cp[len(cp)-1].Upper, cp[0].LowerInc, cp[len(cp)-1].UpperInc)

	return PeriodSet{periods: cp, bound: bound}, nil
}

// NewPeriodSetFromUnsorted normalizes an arbitrary (possibly overlapping,
// unsorted) slice of periods into a PeriodSet by sorting then merging
// overlapping/adjacent runs, the way merge_sequences (§4.4) normalizes a
// temporal value's support set.
func NewPeriodSetFromUnsorted(periods []Period) (PeriodSet, error) {
	if len(periods) == 0 {
		return PeriodSet{}, fmt.Errorf("%w: period set", errs.ErrEmptyInput)
	}

	cp := make([]Period, len(periods))
	copy(cp, periods)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Lower != cp[j].Lower {
			return cp[i].Lower < cp[j].Lower
		}

		return cp[i].Upper < cp[j].Upper
	})

	merged := []Period{cp[0]}
	for _, p := range cp[1:] {
		last := merged[len(merged)-1]
		if last.Overlaps(p) || last.Adjacent(p) {
			merged[len(merged)-1] = unionAdjacentOrOverlapping(last, p)
		} else {
			merged = append(merged, p)
		}
	}

	return NewPeriodSet(merged)
}

// Len returns the number of periods in the set.
func (ps PeriodSet) Len() int { return len(ps.periods) }

// At returns the i-th period (0-based, ascending).
func (ps PeriodSet) At(i int) Period { return ps.periods[i] }

// Periods returns a read-only view of the periods. Callers must not
// modify the returned slice.
func (ps PeriodSet) Periods() []Period { return ps.periods }

// Period returns the cached bounding period.
func (ps PeriodSet) Period() Period { return ps.bound }

// FindTimestamp returns the index of the period containing t, via binary
// search over the ascending, disjoint periods (§4.1: "binary search in
// PeriodSet find-timestamp (O(log n))"). Returns -1 if no period
// contains t.
func (ps PeriodSet) FindTimestamp(t Timestamp) int {
	i := sort.Search(len(ps.periods), func(i int) bool { return ps.periods[i].Upper >= t })
	if i < len(ps.periods) && ps.periods[i].ContainsTimestamp(t) {
		return i
	}

	return -1
}

// ContainsTimestamp reports whether t lies within any component period.
func (ps PeriodSet) ContainsTimestamp(t Timestamp) bool {
	return ps.FindTimestamp(t) >= 0
}

// Union returns the PeriodSet covering every instant in either ps or o.
func (ps PeriodSet) Union(o PeriodSet) PeriodSet {
	all := append(append([]Period{}, ps.periods...), o.periods...)
	out, _ := NewPeriodSetFromUnsorted(all)

	return out
}

// Intersect returns the PeriodSet covering instants present in both ps and
// o. Returns false if the result is empty.
func (ps PeriodSet) Intersect(o PeriodSet) (PeriodSet, bool) {
	var result []Period
	for _, p := range ps.periods {
		for _, q := range o.periods {
			if ip, ok := p.Intersect(q); ok {
				result = append(result, ip)
			}
		}
	}
	if len(result) == 0 {
		return PeriodSet{}, false
	}
	out, _ := NewPeriodSetFromUnsorted(result)

	return out, true
}

// Difference returns ps minus o. Returns false if the result is empty.
func (ps PeriodSet) Difference(o PeriodSet) (PeriodSet, bool) {
	remaining := ps.periods
	for _, q := range o.periods {
		var next []Period
		for _, p := range remaining {
			next = append(next, subtractPeriod(p, q)...)
		}
		remaining = next
	}
	if len(remaining) == 0 {
		return PeriodSet{}, false
	}
	out, _ := NewPeriodSetFromUnsorted(remaining)

	return out, true
}

// subtractPeriod returns p minus q as zero, one or two periods.
func subtractPeriod(p, q Period) []Period {
	inter, ok := p.Intersect(q)
	if !ok {
		return []Period{p}
	}

	var out []Period
	if p.Lower < inter.Lower || (p.Lower == inter.Lower && p.LowerInc && !inter.LowerInc) {
		left, err := NewPeriod(p.Lower, inter.Lower, p.LowerInc, !inter.LowerInc)
		if err == nil {
			out = append(out, left)
		}
	}
	if p.Upper > inter.Upper || (p.Upper == inter.Upper && p.UpperInc && !inter.UpperInc) {
		right, err := NewPeriod(inter.Upper, p.Upper, !inter.UpperInc, p.UpperInc)
		if err == nil {
			out = append(out, right)
		}
	}

	return out
}

// Overlaps reports whether ps and o share at least one instant.
func (ps PeriodSet) Overlaps(o PeriodSet) bool {
	if !ps.bound.Overlaps(o.bound) {
		return false
	}
	for _, p := range ps.periods {
		for _, q := range o.periods {
			if p.Overlaps(q) {
				return true
			}
		}
	}

	return false
}

// Contains reports whether every instant of o lies within ps.
func (ps PeriodSet) Contains(o PeriodSet) bool {
	_, rem := o.Difference(ps)

	return !rem
}

// ContainsPeriod reports whether p lies entirely within ps.
func (ps PeriodSet) ContainsPeriod(p Period) bool {
	for _, q := range ps.periods {
		if q.Contains(p) {
			return true
		}
	}

	return false
}

// Adjacent reports whether ps and o's bounding periods touch with exactly
// one side inclusive and neither overlaps the other's interior (the
// periodset-level analogue of Period.Adjacent, §4.1).
func (ps PeriodSet) Adjacent(o PeriodSet) bool {
	return ps.bound.Adjacent(o.bound)
}

// String formats ps in WKT notation, e.g. "{[2020-01-01 00:00:00, 2020-01-02 00:00:00]}".
func (ps PeriodSet) String() string {
	parts := make([]string, len(ps.periods))
	for i, p := range ps.periods {
		parts[i] = p.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
