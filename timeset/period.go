package timeset

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
)

// Period is an ordered pair of timestamps with independent lower/upper
// inclusivity flags (§3). Invariant: Lower <= Upper, and Lower == Upper
// implies both bounds inclusive.
type Period struct {
	Lower, Upper Timestamp
	LowerInc     bool
	UpperInc     bool
}

// NewPeriod builds a Period, validating the §3 invariant.
func NewPeriod(lower, upper Timestamp, lowerInc, upperInc bool) (Period, error) {
	if lower > upper {
		return Period{}, fmt.Errorf("%w: period lower %d > upper %d", errs.ErrInvalidArg, lower, upper)
	}
	if lower == upper && !(lowerInc && upperInc) {
		return Period{}, fmt.Errorf("%w: instantaneous period must have both bounds inclusive", errs.ErrBoundInclusivity)
	}

	return Period{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc}, nil
}

// Instant returns the degenerate Period [t, t].
func Instant(t Timestamp) Period {
	return Period{Lower: t, Upper: t, LowerInc: true, UpperInc: true}
}

// IsInstant reports whether p spans a single instant.
func (p Period) IsInstant() bool {
	return p.Lower == p.Upper
}

// ContainsTimestamp reports whether t lies within p, honoring bound inclusivity.
func (p Period) ContainsTimestamp(t Timestamp) bool {
	if t < p.Lower || t > p.Upper {
		return false
	}
	if t == p.Lower && !p.LowerInc {
		return false
	}
	if t == p.Upper && !p.UpperInc {
		return false
	}

	return true
}

// Contains reports whether q is entirely within p.
func (p Period) Contains(q Period) bool {
	if q.Lower < p.Lower || q.Upper > p.Upper {
		return false
	}
	if q.Lower == p.Lower && !p.LowerInc && q.LowerInc {
		return false
	}
	if q.Upper == p.Upper && !p.UpperInc && q.UpperInc {
		return false
	}

	return true
}

// Contained reports whether p is entirely within q (mirror of Contains).
func (p Period) Contained(q Period) bool {
	return q.Contains(p)
}

// Overlaps reports whether p and q share at least one instant.
func (p Period) Overlaps(q Period) bool {
	if p.Upper < q.Lower || q.Upper < p.Lower {
		return false
	}
	if p.Upper == q.Lower && !(p.UpperInc && q.LowerInc) {
		return false
	}
	if q.Upper == p.Lower && !(q.UpperInc && p.LowerInc) {
		return false
	}

	return true
}

// Adjacent reports whether p and q's bounds meet with exactly one side
// inclusive (§4.1: "bounds meet and exactly one is inclusive").
func (p Period) Adjacent(q Period) bool {
	if p.Upper == q.Lower {
		return p.UpperInc != q.LowerInc
	}
	if q.Upper == p.Lower {
		return q.UpperInc != p.LowerInc
	}

	return false
}

// Equal reports bound-for-bound equality.
func (p Period) Equal(q Period) bool {
	return p.Lower == q.Lower && p.Upper == q.Upper && p.LowerInc == q.LowerInc && p.UpperInc == q.UpperInc
}

// StrictlyBefore reports whether p lies entirely, and non-adjacently in
// the inclusive sense, before q: p's upper bound is less than q's lower
// bound, or they meet at a shared instant excluded by at least one side.
func (p Period) StrictlyBefore(q Period) bool {
	if p.Upper < q.Lower {
		return true
	}
	if p.Upper == q.Lower && !(p.UpperInc && q.LowerInc) {
		return true
	}

	return false
}

// StrictlyAfter is the mirror of StrictlyBefore.
func (p Period) StrictlyAfter(q Period) bool {
	return q.StrictlyBefore(p)
}

// OverlapBefore reports whether p does not extend past q's upper bound
// (p.upper <= q.upper in the bound-inclusivity-aware sense; "overbefore").
// Unlike StrictlyBefore this does not require p and q to be disjoint.
func (p Period) OverlapBefore(q Period) bool {
	if p.Upper != q.Upper {
		return p.Upper < q.Upper
	}

	return !p.UpperInc || q.UpperInc
}

// OverlapAfter reports whether p does not extend before q's lower bound
// ("overafter"). Unlike StrictlyAfter this does not require disjointness.
func (p Period) OverlapAfter(q Period) bool {
	if q.Lower != p.Lower {
		return q.Lower < p.Lower
	}

	return !p.LowerInc || q.LowerInc
}

// Distance returns the temporal gap between p and q as an Interval; zero
// when they overlap.
func (p Period) Distance(q Period) Interval {
	if p.Overlaps(q) {
		return Interval{}
	}
	if p.StrictlyBefore(q) {
		return q.Lower.Sub(p.Upper)
	}

	return p.Lower.Sub(q.Upper)
}

// Intersect returns the Period common to p and q, if any (§4.1: "Period x
// Period intersection produces a Period when the intervals overlap").
func (p Period) Intersect(q Period) (Period, bool) {
	if !p.Overlaps(q) {
		return Period{}, false
	}

	lower, lowerInc := p.Lower, p.LowerInc
	if q.Lower > lower || (q.Lower == lower && !q.LowerInc) {
		lower, lowerInc = q.Lower, q.LowerInc
	}

	upper, upperInc := p.Upper, p.UpperInc
	if q.Upper < upper || (q.Upper == upper && !q.UpperInc) {
		upper, upperInc = q.Upper, q.UpperInc
	}

	out, err := NewPeriod(lower, upper, lowerInc, upperInc)
	if err != nil {
		return Period{}, false
	}

	return out, true
}

// unionAdjacentOrOverlapping merges p and q into a single Period, assuming
// the caller has already verified they overlap or are adjacent.
func unionAdjacentOrOverlapping(p, q Period) Period {
	lower, lowerInc := p.Lower, p.LowerInc
	switch {
	case q.Lower < p.Lower:
		lower, lowerInc = q.Lower, q.LowerInc
	case q.Lower == p.Lower:
		lowerInc = p.LowerInc || q.LowerInc
	}

	upper, upperInc := p.Upper, p.UpperInc
	switch {
	case q.Upper > p.Upper:
		upper, upperInc = q.Upper, q.UpperInc
	case q.Upper == p.Upper:
		upperInc = p.UpperInc || q.UpperInc
	}

	out, _ := NewPeriod(lower, upper, lowerInc, upperInc)

	return out
}

// Union returns either a single Period (if p and q are adjacent or
// overlapping) or the two-element PeriodSet {p, q} otherwise (§4.1).
func (p Period) Union(q Period) PeriodSet {
	if p.Overlaps(q) || p.Adjacent(q) {
		return PeriodSet{periods: []Period{unionAdjacentOrOverlapping(p, q)}}
	}

	ps, _ := NewPeriodSet([]Period{p, q})

	return ps
}

// String formats p in WKT period notation, e.g. "[2020-01-01 00:00:00, 2020-01-10 00:00:00]".
func (p Period) String() string {
	lb, ub := "[", "]"
	if !p.LowerInc {
		lb = "("
	}
	if !p.UpperInc {
		ub = ")"
	}

	return fmt.Sprintf("%s%s, %s%s", lb, formatTimestamp(p.Lower), formatTimestamp(p.Upper), ub)
}

func formatTimestamp(t Timestamp) string {
	tt := t.Time()
	if tt.Nanosecond() == 0 {
		return tt.Format("2006-01-02 15:04:05")
	}

	return tt.Format("2006-01-02 15:04:05.999999")
}
