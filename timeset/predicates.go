package timeset

// This file provides cross-type predicates among {Timestamp, TimestampSet,
// Period, PeriodSet} as thin wrappers over the core Period/PeriodSet
// primitives, rather than duplicating the two-pointer merge or
// binary-search logic per pair. Each wrapper is named exactly after the
// operation it performs. Only the pairs and operations defined below have
// a wrapper; the others are not provided here.

// --- Timestamp vs TimestampSet ---

func ContainsTimestampSetTimestamp(ts TimestampSet, t Timestamp) bool {
	return ts.ContainsTimestamp(t)
}

func OverlapsTimestampTimestampSet(t Timestamp, ts TimestampSet) bool {
	return ts.ContainsTimestamp(t)
}

func AdjacentTimestampPeriod(t Timestamp, p Period) bool {
	return (t == p.Lower && !p.LowerInc) || (t == p.Upper && !p.UpperInc)
}

func AdjacentTimestampPeriodSet(t Timestamp, ps PeriodSet) bool {
	return AdjacentTimestampPeriod(t, ps.At(0)) || AdjacentTimestampPeriod(t, ps.At(ps.Len()-1))
}

func BeforeTimestampPeriod(t Timestamp, p Period) bool {
	return t < p.Lower || (t == p.Lower && !p.LowerInc)
}

func AfterTimestampPeriod(t Timestamp, p Period) bool {
	return t > p.Upper || (t == p.Upper && !p.UpperInc)
}

func BeforeTimestampPeriodSet(t Timestamp, ps PeriodSet) bool {
	return BeforeTimestampPeriod(t, ps.At(0))
}

func AfterTimestampPeriodSet(t Timestamp, ps PeriodSet) bool {
	return AfterTimestampPeriod(t, ps.At(ps.Len()-1))
}

// --- TimestampSet vs Period/PeriodSet ---

func ContainsPeriodTimestampSet(p Period, ts TimestampSet) bool {
	for _, t := range ts.Times() {
		if !p.ContainsTimestamp(t) {
			return false
		}
	}

	return true
}

func OverlapsTimestampSetPeriod(ts TimestampSet, p Period) bool {
	for _, t := range ts.Times() {
		if p.ContainsTimestamp(t) {
			return true
		}
	}

	return false
}

func OverlapsTimestampSetPeriodSet(ts TimestampSet, ps PeriodSet) bool {
	for _, t := range ts.Times() {
		if ps.ContainsTimestamp(t) {
			return true
		}
	}

	return false
}

func BeforeTimestampSetPeriod(ts TimestampSet, p Period) bool {
	return BeforeTimestampPeriod(ts.At(ts.Len()-1), p)
}

func AfterTimestampSetPeriod(ts TimestampSet, p Period) bool {
	return AfterTimestampPeriod(ts.At(0), p)
}

// --- Distance (returns an Interval; zero when values overlap, §4.1) ---

func DistanceTimestampTimestamp(a, b Timestamp) Interval {
	if a == b {
		return Interval{}
	}
	if a < b {
		return b.Sub(a)
	}

	return a.Sub(b)
}

func DistanceTimestampPeriod(t Timestamp, p Period) Interval {
	if p.ContainsTimestamp(t) {
		return Interval{}
	}
	if t < p.Lower {
		return p.Lower.Sub(t)
	}

	return t.Sub(p.Upper)
}

func DistancePeriodPeriodSet(p Period, ps PeriodSet) Interval {
	best := Interval{Micros: int64(^uint64(0) >> 1)}
	found := false
	for _, q := range ps.Periods() {
		d := p.Distance(q)
		if !found || d.Cmp(best) < 0 {
			best, found = d, true
		}
	}

	return best
}
