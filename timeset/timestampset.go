package timeset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/temporalcore/tempo/errs"
)

// TimestampSet is a strictly increasing sequence of timestamps with a
// cached bounding Period (§3).
type TimestampSet struct {
	times  []Timestamp
	period Period
}

// NewTimestampSet builds a TimestampSet from times, which must already be
// strictly increasing and non-empty.
func NewTimestampSet(times []Timestamp) (TimestampSet, error) {
	if len(times) == 0 {
		return TimestampSet{}, fmt.Errorf("%w: timestamp set", errs.ErrEmptyInput)
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return TimestampSet{}, fmt.Errorf("%w: timestamp set", errs.ErrNonMonotonic)
		}
	}

	cp := make([]Timestamp, len(times))
	copy(cp, times)

	return TimestampSet{times: cp, period: Period{Lower: cp[0], Upper: cp[len(cp)-1], LowerInc: true, UpperInc: true}}, nil
}

// Len returns the number of timestamps in the set.
func (ts TimestampSet) Len() int { return len(ts.times) }

// At returns the i-th timestamp (0-based).
func (ts TimestampSet) At(i int) Timestamp { return ts.times[i] }

// Times returns a read-only view of the underlying timestamps. Callers
// must not modify the returned slice.
func (ts TimestampSet) Times() []Timestamp { return ts.times }

// Period returns the cached bounding period, inclusive on both ends.
func (ts TimestampSet) Period() Period { return ts.period }

// Find returns the index of t in the set via binary search, or -1.
func (ts TimestampSet) Find(t Timestamp) int {
	i := sort.Search(len(ts.times), func(i int) bool { return ts.times[i] >= t })
	if i < len(ts.times) && ts.times[i] == t {
		return i
	}

	return -1
}

// ContainsTimestamp reports whether t is a member of the set.
func (ts TimestampSet) ContainsTimestamp(t Timestamp) bool {
	return ts.Find(t) >= 0
}

// mergeTimestamps performs the linear two-pointer walk over two ascending
// timestamp streams, combining them according to op (§4.1: "A helper
// merges, intersects, or subtracts two ascending timestamp streams").
type setOp uint8

const (
	opUnion setOp = iota
	opIntersect
	opDifference
)

func mergeTimestamps(a, b []Timestamp, op setOp) []Timestamp {
	out := make([]Timestamp, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			if op != opIntersect {
				out = append(out, a[i])
			}
			i++
		case a[i] > b[j]:
			if op == opUnion {
				out = append(out, b[j])
			}
			j++
		default:
			if op != opDifference {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	if op != opIntersect {
		out = append(out, a[i:]...)
		if op == opUnion {
			out = append(out, b[j:]...)
		}
	}

	return out
}

// Union returns the sorted union of ts and o as a TimestampSet. Returns
// false if the result would be empty.
func (ts TimestampSet) Union(o TimestampSet) (TimestampSet, bool) {
	merged := mergeTimestamps(ts.times, o.times, opUnion)
	if len(merged) == 0 {
		return TimestampSet{}, false
	}
	out, _ := NewTimestampSet(merged)

	return out, true
}

// Intersect returns the sorted intersection of ts and o. Returns false if
// the result would be empty.
func (ts TimestampSet) Intersect(o TimestampSet) (TimestampSet, bool) {
	merged := mergeTimestamps(ts.times, o.times, opIntersect)
	if len(merged) == 0 {
		return TimestampSet{}, false
	}
	out, _ := NewTimestampSet(merged)

	return out, true
}

// Difference returns ts minus o. Returns false if the result would be
// empty.
func (ts TimestampSet) Difference(o TimestampSet) (TimestampSet, bool) {
	merged := mergeTimestamps(ts.times, o.times, opDifference)
	if len(merged) == 0 {
		return TimestampSet{}, false
	}
	out, _ := NewTimestampSet(merged)

	return out, true
}

// Overlaps reports whether ts and o share at least one timestamp.
func (ts TimestampSet) Overlaps(o TimestampSet) bool {
	_, ok := ts.Intersect(o)

	return ok
}

// Contains reports whether every timestamp of o is present in ts.
func (ts TimestampSet) Contains(o TimestampSet) bool {
	for _, t := range o.times {
		if !ts.ContainsTimestamp(t) {
			return false
		}
	}

	return true
}

// String formats ts in WKT notation, e.g. "{2020-01-01 00:00:00, 2020-01-02 00:00:00}".
func (ts TimestampSet) String() string {
	parts := make([]string, len(ts.times))
	for i, t := range ts.times {
		parts[i] = formatTimestamp(t)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
