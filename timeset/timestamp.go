// Package timeset implements the time primitives of §4.1: Timestamp,
// Interval, Period and PeriodSet, their set algebra, and the topological/
// positional predicate families.
//
// This package also realizes the narrow time-arithmetic interface §6
// calls the "Time library (consumed)" collaborator. Go's standard time
// package already provides microsecond-precision, monotonic-safe
// arithmetic — reimplementing add_interval/sub_interval/cmp by hand would
// be the kind of stdlib-shaped reinvention the teacher itself avoids by
// threading time.Time straight through its own public API
// (NewNumericEncoder(blobTs time.Time, ...)). timeset therefore wraps
// time.Time/time.Duration rather than re-deriving calendar math.
package timeset

import (
	"fmt"
	"time"

	"github.com/temporalcore/tempo/errs"
)

// Timestamp is a microsecond-resolution instant, matching the teacher's
// own int64-microseconds timestamp convention (blob.AddDataPoint takes
// ts.UnixMicro()).
type Timestamp int64

// FromTime converts a time.Time to a Timestamp.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMicro())
}

// Time converts a Timestamp back to a time.Time (UTC).
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

// Cmp returns -1, 0 or 1 as t is before, equal to, or after o.
func (t Timestamp) Cmp(o Timestamp) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

// Before, After and Equal are the usual strict/eq comparisons.
func (t Timestamp) Before(o Timestamp) bool { return t < o }
func (t Timestamp) After(o Timestamp) bool  { return t > o }
func (t Timestamp) Equal(o Timestamp) bool  { return t == o }

// Interval is a calendar-aware duration: months, days and microseconds
// kept independent so that "1 month" behaves correctly across months of
// different lengths, matching PostgreSQL's interval semantics that the
// source library builds on.
type Interval struct {
	Months int32
	Days   int32
	Micros int64
}

// NewDuration builds a pure microsecond Interval from a time.Duration, with
// no month/day component. Use AddInterval/SubInterval below which apply
// the month/day components against the wall-clock calendar and the
// microsecond component as elapsed time.
func NewDuration(d time.Duration) Interval {
	return Interval{Micros: d.Microseconds()}
}

// AddInterval returns t shifted forward by iv (add_interval).
func (t Timestamp) AddInterval(iv Interval) Timestamp {
	tt := t.Time()
	tt = tt.AddDate(0, int(iv.Months), int(iv.Days))
	tt = tt.Add(time.Duration(iv.Micros) * time.Microsecond)

	return FromTime(tt)
}

// SubInterval returns t shifted backward by iv (sub_interval).
func (t Timestamp) SubInterval(iv Interval) Timestamp {
	return t.AddInterval(Interval{Months: -iv.Months, Days: -iv.Days, Micros: -iv.Micros})
}

// Sub returns the microsecond-only Interval between t and o; no
// month/day component is produced since micro-precision subtraction
// cannot recover which calendar units produced it.
func (t Timestamp) Sub(o Timestamp) Interval {
	return Interval{Micros: int64(t - o)}
}

// Duration converts a microsecond-only Interval to a time.Duration; it
// panics if Months or Days is non-zero, since those have no fixed duration
// without a base instant. Use AddInterval/SubInterval for calendar math.
func (iv Interval) Duration() time.Duration {
	if iv.Months != 0 || iv.Days != 0 {
		panic("timeset: Interval.Duration on an interval with a month or day component")
	}

	return time.Duration(iv.Micros) * time.Microsecond
}

// IsZero reports whether iv represents zero elapsed time.
func (iv Interval) IsZero() bool {
	return iv.Months == 0 && iv.Days == 0 && iv.Micros == 0
}

// Negate returns -iv.
func (iv Interval) Negate() Interval {
	return Interval{Months: -iv.Months, Days: -iv.Days, Micros: -iv.Micros}
}

// Cmp compares two pure-microsecond intervals; it is only meaningful when
// neither has a Months/Days component, since those are calendar-relative.
func (iv Interval) Cmp(o Interval) int {
	a, b := iv.Micros, o.Micros
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IntervalOut formats iv in a PostgreSQL-style interval literal
// (interval_out), e.g. "1 mon 3 days 00:00:01.500000".
func IntervalOut(iv Interval) string {
	if iv.IsZero() {
		return "00:00:00"
	}

	s := ""
	if iv.Months != 0 {
		s += fmt.Sprintf("%d mon ", iv.Months)
	}
	if iv.Days != 0 {
		s += fmt.Sprintf("%d days ", iv.Days)
	}

	neg := iv.Micros < 0
	micros := iv.Micros
	if neg {
		micros = -micros
	}
	totalSec := micros / 1_000_000
	frac := micros % 1_000_000
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	sec := totalSec % 60

	sign := ""
	if neg {
		sign = "-"
	}
	if frac != 0 {
		s += fmt.Sprintf("%s%02d:%02d:%02d.%06d", sign, h, m, sec, frac)
	} else {
		s += fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}

	return s
}

// ParseTimestamp parses an RFC3339-ish or PostgreSQL-ish timestamp
// literal ("2020-01-01 00:00:00" or "2020-01-01T00:00:00Z") into a
// Timestamp (timestamp_parse).
func ParseTimestamp(s string) (Timestamp, error) {
	layouts := []string{
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}

	return 0, fmt.Errorf("%w: invalid timestamp literal %q", errs.ErrTextInput, s)
}

// ParseInterval parses a minimal PostgreSQL-style interval literal of the
// form "[N mon[s]] [N day[s]] [HH:MM:SS[.ffffff]]" (interval_parse).
func ParseInterval(s string) (Interval, error) {
	var iv Interval
	rest := s
	consumed := false

	var months, days int
	n, err := fmt.Sscanf(rest, "%d mon", &months)
	if err == nil && n == 1 {
		iv.Months = int32(months)
		consumed = true
		if idx := indexAfterToken(rest, "mon"); idx >= 0 {
			rest = rest[idx:]
		}
	}

	n, err = fmt.Sscanf(rest, "%d day", &days)
	if err == nil && n == 1 {
		iv.Days = int32(days)
		consumed = true
		if idx := indexAfterToken(rest, "day"); idx >= 0 {
			rest = rest[idx:]
		}
	}

	rest = trimLeadingSpace(rest)
	if rest != "" {
		var h, m, sec int
		var frac float64
		if n, _ := fmt.Sscanf(rest, "%d:%d:%d", &h, &m, &sec); n == 3 {
			consumed = true
			neg := false
			if len(rest) > 0 && rest[0] == '-' {
				neg = true
			}
			micros := int64(h)*3600_000_000 + int64(m)*60_000_000 + int64(sec)*1_000_000
			if dot := indexByte(rest, '.'); dot >= 0 {
				fmt.Sscanf(rest[dot:], ".%f", &frac) //nolint:errcheck
				micros += int64(frac * 1_000_000)
			}
			if neg && micros > 0 {
				micros = -micros
			}
			iv.Micros = micros
		}
	}

	if !consumed {
		return Interval{}, fmt.Errorf("%w: invalid interval literal %q", errs.ErrTextInput, s)
	}

	return iv, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}

	return -1
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}

	return s[i:]
}

func indexAfterToken(s, token string) int {
	i := indexOf(s, token)
	if i < 0 {
		return -1
	}
	i += len(token)
	if i < len(s) && s[i] == 's' {
		i++
	}

	return i
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}

	return -1
}
