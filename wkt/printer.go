package wkt

import (
	"fmt"
	"strings"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

// Format renders a Temporal value in the WKT-style notation of §6, the
// inverse of Parse.
func Format(t temporal.Temporal) (string, error) {
	switch v := t.(type) {
	case temporal.TInstant:
		return formatInstantTop(v), nil
	case temporal.TSequence:
		return formatSequenceTop(v), nil
	case temporal.TSequenceSet:
		return formatSequenceSetTop(v), nil
	default:
		return "", fmt.Errorf("%w: unrecognized Temporal implementation %T", errs.ErrInternalType, t)
	}
}

func sridPrefixForValue(v basevalue.Value) string {
	if srid, ok := basevalue.For(v.Kind).SRID(v); ok && srid != 0 {
		return fmt.Sprintf("SRID=%d;", srid)
	}

	return ""
}

func formatInstant(i temporal.TInstant) string {
	return formatBaseValueLiteral(i.V) + "@" + formatTimestampWKT(i.T)
}

func formatInstantTop(i temporal.TInstant) string {
	return sridPrefixForValue(i.V) + formatInstant(i)
}

func formatSequenceBody(seq temporal.TSequence) string {
	parts := make([]string, len(seq.Instants))
	for i, inst := range seq.Instants {
		parts[i] = formatInstant(inst)
	}
	joined := strings.Join(parts, ", ")

	if seq.Interp == format.InterpDiscrete {
		return "{" + joined + "}"
	}

	lb, ub := "[", "]"
	if !seq.LowerInc {
		lb = "("
	}
	if !seq.UpperInc {
		ub = ")"
	}

	return lb + joined + ub
}

func sequenceSRIDPrefix(seq temporal.TSequence) string {
	if len(seq.Instants) == 0 {
		return ""
	}

	return sridPrefixForValue(seq.Instants[0].V)
}

func formatSequenceTop(seq temporal.TSequence) string {
	prefix := sequenceSRIDPrefix(seq)
	if seq.Interp == format.InterpStep {
		prefix += "Interp=Step;"
	}

	return prefix + formatSequenceBody(seq)
}

func formatSequenceSetTop(ss temporal.TSequenceSet) string {
	prefix := ""
	if len(ss.Sequences) > 0 {
		prefix = sequenceSRIDPrefix(ss.Sequences[0])
	}
	if ss.Interp == format.InterpStep {
		prefix += "Interp=Step;"
	}

	parts := make([]string, len(ss.Sequences))
	for i, seq := range ss.Sequences {
		parts[i] = formatSequenceBody(seq)
	}

	return prefix + "{" + strings.Join(parts, ", ") + "}"
}

// formatTimestampWKT formats t for every WKT surface this package
// produces (Temporal instants and STBox periods): date-only when t falls
// exactly on midnight, otherwise full time-of-day, matching the style of
// the teacher's own "drop the fractional part when zero" convention in
// timeset.Period.String() but additionally dropping the all-zero
// time-of-day, since spec.md's own WKT examples show bare dates for
// midnight instants.
func formatTimestampWKT(t timeset.Timestamp) string {
	tt := t.Time()
	if tt.Hour() == 0 && tt.Minute() == 0 && tt.Second() == 0 && tt.Nanosecond() == 0 {
		return tt.Format("2006-01-02")
	}
	if tt.Nanosecond() == 0 {
		return tt.Format("2006-01-02 15:04:05")
	}

	return tt.Format("2006-01-02 15:04:05.999999")
}
