package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/stbox"
	"github.com/temporalcore/tempo/timeset"
)

// ParseSTBox parses the second grammar of §4.8:
//
//	STBox    := SRID? ("STBOX" | "GEODSTBOX") DimSig Spec
//	DimSig   := "X" | "Z" | "T" | "XT" | "ZT"
//	Spec     := SpatialBox | TemporalBox | Combined
//
// DimSig "X" is a 2D-only box, "Z" a 3D-only box (X/Y/Z, no T), "T" a
// temporal-only box (no spatial part), "XT"/"ZT" combine the spatial box
// with a Period.
func ParseSTBox(s string, opts ...Option) (stbox.STBox, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return stbox.STBox{}, err
	}

	rest := strings.TrimSpace(s)

	srid, rest, err := parseSRIDPrefix(rest)
	if err != nil {
		return stbox.STBox{}, err
	}
	if srid == 0 {
		srid = cfg.SRID
	}

	rest = strings.TrimSpace(rest)

	var geodetic bool
	var tagRest string
	var ok bool
	if tagRest, ok = consumePrefix(rest, "GEODSTBOX"); ok {
		geodetic = true
	} else if tagRest, ok = consumePrefix(rest, "STBOX"); ok {
		geodetic = false
	} else {
		return stbox.STBox{}, fmt.Errorf("%w: expected STBOX or GEODSTBOX tag: %q", errs.ErrTextInput, rest)
	}

	dimsig, specStr, err := parseDimSig(tagRest)
	if err != nil {
		return stbox.STBox{}, err
	}

	hasX := dimsig != "T"
	hasZ := dimsig == "Z" || dimsig == "ZT"
	hasT := strings.Contains(dimsig, "T")

	specStr = strings.TrimSpace(specStr)

	var xmin, xmax, ymin, ymax, zmin, zmax float64
	var period *timeset.Period

	switch {
	case hasX && hasT:
		inner, ok := stripEnclosing(specStr, '(', ')')
		if !ok {
			return stbox.STBox{}, fmt.Errorf("%w: malformed combined STBox spec: %q", errs.ErrTextInput, specStr)
		}
		parts := splitTopLevel(inner)
		if len(parts) == 3 { // flat form: (corner),(corner),period
			parts = []string{"(" + parts[0] + "," + parts[1] + ")", parts[2]}
		}
		if len(parts) != 2 {
			return stbox.STBox{}, fmt.Errorf("%w: combined STBox spec must have 2 parts, got %d", errs.ErrTextInput, len(parts))
		}
		xmin, ymin, zmin, xmax, ymax, zmax, err = parseSpatialTuple(parts[0], hasZ)
		if err != nil {
			return stbox.STBox{}, err
		}
		p, err := parsePeriodLiteral(parts[1])
		if err != nil {
			return stbox.STBox{}, err
		}
		period = &p
	case hasX && !hasT:
		xmin, ymin, zmin, xmax, ymax, zmax, err = parseSpatialTuple(specStr, hasZ)
		if err != nil {
			return stbox.STBox{}, err
		}
	case !hasX && hasT:
		p, err := parsePeriodLiteral(specStr)
		if err != nil {
			return stbox.STBox{}, err
		}
		period = &p
	}

	return stbox.NewSTBox(hasX, hasZ, geodetic, srid, xmin, xmax, ymin, ymax, zmin, zmax, period)
}

func parseDimSig(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	for _, sig := range []string{"XT", "ZT", "X", "Z", "T"} {
		if rest, ok := consumePrefix(s, sig); ok {
			return sig, rest, nil
		}
	}

	return "", "", fmt.Errorf("%w: unrecognized STBox dimension signature: %q", errs.ErrTextInput, s)
}

func parseSpatialTuple(s string, hasZ bool) (xmin, ymin, zmin, xmax, ymax, zmax float64, err error) {
	inner, ok := stripEnclosing(s, '(', ')')
	if !ok {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: malformed spatial tuple: %q", errs.ErrTextInput, s)
	}

	parts := splitTopLevel(inner)
	if len(parts) != 2 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: spatial tuple must have 2 corners, got %d", errs.ErrTextInput, len(parts))
	}

	lo, err := parseCoordTuple(parts[0], hasZ)
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	hi, err := parseCoordTuple(parts[1], hasZ)
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}

	return lo[0], lo[1], lo[2], hi[0], hi[1], hi[2], nil
}

func parseCoordTuple(s string, hasZ bool) ([3]float64, error) {
	inner, ok := stripEnclosing(s, '(', ')')
	if !ok {
		return [3]float64{}, fmt.Errorf("%w: malformed coordinate tuple: %q", errs.ErrTextInput, s)
	}

	fields := splitTopLevel(inner)
	want := 2
	if hasZ {
		want = 3
	}
	if len(fields) != want {
		return [3]float64{}, fmt.Errorf("%w: expected %d coordinates, got %d", errs.ErrDimensionMismatch, want, len(fields))
	}

	var out [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("%w: invalid coordinate %q", errs.ErrTextInput, f)
		}
		out[i] = v
	}

	return out, nil
}

func parsePeriodLiteral(s string) (timeset.Period, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return timeset.Period{}, fmt.Errorf("%w: truncated period literal %q", errs.ErrTextInput, s)
	}
	if s[0] != '[' && s[0] != '(' {
		return timeset.Period{}, fmt.Errorf("%w: period must open with '[' or '('", errs.ErrTextInput)
	}
	if s[len(s)-1] != ']' && s[len(s)-1] != ')' {
		return timeset.Period{}, fmt.Errorf("%w: period must close with ']' or ')'", errs.ErrTextInput)
	}

	lowerInc := s[0] == '['
	upperInc := s[len(s)-1] == ']'

	parts := splitTopLevel(s[1 : len(s)-1])
	if len(parts) != 2 {
		return timeset.Period{}, fmt.Errorf("%w: period must have exactly 2 bounds, got %d", errs.ErrTextInput, len(parts))
	}

	lower, err := timeset.ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return timeset.Period{}, err
	}
	upper, err := timeset.ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return timeset.Period{}, err
	}

	return timeset.NewPeriod(lower, upper, lowerInc, upperInc)
}

// FormatSTBox renders b in the STBox WKT notation of §6, the inverse of
// ParseSTBox.
func FormatSTBox(b stbox.STBox) string {
	prefix := ""
	if b.SRID != 0 {
		prefix = fmt.Sprintf("SRID=%d;", b.SRID)
	}

	tag := "STBOX"
	if b.Geodetic {
		tag = "GEODSTBOX"
	}

	dimsig := ""
	switch {
	case b.HasX && b.HasZ && b.HasT:
		dimsig = "ZT"
	case b.HasX && b.HasZ:
		dimsig = "Z"
	case b.HasX && b.HasT:
		dimsig = "XT"
	case b.HasX:
		dimsig = "X"
	case b.HasT:
		dimsig = "T"
	}

	var spec string
	switch {
	case b.HasX && b.HasT:
		spec = "(" + formatSpatialTuple(b) + "," + formatPeriodLiteral(b.Period) + ")"
	case b.HasX:
		spec = formatSpatialTuple(b)
	case b.HasT:
		spec = formatPeriodLiteral(b.Period)
	}

	return fmt.Sprintf("%s%s %s%s", prefix, tag, dimsig, spec)
}

func formatSpatialTuple(b stbox.STBox) string {
	if b.HasZ {
		return fmt.Sprintf("((%s,%s,%s),(%s,%s,%s))",
			formatPlainFloat(b.XMin), formatPlainFloat(b.YMin), formatPlainFloat(b.ZMin),
			formatPlainFloat(b.XMax), formatPlainFloat(b.YMax), formatPlainFloat(b.ZMax))
	}

	return fmt.Sprintf("((%s,%s),(%s,%s))",
		formatPlainFloat(b.XMin), formatPlainFloat(b.YMin), formatPlainFloat(b.XMax), formatPlainFloat(b.YMax))
}

func formatPeriodLiteral(p timeset.Period) string {
	lb, ub := "[", "]"
	if !p.LowerInc {
		lb = "("
	}
	if !p.UpperInc {
		ub = ")"
	}

	return fmt.Sprintf("%s%s,%s%s", lb, formatTimestampWKT(p.Lower), formatTimestampWKT(p.Upper), ub)
}

func formatPlainFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
