package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
)

// taggedKind pairs a WKT literal keyword with the BaseKind it introduces,
// for the point-shaped kinds whose basevalue.Dispatch.ParseElement already
// knows how to split its own inner fields (§4.8 "Geography and geometry
// tokens carry their own SRID metadata", generalized here to every
// compound kind so the tag-stripping in this file never re-implements
// basevalue's own field splitting).
type taggedKind struct {
	name string
	kind format.BaseKind
}

// Checked in order; GeogPoint before Point only matters for readability,
// since the two keywords never share a prefix.
var literalTags = []taggedKind{
	{"GeogPoint", format.KindGeog},
	{"Point", format.KindGeom},
	{"CBuffer", format.KindCBuffer},
	{"NPoint", format.KindNPoint},
	{"Pose", format.KindPose},
}

// parseBaseValueLiteral parses one BaseValue token of the Temporal
// grammar (§4.8). The grammar leaves BaseValue abstract; this resolves it
// as: a single-quoted literal for Text, "Tag(...)" for the point-shaped
// kinds, and a bare numeral for Int/Float (Float iff the literal carries a
// decimal point or exponent — see formatFloat's matching guarantee on the
// printer side).
func parseBaseValueLiteral(s string) (basevalue.Value, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return basevalue.NewText(s[1 : len(s)-1]), nil
	}

	for _, tag := range literalTags {
		rest, ok := consumePrefix(s, tag.name)
		if !ok {
			continue
		}
		inner, ok := stripEnclosing(rest, '(', ')')
		if !ok {
			return basevalue.Value{}, fmt.Errorf("%w: %s literal missing parentheses: %q", errs.ErrTextInput, tag.name, s)
		}

		return basevalue.For(tag.kind).ParseElement(inner)
	}

	if isFloatLiteral(s) {
		return basevalue.For(format.KindFloat).ParseElement(s)
	}

	return basevalue.For(format.KindInt).ParseElement(s)
}

func isFloatLiteral(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

// formatBaseValueLiteral is the printer-side inverse of
// parseBaseValueLiteral.
func formatBaseValueLiteral(v basevalue.Value) string {
	switch v.Kind {
	case format.KindText:
		return "'" + v.S + "'"
	case format.KindInt:
		return strconv.FormatInt(v.I, 10)
	case format.KindFloat:
		return formatFloat(v.F)
	case format.KindGeom:
		return "Point(" + formatPointFields(v) + ")"
	case format.KindGeog:
		return "GeogPoint(" + formatPointFields(v) + ")"
	case format.KindCBuffer:
		return fmt.Sprintf("CBuffer(%s %s,%s)", formatFloat(v.CB.Center.X), formatFloat(v.CB.Center.Y), formatFloat(v.CB.Radius))
	case format.KindNPoint:
		return fmt.Sprintf("NPoint(%d,%s)", v.NP.RouteID, formatFloat(v.NP.Position))
	case format.KindPose:
		return fmt.Sprintf("Pose(%s,%s,%s)", formatFloat(v.Ps.X), formatFloat(v.Ps.Y), formatFloat(v.Ps.Theta))
	default:
		return fmt.Sprintf("<unprintable:%s>", v.Kind)
	}
}

func formatPointFields(v basevalue.Value) string {
	if v.Pt.HasZ {
		return fmt.Sprintf("%s %s %s", formatFloat(v.Pt.X), formatFloat(v.Pt.Y), formatFloat(v.Pt.Z))
	}

	return fmt.Sprintf("%s %s", formatFloat(v.Pt.X), formatFloat(v.Pt.Y))
}

// formatFloat renders f so the result always carries a decimal point or
// exponent, guaranteeing isFloatLiteral classifies it back as Float on a
// parse round-trip even when f is a whole number (e.g. 2 -> "2.0").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
