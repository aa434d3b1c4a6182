package temporal

import (
	"math"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/stbox"
	"github.com/temporalcore/tempo/timeset"
)

// BBox is the cached bounding box of §3: "Period for non-spatial; STBox
// for spatial; TBox — a value-range x period — for numbers". At most one
// of STBox/TBox is populated, selected by the instants' BaseKind (neither
// for a kind that is neither spatial nor numeric, such as Text); Period
// is always populated since every variant carries a temporal extent.
type BBox struct {
	Period timeset.Period
	STBox  *stbox.STBox
	TBox   *TBox
}

// TBox is the numeric-only bounding box: a value range crossed with a
// period (§3).
type TBox struct {
	Min, Max float64
	Period   timeset.Period
}

// boundsOf computes the bounding box for a non-empty slice of instants
// sharing BaseKind kind, dispatching the way §3 specifies.
func boundsOf(kind format.BaseKind, instants []TInstant) BBox {
	period, _ := timeset.NewPeriod(instants[0].T, instants[len(instants)-1].T, true, true)
	out := BBox{Period: period}

	switch {
	case kind.Spatial():
		var box stbox.STBox
		first := true
		for _, inst := range instants {
			var b stbox.STBox
			basevalue.For(kind).SetSTBox(inst.V, &b)
			b.HasT, b.Period = true, period
			if first {
				box, first = b, false
			} else {
				stbox.Expand(&box, b)
			}
		}
		out.STBox = &box
	case kind.Numeric():
		min, max := numericValue(instants[0].V), numericValue(instants[0].V)
		for _, inst := range instants[1:] {
			v := numericValue(inst.V)
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		out.TBox = &TBox{Min: min, Max: max, Period: period}
	}

	return out
}

func numericValue(v basevalue.Value) float64 {
	if v.Kind == format.KindInt {
		return float64(v.I)
	}

	return v.F
}

// mergeBounds expands a into the union covering b, used when gluing
// sequences into a sequence-set bounding box (§4.4 MergeArray).
func mergeBounds(a, b BBox) BBox {
	out := BBox{Period: a.Period.Union(b.Period).Period()}
	if a.STBox != nil && b.STBox != nil {
		box := *a.STBox
		stbox.Expand(&box, *b.STBox)
		out.STBox = &box
	}
	if a.TBox != nil && b.TBox != nil {
		out.TBox = &TBox{
			Min:    math.Min(a.TBox.Min, b.TBox.Min),
			Max:    math.Max(a.TBox.Max, b.TBox.Max),
			Period: out.Period,
		}
	}

	return out
}
