// Package basevalue implements the per-BaseKind dispatch table of §4.3:
// a single Value carrier type plus one Dispatch implementation per
// format.BaseKind, exactly the set of operations segment kernels and
// lifting are allowed to consult ("Segment kernels and lifting only
// consult this interface" — §4.3 of spec.md).
//
// The Dispatch interface generalizes the teacher's ColumnarEncoder[T]
// generic dispatch-by-capability (encoding/columnar.go) from "one encoder
// per Go numeric type" to "one dispatch table per BaseKind", since a
// Temporal's underlying storage is heterogeneous across BaseKind but
// needs a uniform vtable at the algebra layer.
package basevalue

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
)

// Value carries exactly one live field, selected by Kind. It is the
// common currency segment kernels, lifting and restriction pass around
// regardless of which BaseKind they're operating on.
type Value struct {
	Kind format.BaseKind

	I  int64
	F  float64
	S  string
	Pt geom.Point
	CB geom.CBuffer
	NP geom.NPoint
	Ps geom.Pose
	D  [4]float64 // Double2/Double3/Double4 component storage
}

// NewInt builds an Int value.
func NewInt(v int64) Value { return Value{Kind: format.KindInt, I: v} }

// NewFloat builds a Float value.
func NewFloat(v float64) Value { return Value{Kind: format.KindFloat, F: v} }

// NewText builds a Text value.
func NewText(v string) Value { return Value{Kind: format.KindText, S: v} }

// NewGeom builds a Geom (planar) value.
func NewGeom(p geom.Point) Value { return Value{Kind: format.KindGeom, Pt: p} }

// NewGeog builds a Geog (geodetic) value.
func NewGeog(p geom.Point) Value { return Value{Kind: format.KindGeog, Pt: p} }

// NewCBuffer builds a CBuffer value.
func NewCBuffer(c geom.CBuffer) Value { return Value{Kind: format.KindCBuffer, CB: c} }

// NewNPoint builds an NPoint value.
func NewNPoint(n geom.NPoint) Value { return Value{Kind: format.KindNPoint, NP: n} }

// NewPose builds a Pose value.
func NewPose(p geom.Pose) Value { return Value{Kind: format.KindPose, Ps: p} }

// NewDouble2/3/4 build internal accumulator values, used only by
// aggregation-style code (§3: "internal accumulator kinds used only by
// aggregation-style code").
func NewDouble2(a, b float64) Value       { return Value{Kind: format.KindDouble2, D: [4]float64{a, b}} }
func NewDouble3(a, b, c float64) Value    { return Value{Kind: format.KindDouble3, D: [4]float64{a, b, c}} }
func NewDouble4(a, b, c, d float64) Value { return Value{Kind: format.KindDouble4, D: [4]float64{a, b, c, d}} }

func mismatch(a, b Value) error {
	return fmt.Errorf("%w: %s vs %s", errs.ErrMixedTempType, a.Kind, b.Kind)
}
