// Package derived implements the §4.10 derived constructors: assembling
// a composite temporal value (circular buffer, pose) from two temporal
// components that already exist, and the inverse projections back out
// of a composite.
//
// Every constructor synchronizes its inputs via temporal.Synchronize
// without crossing insertion — make_tcbuffer/make_tpose only need a
// shared instant grid, not the extra breakpoints comparison lifting
// inserts for sign changes (§4.10: "synchronize (without crossings)").
package derived

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/temporal"
)

func asSequence(t temporal.Temporal, want format.BaseKind) (temporal.TSequence, error) {
	if t.Type().Base != want {
		return temporal.TSequence{}, fmt.Errorf("%w: expected %s, got %s", errs.ErrMixedTempType, want, t.Type().Base)
	}

	switch v := t.(type) {
	case temporal.TSequence:
		return v, nil
	case temporal.TInstant:
		return temporal.NewSequence([]temporal.TInstant{v}, format.InterpDiscrete, true, true, false)
	default:
		return temporal.TSequence{}, fmt.Errorf("%w: derived constructors do not accept a SequenceSet operand", errs.ErrUnsupported)
	}
}

// MakeTCBuffer synchronizes a temporal 2D point and a temporal float
// (without crossings) and assembles a circular buffer at each shared
// instant: centre from the point, radius from the float (§4.10).
func MakeTCBuffer(point, radius temporal.Temporal) (temporal.TSequence, error) {
	pSeq, err := asSequence(point, format.KindGeom)
	if err != nil {
		return temporal.TSequence{}, err
	}
	rSeq, err := asSequence(radius, format.KindFloat)
	if err != nil {
		return temporal.TSequence{}, err
	}

	pSync, rSync, err := temporal.Synchronize(pSeq, rSeq, false)
	if err != nil {
		return temporal.TSequence{}, err
	}

	instants := make([]temporal.TInstant, len(pSync.Instants))
	for i := range pSync.Instants {
		cb := geom.NewCBuffer(pSync.Instants[i].V.Pt, rSync.Instants[i].V.F)
		instants[i] = temporal.NewInstant(pSync.Instants[i].T, basevalue.NewCBuffer(cb))
	}

	return temporal.NewSequence(instants, pSync.Interp, pSync.LowerInc, pSync.UpperInc, true)
}

// ToTGeomPoint projects a temporal circular buffer down to its temporal
// centre point, dropping the radius (§4.10: "drop radius").
func ToTGeomPoint(tcb temporal.Temporal) (temporal.TSequence, error) {
	seq, err := asSequence(tcb, format.KindCBuffer)
	if err != nil {
		return temporal.TSequence{}, err
	}

	instants := make([]temporal.TInstant, len(seq.Instants))
	for i, inst := range seq.Instants {
		instants[i] = temporal.NewInstant(inst.T, basevalue.NewGeom(inst.V.CB.Center))
	}

	return temporal.NewSequence(instants, seq.Interp, seq.LowerInc, seq.UpperInc, true)
}

// ToTFloat projects a temporal circular buffer down to its temporal
// radius, dropping the centre (§4.10: "drop centre").
func ToTFloat(tcb temporal.Temporal) (temporal.TSequence, error) {
	seq, err := asSequence(tcb, format.KindCBuffer)
	if err != nil {
		return temporal.TSequence{}, err
	}

	instants := make([]temporal.TInstant, len(seq.Instants))
	for i, inst := range seq.Instants {
		instants[i] = temporal.NewInstant(inst.T, basevalue.NewFloat(inst.V.CB.Radius))
	}

	return temporal.NewSequence(instants, seq.Interp, seq.LowerInc, seq.UpperInc, true)
}

// MakeTPose synchronizes a temporal 2D point and a temporal float
// (without crossings) and assembles a rigid pose at each shared instant:
// centre from the point, heading from the float (§4.10: "analogous
// [to make_tcbuffer] (centre + rotation)").
func MakeTPose(point, heading temporal.Temporal) (temporal.TSequence, error) {
	pSeq, err := asSequence(point, format.KindGeom)
	if err != nil {
		return temporal.TSequence{}, err
	}
	hSeq, err := asSequence(heading, format.KindFloat)
	if err != nil {
		return temporal.TSequence{}, err
	}

	pSync, hSync, err := temporal.Synchronize(pSeq, hSeq, false)
	if err != nil {
		return temporal.TSequence{}, err
	}

	instants := make([]temporal.TInstant, len(pSync.Instants))
	for i := range pSync.Instants {
		pt := pSync.Instants[i].V.Pt
		pose := geom.NewPose(pt.X, pt.Y, hSync.Instants[i].V.F, pt.SRID)
		instants[i] = temporal.NewInstant(pSync.Instants[i].T, basevalue.NewPose(pose))
	}

	return temporal.NewSequence(instants, pSync.Interp, pSync.LowerInc, pSync.UpperInc, true)
}

// ApproxCBufferFromGeom approximates a temporal geometry by a temporal
// circular buffer, per instant, via the geometry's minimum bounding
// circle (§4.10: "Temporal-geometry -> temporal-circular-buffer
// approximates each geometry by its minimum bounding circle"). tempo's
// core only ever carries point base values (geom's own doc comment), so
// every instant's minimum bounding circle degenerates to its point with
// a zero radius; a full geometry engine plugged in behind geom.Projector
// would widen this for non-point geometries without changing this
// constructor's shape.
func ApproxCBufferFromGeom(t temporal.Temporal) (temporal.TSequence, error) {
	seq, err := asSequence(t, format.KindGeom)
	if err != nil {
		return temporal.TSequence{}, err
	}

	instants := make([]temporal.TInstant, len(seq.Instants))
	for i, inst := range seq.Instants {
		circle := geom.MinimumBoundingCircle([]geom.Point{inst.V.Pt})
		instants[i] = temporal.NewInstant(inst.T, basevalue.NewCBuffer(geom.NewCBuffer(circle.Center, circle.Radius)))
	}

	return temporal.NewSequence(instants, seq.Interp, seq.LowerInc, seq.UpperInc, true)
}
