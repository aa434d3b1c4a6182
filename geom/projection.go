package geom

import "fmt"

// Projector transforms a Point from one SRID to another along a named CRS
// pipeline. This is the entirety of the narrow projection surface tempo
// consumes from the external geometry engine (projection_get,
// projection_transform_point, §6).
type Projector interface {
	// Transform reprojects p (whose SRID must equal src) to dst.
	Transform(p Point, src, dst int32) (Point, error)
}

// IdentityProjector implements Projector for the degenerate case where src
// == dst, and otherwise applies a affine shift/scale registered via
// RegisterPipeline. It exists so tempo's STBox.Transform and test suite
// have a usable Projector without linking a full CRS engine (e.g. PROJ).
type IdentityProjector struct {
	pipelines map[[2]int32]affinePipeline
}

type affinePipeline struct {
	dx, dy, dz    float64
	scaleX, scaleY, scaleZ float64
}

// NewIdentityProjector returns a Projector that passes points through
// unchanged for src==dst and applies any pipeline registered via
// RegisterPipeline otherwise.
func NewIdentityProjector() *IdentityProjector {
	return &IdentityProjector{pipelines: make(map[[2]int32]affinePipeline)}
}

// RegisterPipeline installs a simple affine src->dst transform: each axis
// is scaled then shifted. This is a stand-in for a named CRS pipeline
// (e.g. a PROJ "+proj=pipeline ..." string) that a real geometry engine
// would resolve via projection_get.
func (p *IdentityProjector) RegisterPipeline(src, dst int32, scaleX, scaleY, scaleZ, dx, dy, dz float64) {
	p.pipelines[[2]int32{src, dst}] = affinePipeline{dx: dx, dy: dy, dz: dz, scaleX: scaleX, scaleY: scaleY, scaleZ: scaleZ}
}

// Transform implements Projector.
func (p *IdentityProjector) Transform(pt Point, src, dst int32) (Point, error) {
	if src == dst {
		return pt.WithSRID(dst), nil
	}

	pipe, ok := p.pipelines[[2]int32{src, dst}]
	if !ok {
		return Point{}, fmt.Errorf("geom: no registered projection pipeline %d->%d", src, dst)
	}

	out := pt
	out.X = pt.X*pipe.scaleX + pipe.dx
	out.Y = pt.Y*pipe.scaleY + pipe.dy
	if pt.HasZ {
		out.Z = pt.Z*pipe.scaleZ + pipe.dz
	}
	out.SRID = dst

	return out, nil
}
