package basevalue

import (
	"io"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/stbox"
)

// Dispatch is the per-BaseKind v-table of §4.3. Exactly one Dispatch
// implementation is registered per format.BaseKind; segment kernels and
// the lifting engine (§4.6) consult this interface exclusively rather
// than switching on BaseKind themselves.
type Dispatch interface {
	Kind() format.BaseKind

	// Size returns the serialized byte size of v's payload (excluding any
	// shared WKB frame header).
	Size(v Value) int

	// Equal and Less give the BaseKind its equality and total order.
	Equal(a, b Value) bool
	Less(a, b Value) bool

	// Hash returns a stable hash of v, used by restriction/dedup paths
	// (§4.4: "Values deduplicated set").
	Hash(v Value) uint64

	// SRID and SetSRID are only meaningful for spatial kinds; non-spatial
	// kinds return (0, false) and a no-op copy respectively.
	SRID(v Value) (int32, bool)
	SetSRID(v Value, srid int32) Value

	// InterpolateAt is only meaningful for continuous kinds; discrete
	// kinds return a unchanged, since the lifting engine never calls it
	// for a discrete-interpolation sequence (§4.5 guards this at the call
	// site).
	InterpolateAt(a, b Value, ratio float64) Value

	// SetSTBox folds v's spatial extent into box, only meaningful for
	// spatial kinds.
	SetSTBox(v Value, box *stbox.STBox)

	// WriteWKB appends v's payload (no frame header) to w using eng's byte
	// order.
	WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error

	// ReadWKB is the inverse of WriteWKB. hasZ carries the WKB frame's
	// flag-byte Z bit for the kinds whose payload size depends on it
	// (Geom/Geog); kinds with a fixed-size payload ignore it.
	ReadWKB(r io.Reader, eng endian.EndianEngine, hasZ bool) (Value, error)

	// ParseElement parses a single WKT base-value token into a Value.
	ParseElement(s string) (Value, error)
}

// registry maps each BaseKind to its Dispatch implementation. It is
// populated once at init and is read-only thereafter, the same
// "built once, read concurrently" shape as internal/srid.Catalog.
var registry = map[format.BaseKind]Dispatch{}

func register(d Dispatch) { registry[d.Kind()] = d }

// For returns the Dispatch registered for k. Panics if k has no registered
// implementation, since that indicates a BaseKind was added to format
// without a matching basevalue dispatcher — a programmer error, not a
// runtime condition callers should recover from.
func For(k format.BaseKind) Dispatch {
	d, ok := registry[k]
	if !ok {
		panic("basevalue: no Dispatch registered for " + k.String())
	}

	return d
}

func init() {
	register(intDispatch{})
	register(floatDispatch{})
	register(textDispatch{})
	register(geomDispatch{geodetic: false})
	register(geogDispatch{geomDispatch{geodetic: true}})
	register(cbufferDispatch{})
	register(npointDispatch{})
	register(poseDispatch{})
}
