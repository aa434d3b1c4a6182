// Package format defines the closed enumerations shared across tempo:
// the base-value kind tag, the interpolation mode, the WKB subtype tag,
// and the payload encoding/compression tags. It mirrors the teacher's own
// format/types.go, which plays the analogous role for mebo's
// encoding/compression enums; EncodingType and CompressionType below are
// kept close to the teacher's original. The wkb package's compressed
// frame (see compress package) reuses CompressionType unchanged;
// EncodingType is not used by any tempo package.
package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw represents raw data with no format.
	TypeDelta   EncodingType = 0x2 // TypeDelta represents delta-of-delta encoding.
	TypeGorilla EncodingType = 0x3 // TypeGorilla represents Gorilla encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// BaseKind is the closed set of base-value tags a Temporal can carry (§3).
//
// Double2, Double3 and Double4 are internal accumulator kinds used only by
// aggregation-style code (component-wise running sums); no parser or WKB
// frame ever names them directly.
type BaseKind uint8

const (
	KindInt     BaseKind = 0x1
	KindFloat   BaseKind = 0x2
	KindText    BaseKind = 0x3
	KindGeom    BaseKind = 0x4
	KindGeog    BaseKind = 0x5
	KindCBuffer BaseKind = 0x6
	KindNPoint  BaseKind = 0x7
	KindPose    BaseKind = 0x8
	KindDouble2 BaseKind = 0x9
	KindDouble3 BaseKind = 0xA
	KindDouble4 BaseKind = 0xB
)

func (k BaseKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindText:
		return "Text"
	case KindGeom:
		return "Geom"
	case KindGeog:
		return "Geog"
	case KindCBuffer:
		return "CBuffer"
	case KindNPoint:
		return "NPoint"
	case KindPose:
		return "Pose"
	case KindDouble2:
		return "Double2"
	case KindDouble3:
		return "Double3"
	case KindDouble4:
		return "Double4"
	default:
		return "Unknown"
	}
}

// Continuous reports whether linear interpolation is defined for k.
func (k BaseKind) Continuous() bool {
	switch k {
	case KindFloat, KindGeom, KindGeog, KindCBuffer, KindNPoint, KindPose,
		KindDouble2, KindDouble3, KindDouble4:
		return true
	default:
		return false
	}
}

// Spatial reports whether k carries an SRID and participates in bounding
// box (STBox) computation.
func (k BaseKind) Spatial() bool {
	switch k {
	case KindGeom, KindGeog, KindCBuffer, KindPose:
		return true
	default:
		return false
	}
}

// Numeric reports whether k supports range restriction (AtRange/MinusRange)
// and a cached TBox (value-range x period) bounding box.
func (k BaseKind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Interpolation is the per-sequence interpolation mode (§3, glossary).
type Interpolation uint8

const (
	InterpDiscrete Interpolation = iota
	InterpStep
	InterpLinear
)

func (i Interpolation) String() string {
	switch i {
	case InterpDiscrete:
		return "Discrete"
	case InterpStep:
		return "Step"
	case InterpLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// ParseInterpolation maps the WKT token ("Step"|"Linear"|"Discrete") to an
// Interpolation value.
func ParseInterpolation(s string) (Interpolation, bool) {
	switch s {
	case "Discrete":
		return InterpDiscrete, true
	case "Step":
		return InterpStep, true
	case "Linear":
		return InterpLinear, true
	default:
		return 0, false
	}
}

// TempType pairs a BaseKind with a continuity hint, used to tag TInstant,
// TSequence and TSequenceSet values. It doubles as the WKB TempType code.
type TempType struct {
	Base       BaseKind
	Continuous bool
}

// NewTempType builds a TempType for base, clamping Continuous to what base
// actually supports.
func NewTempType(base BaseKind) TempType {
	return TempType{Base: base, Continuous: base.Continuous()}
}

// Code returns the 2-byte WKB TempType code: high byte is BaseKind, low
// byte is 1 if Continuous else 0.
func (t TempType) Code() uint16 {
	c := uint16(0)
	if t.Continuous {
		c = 1
	}

	return uint16(t.Base)<<8 | c
}

// TempTypeFromCode decodes a WKB TempType code produced by Code.
func TempTypeFromCode(code uint16) TempType {
	return TempType{
		Base:       BaseKind(code >> 8),
		Continuous: code&0x1 != 0,
	}
}

// Subtype tags which of the three Temporal variants a WKB frame or parsed
// value represents. The Discrete sub-case of Sequence is NOT a separate
// Subtype; it is a Sequence with Interpolation == InterpDiscrete (§3).
type Subtype uint8

const (
	SubtypeInstant Subtype = iota
	SubtypeSequence
	SubtypeSequenceSet
)

func (s Subtype) String() string {
	switch s {
	case SubtypeInstant:
		return "Instant"
	case SubtypeSequence:
		return "Sequence"
	case SubtypeSequenceSet:
		return "SequenceSet"
	default:
		return "Unknown"
	}
}
