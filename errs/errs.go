// Package errs defines the sentinel error taxonomy shared by every tempo
// package.
//
// Every exported operation that can fail returns either an owned result or
// a sentinel (nil / empty / false) and wraps exactly one of these sentinels
// with fmt.Errorf("%w: ...", errs.ErrX, detail) before returning. Callers
// can test the taxonomy leaf with errors.Is, regardless of the detail text.
package errs

import "errors"

// Parse and wire-format errors.
var (
	// ErrTextInput indicates the WKT/text input could not be parsed.
	ErrTextInput = errors.New("tempo: invalid text input")
	// ErrSridMismatch indicates two operands carry incompatible SRIDs.
	ErrSridMismatch = errors.New("tempo: SRID mismatch")
	// ErrBinaryInput indicates a WKB buffer is malformed or truncated.
	ErrBinaryInput = errors.New("tempo: invalid binary input")
)

// Argument and value errors.
var (
	// ErrInvalidArg indicates an argument value is out of its valid domain.
	ErrInvalidArg = errors.New("tempo: invalid argument")
	// ErrDimensionMismatch indicates an operation mixed incompatible
	// dimensionality (e.g. a 2D box against a 3D box on a Z-only op).
	ErrDimensionMismatch = errors.New("tempo: dimension mismatch")
	// ErrInterpolationIllegal indicates Linear interpolation was requested
	// for a BaseKind that has no continuous interpolation defined.
	ErrInterpolationIllegal = errors.New("tempo: interpolation not defined for base kind")
)

// Structural invariant errors.
var (
	// ErrNonMonotonic indicates a sequence of timestamps is not strictly
	// increasing.
	ErrNonMonotonic = errors.New("tempo: timestamps not strictly increasing")
	// ErrDuplicateTimestamp indicates two instants share a timestamp with
	// differing values.
	ErrDuplicateTimestamp = errors.New("tempo: duplicate timestamp with differing value")
	// ErrEmptyInput indicates a constructor was given zero elements where
	// at least one is required.
	ErrEmptyInput = errors.New("tempo: empty input")
	// ErrBoundInclusivity indicates lower/upper inclusivity flags violate
	// an invariant (e.g. lower == upper and not both inclusive).
	ErrBoundInclusivity = errors.New("tempo: invalid bound inclusivity")
	// ErrMixedTempType indicates a composite (sequence-set, merge, etc.)
	// was given elements of differing TempType or interpolation.
	ErrMixedTempType = errors.New("tempo: mixed temporal type or interpolation")
	// ErrOverlap indicates sequences that were expected to be disjoint
	// overlap in time.
	ErrOverlap = errors.New("tempo: overlapping sequences")
)

// Restriction and algebra errors.
var (
	// ErrRestrictViolation indicates a restriction operation (at/minus)
	// was given an incompatible predicate for the receiver's BaseKind.
	ErrRestrictViolation = errors.New("tempo: restriction not applicable to base kind")
	// ErrDisjointPeriods indicates an operation required overlapping
	// periods (e.g. strict union/intersection) but received disjoint ones.
	ErrDisjointPeriods = errors.New("tempo: periods are disjoint")
)

// Internal/dispatch errors.
var (
	// ErrInternalType indicates a BaseKind dispatch table lookup failed,
	// almost always a programming error rather than bad input.
	ErrInternalType = errors.New("tempo: internal dispatch failure")
	// ErrUnsupported indicates a feature is recognized but not implemented
	// for the given combination of inputs (e.g. a SequenceSet operand to a
	// derived constructor, or a base kind with no crossing solver).
	ErrUnsupported = errors.New("tempo: unsupported")
)
