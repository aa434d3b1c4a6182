package basevalue

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
)

// OpKind classifies a BaseOp for lifting purposes (§4.6): comparison
// operators always cross a sign/equality boundary between the two
// synchronized segments, so lifting must insert a crossing instant at
// the boundary; arithmetic operators are evaluated pointwise without
// inserting extra support.
type OpKind uint8

const (
	OpArithmetic OpKind = iota
	OpComparison
)

// BaseOp is a named, dispatch-free binary operator over two Values of
// matching Kind, tagged with the OpKind that governs how Lift treats it.
type BaseOp struct {
	Name string
	Kind OpKind
	Fn   func(a, b Value) (Value, error)
}

func numeric(v Value) (float64, bool) {
	switch v.Kind {
	case format.KindInt:
		return float64(v.I), true
	case format.KindFloat:
		return v.F, true
	default:
		return 0, false
	}
}

func arith(name string, fn func(a, b float64) float64) BaseOp {
	return BaseOp{
		Name: name, Kind: OpArithmetic,
		Fn: func(a, b Value) (Value, error) {
			x, okA := numeric(a)
			y, okB := numeric(b)
			if !okA || !okB {
				return Value{}, fmt.Errorf("%w: %s requires numeric operands", errs.ErrInvalidArg, name)
			}

			return NewFloat(fn(x, y)), nil
		},
	}
}

func compare(name string, fn func(cmp int) bool) BaseOp {
	return BaseOp{
		Name: name, Kind: OpComparison,
		Fn: func(a, b Value) (Value, error) {
			if a.Kind != b.Kind {
				return Value{}, fmt.Errorf("%w: %s requires matching kinds", errs.ErrInvalidArg, name)
			}
			disp := For(a.Kind)
			cmp := 0
			switch {
			case disp.Equal(a, b):
				cmp = 0
			case disp.Less(a, b):
				cmp = -1
			default:
				cmp = 1
			}
			if fn(cmp) {
				return NewInt(1), nil
			}

			return NewInt(0), nil
		},
	}
}

// OpAdd, OpSub, OpMul and OpDiv are the arithmetic BaseOps of §4.6.
var (
	OpAdd = arith("add", func(a, b float64) float64 { return a + b })
	OpSub = arith("sub", func(a, b float64) float64 { return a - b })
	OpMul = arith("mul", func(a, b float64) float64 { return a * b })
	OpDiv = arith("div", func(a, b float64) float64 { return a / b })
)

// OpEq, OpNe, OpLt, OpLe, OpGt and OpGe are the comparison BaseOps of
// §4.6; Lift always inserts a crossing instant for these.
var (
	OpEq = compare("eq", func(cmp int) bool { return cmp == 0 })
	OpNe = compare("ne", func(cmp int) bool { return cmp != 0 })
	OpLt = compare("lt", func(cmp int) bool { return cmp < 0 })
	OpLe = compare("le", func(cmp int) bool { return cmp <= 0 })
	OpGt = compare("gt", func(cmp int) bool { return cmp > 0 })
	OpGe = compare("ge", func(cmp int) bool { return cmp >= 0 })
)
