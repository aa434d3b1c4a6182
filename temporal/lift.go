package temporal

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
)

// Lift applies op pointwise to two Temporal values, synchronizing them
// first (§4.6). Comparison ops (basevalue.OpComparison) synchronize
// with crossing insertion so the result captures the exact instant the
// comparison's truth value changes; arithmetic ops synchronize without
// crossings, since there is no discrete "becomes equal" event to find.
func Lift(op basevalue.BaseOp, a, b Temporal) (Temporal, error) {
	withCrossings := op.Kind == basevalue.OpComparison

	switch av := a.(type) {
	case TInstant:
		bv, ok := b.(TInstant)
		if !ok {
			return nil, fmt.Errorf("%w: lifting an instant requires an instant operand", errs.ErrInvalidArg)
		}
		if av.T != bv.T {
			return nil, fmt.Errorf("%w: instant operands have different timestamps", errs.ErrDisjointPeriods)
		}
		v, err := op.Fn(av.V, bv.V)
		if err != nil {
			return nil, err
		}

		return NewInstant(av.T, v), nil

	case TSequence:
		switch bv := b.(type) {
		case TSequence:
			return liftSequences(op, av, bv, withCrossings)
		case TSequenceSet:
			return liftSeqAgainstSet(op, av, bv, withCrossings)
		default:
			return nil, fmt.Errorf("%w: unsupported Temporal operand pairing", errs.ErrInvalidArg)
		}

	case TSequenceSet:
		switch bv := b.(type) {
		case TSequence:
			return liftSeqAgainstSet(op, bv, av, withCrossings)
		case TSequenceSet:
			return liftSequenceSets(op, av, bv, withCrossings)
		default:
			return nil, fmt.Errorf("%w: unsupported Temporal operand pairing", errs.ErrInvalidArg)
		}

	default:
		return nil, fmt.Errorf("%w: unknown Temporal variant", errs.ErrInternalType)
	}
}

func liftSequences(op basevalue.BaseOp, a, b TSequence, withCrossings bool) (Temporal, error) {
	if !a.Period().Overlaps(b.Period()) {
		return nil, nil // disjoint supports: Lift has no result, not an error (§4.7 empty-result sentinel)
	}

	syncA, syncB, err := Synchronize(a, b, withCrossings)
	if err != nil {
		return nil, err
	}

	instants := make([]TInstant, len(syncA.Instants))
	for i := range syncA.Instants {
		v, err := op.Fn(syncA.Instants[i].V, syncB.Instants[i].V)
		if err != nil {
			return nil, err
		}
		instants[i] = TInstant{T: syncA.Instants[i].T, V: v, TempType: format.NewTempType(v.Kind)}
	}

	interp := resultInterp(op, a.Interp, b.Interp)

	return NewSequence(instants, interp, syncA.LowerInc, syncA.UpperInc, true)
}

// resultInterp is Step whenever either operand is Step or the operator
// is a comparison (a comparison's truth value only changes at a
// crossing instant, not continuously between them); otherwise Discrete
// when either operand is Discrete, and Linear when both are Linear.
func resultInterp(op basevalue.BaseOp, a, b format.Interpolation) format.Interpolation {
	if op.Kind == basevalue.OpComparison {
		return format.InterpStep
	}
	if a == format.InterpStep || b == format.InterpStep {
		return format.InterpStep
	}
	if a == format.InterpDiscrete || b == format.InterpDiscrete {
		return format.InterpDiscrete
	}

	return format.InterpLinear
}

func liftSeqAgainstSet(op basevalue.BaseOp, a TSequence, b TSequenceSet, withCrossings bool) (Temporal, error) {
	var parts []TSequence
	for _, seq := range b.Sequences {
		if !a.Period().Overlaps(seq.Period()) {
			continue
		}
		res, err := liftSequences(op, a, seq, withCrossings)
		if err != nil {
			return nil, err
		}
		if res != nil {
			parts = append(parts, res.(TSequence))
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	return MergeArray(parts)
}

func liftSequenceSets(op basevalue.BaseOp, a, b TSequenceSet, withCrossings bool) (Temporal, error) {
	var parts []TSequence
	for _, sa := range a.Sequences {
		for _, sb := range b.Sequences {
			if !sa.Period().Overlaps(sb.Period()) {
				continue
			}
			res, err := liftSequences(op, sa, sb, withCrossings)
			if err != nil {
				return nil, err
			}
			if res != nil {
				parts = append(parts, res.(TSequence))
			}
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	return MergeArray(parts)
}
