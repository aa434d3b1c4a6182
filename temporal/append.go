package temporal

import (
	"fmt"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
)

// AppendInstant extends temp with a new instant, per §4.4: if the
// instant's time equals temp's last time, values must match unless temp
// is linear, in which case a mismatch promotes the result to a
// TSequenceSet by appending a singleton sequence; otherwise the instant
// is appended and the last three instants are renormalized.
func AppendInstant(temp Temporal, inst TInstant) (Temporal, error) {
	switch t := temp.(type) {
	case TInstant:
		return appendToInstant(t, inst)
	case TSequence:
		return appendToSequence(t, inst)
	case TSequenceSet:
		return appendToSequenceSet(t, inst)
	default:
		return nil, fmt.Errorf("%w: unknown Temporal variant", errs.ErrInternalType)
	}
}

func appendToInstant(base TInstant, inst TInstant) (Temporal, error) {
	if base.TempType != inst.TempType {
		return nil, fmt.Errorf("%w: append instant TempType mismatch", errs.ErrMixedTempType)
	}
	if inst.T <= base.T {
		return nil, fmt.Errorf("%w: appended instant must be strictly later", errs.ErrNonMonotonic)
	}

	return NewSequence([]TInstant{base, inst}, format.InterpLinear, true, true, true)
}

func appendToSequence(seq TSequence, inst TInstant) (Temporal, error) {
	if seq.TempTypeV != inst.TempType {
		return nil, fmt.Errorf("%w: append instant TempType mismatch", errs.ErrMixedTempType)
	}

	last := seq.Instants[len(seq.Instants)-1]
	disp := basevalue.For(seq.TempTypeV.Base)

	switch {
	case inst.T == last.T:
		if disp.Equal(last.V, inst.V) {
			return seq, nil
		}
		if seq.Interp != format.InterpLinear {
			return nil, fmt.Errorf("%w: duplicate timestamp with differing value", errs.ErrDuplicateTimestamp)
		}
		// Linear mismatch at a shared instant: a jump discontinuity, only
		// representable by right-opening seq at the boundary and splitting
		// the new value off into its own singleton sequence.
		opened, err := NewSequence(seq.Instants, seq.Interp, seq.LowerInc, false, false)
		if err != nil {
			return nil, err
		}
		singleton, err := NewSequence([]TInstant{inst}, seq.Interp, true, true, false)
		if err != nil {
			return nil, err
		}

		return NewSequenceSet([]TSequence{opened, singleton})
	case inst.T < last.T:
		return nil, fmt.Errorf("%w: appended instant must be strictly later", errs.ErrNonMonotonic)
	default:
		instants := append(append([]TInstant{}, seq.Instants...), inst)

		return NewSequence(instants, seq.Interp, seq.LowerInc, seq.UpperInc, true)
	}
}

func appendToSequenceSet(set TSequenceSet, inst TInstant) (Temporal, error) {
	if set.TempTypeV != inst.TempType {
		return nil, fmt.Errorf("%w: append instant TempType mismatch", errs.ErrMixedTempType)
	}

	last := set.Sequences[len(set.Sequences)-1]
	appended, err := appendToSequence(last, inst)
	if err != nil {
		return nil, err
	}

	sequences := append([]TSequence{}, set.Sequences[:len(set.Sequences)-1]...)
	switch a := appended.(type) {
	case TSequence:
		sequences = append(sequences, a)
	case TSequenceSet:
		sequences = append(sequences, a.Sequences...)
	}

	return NewSequenceSet(sequences)
}
