package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

// Parse parses a Temporal WKT literal per the grammar of §4.8:
//
//	Temporal := SRID? Interp? (Instant | DiscSeq | ContSeq | SeqSet)
//	SRID     := "SRID=" INT ";"
//	Interp   := "Interp=" ("Step" | "Linear" | "Discrete") ";"
//	Instant  := BaseValue "@" Timestamp
//	DiscSeq  := "{" Instant ("," Instant)* "}"
//	ContSeq  := ("[" | "(") Instant ("," Instant)* ("]" | ")")
//	SeqSet   := "{" ContSeq ("," ContSeq)* "}"
//
// Parsing is two-pass per composite (§4.8): splitTopLevel first counts and
// bounds the element list, then each element is parsed on the second pass
// into the pre-sized instant/sequence slice.
func Parse(s string, opts ...Option) (temporal.Temporal, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	rest := strings.TrimSpace(s)

	srid, rest, err := parseSRIDPrefix(rest)
	if err != nil {
		return nil, err
	}

	interp, hasInterp, rest, err := parseInterpPrefix(rest)
	if err != nil {
		return nil, err
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, fmt.Errorf("%w: empty temporal literal", errs.ErrTextInput)
	}

	switch rest[0] {
	case '{':
		inner, ok := stripEnclosing(rest, '{', '}')
		if !ok {
			return nil, fmt.Errorf("%w: unterminated '{' literal: %q", errs.ErrTextInput, rest)
		}
		elems := splitTopLevel(inner)
		if len(elems) == 0 || elems[0] == "" {
			return nil, fmt.Errorf("%w: empty instant/sequence set", errs.ErrEmptyInput)
		}
		if first := elems[0]; first[0] == '[' || first[0] == '(' {
			return parseSeqSet(elems, interp, hasInterp, srid, cfg)
		}

		return parseDiscSeq(elems, srid, cfg)
	case '[', '(':
		return parseContSeq(rest, interp, hasInterp, srid, cfg)
	default:
		return parseInstant(rest, srid, cfg)
	}
}

// parseSRIDPrefix consumes a leading "SRID=<int>;" if present.
func parseSRIDPrefix(s string) (int32, string, error) {
	rest, ok := consumePrefix(s, "SRID=")
	if !ok {
		return 0, s, nil
	}

	idx := strings.IndexByte(rest, ';')
	if idx < 0 {
		return 0, "", fmt.Errorf("%w: missing ';' terminating SRID=", errs.ErrTextInput)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(rest[:idx]), 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("%w: invalid SRID literal %q", errs.ErrTextInput, rest[:idx])
	}

	return int32(n), rest[idx+1:], nil
}

// parseInterpPrefix consumes a leading "Interp=<mode>;" if present.
func parseInterpPrefix(s string) (format.Interpolation, bool, string, error) {
	rest, ok := consumePrefix(s, "Interp=")
	if !ok {
		return format.InterpLinear, false, s, nil
	}

	idx := strings.IndexByte(rest, ';')
	if idx < 0 {
		return 0, false, "", fmt.Errorf("%w: missing ';' terminating Interp=", errs.ErrTextInput)
	}

	tok := strings.TrimSpace(rest[:idx])
	interp, ok := format.ParseInterpolation(tok)
	if !ok {
		return 0, false, "", fmt.Errorf("%w: unrecognized interpolation %q", errs.ErrTextInput, tok)
	}

	return interp, true, rest[idx+1:], nil
}

// applySRID folds srid (or cfg's default when srid is zero) onto v. A
// non-spatial base kind paired with a non-zero SRID is a mismatch: the
// grammar never declares an SRID for a kind that has none (§4.8: SRIDs
// from nested elements must agree with any outer SRID).
func applySRID(v basevalue.Value, srid int32, cfg *Config) (basevalue.Value, error) {
	want := srid
	if want == 0 {
		want = cfg.SRID
	}
	if want == 0 {
		return v, nil
	}

	disp := basevalue.For(v.Kind)
	if _, spatial := disp.SRID(v); !spatial {
		return v, fmt.Errorf("%w: SRID given for non-spatial base kind %s", errs.ErrSridMismatch, v.Kind)
	}

	return disp.SetSRID(v, want), nil
}

func parseInstant(s string, srid int32, cfg *Config) (temporal.TInstant, error) {
	valLit, tsLit, err := splitAt(s)
	if err != nil {
		return temporal.TInstant{}, err
	}

	v, err := parseBaseValueLiteral(valLit)
	if err != nil {
		return temporal.TInstant{}, err
	}

	v, err = applySRID(v, srid, cfg)
	if err != nil {
		return temporal.TInstant{}, err
	}

	t, err := timeset.ParseTimestamp(tsLit)
	if err != nil {
		return temporal.TInstant{}, err
	}

	return temporal.NewInstant(t, v), nil
}

func parseDiscSeq(elems []string, srid int32, cfg *Config) (temporal.TSequence, error) {
	instants := make([]temporal.TInstant, len(elems))
	for i, e := range elems {
		inst, err := parseInstant(e, srid, cfg)
		if err != nil {
			return temporal.TSequence{}, err
		}
		instants[i] = inst
	}

	return temporal.NewSequence(instants, format.InterpDiscrete, true, true, true)
}

func parseContSeq(s string, interp format.Interpolation, hasInterp bool, srid int32, cfg *Config) (temporal.TSequence, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return temporal.TSequence{}, fmt.Errorf("%w: truncated sequence literal %q", errs.ErrTextInput, s)
	}

	lowerInc := s[0] == '['
	upperInc := s[len(s)-1] == ']'
	if s[0] != '[' && s[0] != '(' {
		return temporal.TSequence{}, fmt.Errorf("%w: sequence must open with '[' or '('", errs.ErrTextInput)
	}
	if s[len(s)-1] != ']' && s[len(s)-1] != ')' {
		return temporal.TSequence{}, fmt.Errorf("%w: sequence must close with ']' or ')'", errs.ErrTextInput)
	}

	elems := splitTopLevel(s[1 : len(s)-1])
	if len(elems) == 0 || elems[0] == "" {
		return temporal.TSequence{}, fmt.Errorf("%w: empty sequence", errs.ErrEmptyInput)
	}

	instants := make([]temporal.TInstant, len(elems))
	for i, e := range elems {
		inst, err := parseInstant(e, srid, cfg)
		if err != nil {
			return temporal.TSequence{}, err
		}
		instants[i] = inst
	}

	finalInterp := format.InterpLinear
	switch {
	case hasInterp:
		finalInterp = interp
	case !instants[0].TempType.Base.Continuous():
		finalInterp = format.InterpStep
	}

	return temporal.NewSequence(instants, finalInterp, lowerInc, upperInc, true)
}

func parseSeqSet(elems []string, interp format.Interpolation, hasInterp bool, srid int32, cfg *Config) (temporal.TSequenceSet, error) {
	seqs := make([]temporal.TSequence, len(elems))
	for i, e := range elems {
		seq, err := parseContSeq(e, interp, hasInterp, srid, cfg)
		if err != nil {
			return temporal.TSequenceSet{}, err
		}
		seqs[i] = seq
	}

	return temporal.NewSequenceSet(seqs)
}
