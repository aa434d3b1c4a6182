package wkt

import (
	"fmt"
	"strings"

	"github.com/temporalcore/tempo/errs"
)

// splitTopLevel splits s on commas that are not nested inside (), [] or {}
// brackets, trimming surrounding space from each piece. This is the first
// pass of the two-pass protocol (§4.8): it counts and bounds-checks the
// composite's elements before the second pass parses each one.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[start:]))

	return out
}

// splitAt locates the top-level '@' separating an Instant's BaseValue from
// its Timestamp, skipping any '@' nested inside brackets (none of the
// BaseValue literals this package parses ever contain '@', but the scan
// stays bracket-aware for symmetry with splitTopLevel).
func splitAt(s string) (string, string, error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '@':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), nil
			}
		}
	}

	return "", "", fmt.Errorf("%w: instant missing '@' timestamp separator: %q", errs.ErrTextInput, s)
}

// stripEnclosing removes a single matching pair of open/close bytes
// surrounding s, requiring the whole string (after trimming space) to be
// wrapped by exactly that pair.
func stripEnclosing(s string, open, close byte) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return "", false
	}

	return strings.TrimSpace(s[1 : len(s)-1]), true
}

// consumePrefix consumes a case-insensitive literal prefix, returning the
// remainder of s unchanged (no separator is skipped). ok is false if s
// does not begin with prefix.
func consumePrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}

	return s[len(prefix):], true
}
