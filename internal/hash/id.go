// Package hash centralizes tempo's use of xxhash, the way the teacher's
// internal/hash package centralizes its own metric-ID hashing rather than
// letting every caller reach for xxhash directly.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of an arbitrary byte payload — basevalue's
// canonical-serialization hash (§4.3) needs this in addition to the
// teacher's original string-keyed ID, since a base value's payload is not
// always textual.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
