package hamming

import (
	"encoding/binary"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// Distance returns popcount(a XOR b).
func Distance(a, b *bitset.BitSet) uint {
	return a.SymmetricDifferenceCardinality(b)
}

// Normalized returns Distance(a, b) / universe, in [0, 1].
// A zero universe yields 0.
func Normalized(a, b *bitset.BitSet, universe uint) float64 {
	if universe == 0 {
		return 0
	}
	return float64(Distance(a, b)) / float64(universe)
}

// Bytes returns the Hamming distance between two equal-length packed
// records. Only the common prefix is compared when lengths differ.
//
// Complexity: O(len/8) word popcounts.
func Bytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var (
		d int
		i int
	)
	for ; i+8 <= n; i += 8 {
		d += bits.OnesCount64(binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]))
	}
	for ; i < n; i++ {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}

// Uncovered returns popcount(v AND NOT covered): the bits of v that are
// not yet in covered.
func Uncovered(v, covered *bitset.BitSet) uint {
	return v.DifferenceCardinality(covered)
}
