// Package hamming is the distance model shared by every ordering strategy.
//
// Two representations are supported and agree on every pair:
//
//   - Distance / Normalized work on *bitset.BitSet vectors (popcount of XOR,
//     optionally divided by the universe size).
//   - Bytes works on packed byte records, the representation used by the
//     approximate index.
//
// All functions are pure and symmetric; d(a, a) == 0.
package hamming
