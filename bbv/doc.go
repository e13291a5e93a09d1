// Package bbv holds the vector store: an immutable, in-memory set of
// fixed-width basic block vectors, one per test case.
//
// Bit i of a vector is set iff the test case executed basic block (or
// branch) i of the reference binary. Every vector in a Set has the same
// width (the universe size U) and the index of a vector inside the Set is
// the test-case identifier used by every ordering strategy.
//
// Two views of the same data are kept side by side:
//
//   - Vector(i): a *bitset.BitSet of length U, used by the greedy optimizers
//     for union, difference and XOR cardinalities.
//   - Packed(i): B = ceil(U/8) bytes, bit i stored as bit (i mod 8) of byte
//     i/8, used by the approximate Hamming index.
//
// On-disk formats:
//
//   - Binary: "BBV1" magic, little-endian uint32 universe, uint32 case count,
//     then count records of B packed bytes. The stream may be zstd-compressed;
//     Open detects the frame magic and decompresses transparently.
//   - Text (*.txt): one vector per non-empty line written as '0'/'1'
//     characters, character i = bit i. Lines starting with '#' are comments.
//
// The Set is read-only after construction; callers must not mutate the
// bitsets returned by Vector.
package bbv
