// Package threshold implements the threshold-rank test-case optimizer.
//
// The optimizer orders test cases so that cases executed back to back share
// as much instruction-cache footprint as possible:
//
//  1. A cache model turns the L1 instruction-cache size and the average
//     instruction size into an instruction capacity, and from it a
//     dissimilarity threshold (see DeriveThreshold).
//  2. Every unordered pair (i, j), i<j, gets a normalized Hamming distance,
//     stored in a matrix.Triangle. Pairs strictly below the threshold are
//     "similar": each case keeps a list of its similar peers ordered by
//     ascending distance, ties by id.
//  3. Cases are visited greedily. The highest-ranked unvisited case is taken
//     (ties to the smaller id); when every rank is zero the case farthest
//     from the last visited one is taken instead. With chaining enabled the
//     optimizer then chases the nearest unvisited similar peer depth-first
//     until it reaches a dead end.
//
// Two rank definitions are available (Options.Rank):
//
//   - RankBySimilarity: number of similar peers still unvisited.
//   - RankByCoverage: number of the case's bits not yet covered by the
//     union of visited vectors.
//
// Complexity: O(N²) time and memory for the distance matrix, plus
// O(N² log N) worst case for rank maintenance.
package threshold
