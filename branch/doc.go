// Package branch implements the coverage-greedy ("branch") test-case optimizer.
//
// Each vector is read as the set of basic blocks a case covers. Cases are
// sequenced in two phases:
//
//   - Coverage: pick the unvisited case with the most blocks not yet in the
//     visited union (ties to the smaller id), OR it into the union, re-rank.
//     When no case adds a block the smallest unvisited id wins the tie.
//   - Diversity: once the union covers the whole universe, pick the case
//     with the largest Hamming distance to the previously picked one (ties
//     to the smaller id).
//
// Blocks that no case executes keep the union short of the universe, so
// such sets are ordered by the coverage phase alone.
//
// The first phase is a lazy greedy maximum-coverage heuristic; the second
// keeps dissimilar cases apart once everything has been seen.
//
// Complexity: O(N²·U/64) time, O(N) extra memory.
package branch
