// Package matrix stores pairwise distances between test cases.
//
// The distance model is symmetric with a zero diagonal, so only the strict
// upper triangle is kept: a Triangle over n cases holds n·(n−1)/2 values in
// a flat row-major slice. Row i stores the pairs (i, i+1) … (i, n−1).
//
// Fill is the only bulk writer. It walks pairs in a fixed i<j order, so a
// pair can never be computed twice and a case is never compared with
// itself; those contract violations are unreachable by construction.
//
// Statistics (Mean, StdDev, CountBelow) are computed over the stored pairs
// with gonum/stat and feed the optimizer's details report.
package matrix
