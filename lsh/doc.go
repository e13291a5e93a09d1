// Package lsh is an approximate nearest-neighbour index for packed bit
// vectors under Hamming distance.
//
// The index is a classic bit-sampling LSH with multi-probe lookup:
//
//   - Tables independent hash tables are built. Table t samples KeyBits bit
//     positions (a seeded random subset of the record bits); the sampled bits
//     form the point's key and xxhash of the key selects its bucket.
//   - A query probes, in every table, the bucket of its own key and the
//     buckets of every key within ProbeLevel bit flips of it.
//   - Candidates found in probed buckets are re-ranked by exact Hamming
//     distance; ties go to the smaller id.
//
// More tables, fewer key bits or a higher probe level raise recall at the
// cost of query time. The checks budget of KNN caps the number of distinct
// candidates examined; ChecksUnlimited examines all of them.
//
// Points can be removed; removed points are skipped by later queries. A query
// may legitimately return no neighbour when no live point shares a probed
// bucket with it.
//
// Index is not safe for concurrent use.
package lsh
