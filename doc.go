// Package tso orders test cases so that consecutively executed cases share
// as much instruction-level locality as possible.
//
// Each test case is a fixed-width bit vector recording the basic blocks it
// exercised. Three interchangeable strategies turn a vector set into an
// execution order:
//
//   - threshold/ — cache-derived distance threshold, similarity ranks and a
//     depth-first chase through nearest similar peers
//   - branch/    — greedy maximum marginal coverage, then maximum diversity
//   - approx/    — a chain through approximate nearest neighbours (lsh/)
//
// Supporting packages:
//
//	bbv/     — vector sets, binary and text codecs, zstd input
//	hamming/ — Hamming distances on bitsets and packed bytes
//	matrix/  — compact upper-triangle distance storage and statistics
//	lsh/     — multi-probe bit-sampling LSH index with removal
//	order/   — permutation checks and the atomic order file writer
//	engine/  — load → order → export pipeline with run ids and logging
//	config/  — viper-backed settings and validation
//	logging/ — slog logger construction
//
// The tso command (cmd/tso) exposes optimize, branch, approx and inspect:
//
//	go install github.com/katalvlaran/tso/cmd/tso@latest
//	tso branch -i vectors.bbv -o order.txt
package tso
