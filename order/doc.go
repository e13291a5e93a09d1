// Package order holds the case order produced by every strategy and the
// exporter that writes it.
//
// A case order is a permutation of {0..N-1}. The order file is text, one
// decimal id per line, in visitation order.
//
// Files are written through File: the content goes to a temporary file next
// to the destination and is renamed into place on Commit, so a failed run
// never leaves a partial artifact behind. Opening the temporary file is the
// point where an unwritable destination is reported.
package order
