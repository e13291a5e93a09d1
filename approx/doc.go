// Package approx builds a test-case order by chaining approximate nearest
// neighbours.
//
// All packed vectors go into an lsh.Index. Starting from a fixed case, the
// builder repeatedly removes the current case from the index, appends it to
// the order and asks the index for the nearest remaining neighbour of the
// removed vector. When the index finds nothing (its buckets can miss every
// live point) the smallest unvisited id is used instead. The last live point
// closes the order.
//
// Exact nearest-neighbour chaining is itself O(N²); the index keeps the
// expected cost sub-quadratic at the price of occasional worse adjacency.
package approx
