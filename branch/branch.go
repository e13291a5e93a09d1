package branch

import (
	"context"
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/hamming"
)

// ErrNilSet is returned when Order receives a nil vector set.
var ErrNilSet = errors.New("branch: nil vector set")

// Result is the output of Order.
type Result struct {
	// Order is the visitation order, a permutation of 0..N-1.
	Order []int

	// Covered is the union of the cases picked by the coverage phase; it
	// equals the OR of all vectors.
	Covered *bitset.BitSet

	// SaturatedAt is the position in Order of the first case chosen by the
	// diversity phase, or len(Order) if the union never filled the universe.
	SaturatedAt int
}

// Order sequences set greedily by marginal coverage, then by distance.
// ctx is checked once per selection.
func Order(ctx context.Context, set *bbv.Set) (Result, error) {
	if set == nil {
		return Result{}, ErrNilSet
	}

	var (
		n       = set.Len()
		rank    = make([]uint, n)
		alive   = make([]bool, n)
		covered = bitset.New(set.Universe())
		order   = make([]int, 0, n)
		last    = -1
		sat     = -1
		best    int
		i       int
	)
	for i = 0; i < n; i++ {
		rank[i] = set.Popcount(i)
		alive[i] = true
	}

	for len(order) < n {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if sat < 0 && covered.All() {
			sat = len(order)
		}
		if sat < 0 {
			best = pickByRank(rank, alive)
		} else {
			best = pickByDistance(set, alive, last)
		}

		alive[best] = false
		order = append(order, best)
		last = best

		if sat < 0 {
			covered.InPlaceUnion(set.Vector(best))
			for i = 0; i < n; i++ {
				if alive[i] {
					rank[i] = hamming.Uncovered(set.Vector(i), covered)
				}
			}
		}
	}

	if sat < 0 {
		sat = n
	}
	return Result{Order: order, Covered: covered, SaturatedAt: sat}, nil
}

// pickByRank returns the alive case with the highest rank, ties to the smaller id.
func pickByRank(rank []uint, alive []bool) int {
	best := -1
	for i := range rank {
		if alive[i] && (best < 0 || rank[i] > rank[best]) {
			best = i
		}
	}
	return best
}

// pickByDistance returns the alive case farthest from last, ties to the
// smaller id. With no previous case the smallest alive id is returned.
func pickByDistance(set *bbv.Set, alive []bool, last int) int {
	var (
		best  = -1
		bestD uint
		d     uint
	)
	for i := range alive {
		if !alive[i] {
			continue
		}
		if last < 0 {
			return i
		}
		d = hamming.Distance(set.Vector(last), set.Vector(i))
		if best < 0 || d > bestD {
			best, bestD = i, d
		}
	}
	return best
}
