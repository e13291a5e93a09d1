package approx

import (
	"context"
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/lsh"
)

var (
	// ErrNilSet is returned when Order receives a nil vector set.
	ErrNilSet = errors.New("approx: nil vector set")

	// ErrStartOutOfRange is returned when Options.Start is not a valid case id.
	ErrStartOutOfRange = errors.New("approx: start case out of range")
)

// Options configures Order.
type Options struct {
	// Index parameters of the underlying LSH index.
	Index lsh.Options

	// Checks caps the candidates examined per query; lsh.ChecksUnlimited
	// trades run time for recall, which pays off as the index shrinks.
	Checks int

	// Start is the first case of the order.
	Start int
}

// DefaultOptions starts at case 0 with the default index and unlimited checks.
func DefaultOptions() Options {
	return Options{Index: lsh.DefaultOptions(), Checks: lsh.ChecksUnlimited}
}

// Result is the output of Order.
type Result struct {
	Order []int

	// Fallbacks counts steps where the index returned no neighbour and the
	// smallest unvisited id was taken instead.
	Fallbacks int
}

// Order chains set through approximate nearest neighbours.
// ctx is checked once per step.
func Order(ctx context.Context, set *bbv.Set, opts Options) (Result, error) {
	if set == nil {
		return Result{}, ErrNilSet
	}
	n := set.Len()
	if opts.Start < 0 || opts.Start >= n {
		return Result{}, ErrStartOutOfRange
	}

	ix, err := lsh.New(set.PackedAll(), set.ByteWidth(), opts.Index)
	if err != nil {
		return Result{}, err
	}

	var (
		unvisited = bitset.New(uint(n)).Complement()
		order     = make([]int, 0, n)
		current   = opts.Start
		fallbacks int
		point     []byte
		nn        []lsh.Neighbor
	)
	for ix.Size() > 1 {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		if point, err = ix.Point(current); err != nil {
			return Result{}, err
		}
		if err = ix.Remove(current); err != nil {
			return Result{}, err
		}
		order = append(order, current)
		unvisited.Clear(uint(current))

		if nn, err = ix.KNN(point, 1, opts.Checks); err != nil {
			return Result{}, err
		}
		if len(nn) == 0 {
			next, _ := unvisited.NextSet(0)
			current = int(next)
			fallbacks++
			continue
		}
		current = nn[0].ID
	}
	order = append(order, current)

	return Result{Order: order, Fallbacks: fallbacks}, nil
}
