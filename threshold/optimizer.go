package threshold

import (
	"context"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/hamming"
	"github.com/katalvlaran/tso/matrix"
)

// Order computes a case order for set with the threshold-rank heuristic.
//
// Contracts:
//   - set must be non-nil (bbv guarantees N ≥ 1).
//   - opts must pass Options.Validate.
//   - ctx is checked between top-level selections only.
//
// The returned order is a permutation of 0..N-1 and is fully determined by
// the input and opts.
//
// Complexity: O(N²) distance evaluations and O(N²) memory.
func Order(ctx context.Context, set *bbv.Set, opts Options) (Result, error) {
	if set == nil {
		return Result{}, ErrNilSet
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var (
		n         = set.Len()
		universe  = set.Universe()
		capacity  = CacheCapacity(opts.L1CacheSize, opts.AvgInstructionSize)
		threshold = resolveThreshold(opts, capacity)
		sim       = newSimilarity(n)
	)

	dist, err := matrix.NewTriangle(n)
	if err != nil {
		return Result{}, err
	}
	err = dist.Fill(
		func(i, j int) float64 {
			return hamming.Normalized(set.Vector(i), set.Vector(j), universe)
		},
		func(i, j int, d float64) {
			if d < threshold {
				sim.link(i, j)
			}
		},
	)
	if err != nil {
		return Result{}, err
	}
	sim.sort(dist)

	o := newOptimizer(set, dist, sim, opts)
	if err = o.run(ctx); err != nil {
		return Result{}, err
	}

	d := Details{
		Threshold:          threshold,
		AvgInstructionSize: opts.AvgInstructionSize,
		L1CacheSize:        opts.L1CacheSize,
		CacheCapacity:      capacity,
		Cases:              n,
		Pairs:              dist.Pairs(),
		PairsBelow:         dist.CountBelow(threshold),
		MeanDistance:       dist.Mean(),
		StdDevDistance:     dist.StdDev(),
		Rank:               opts.Rank.String(),
		Chained:            o.chained,
		Fallbacks:          o.fallbacks,
	}
	if d.Pairs > 0 {
		d.PercentBelow = float64(d.PairsBelow) / float64(d.Pairs) * 100
	}

	return Result{Order: o.order, Details: d}, nil
}

// optimizer is the per-run selection state. It is owned by a single Order
// call and never shared.
type optimizer struct {
	set     *bbv.Set
	dist    *matrix.Triangle
	sim     *similarity
	mode    RankMode
	chain   bool
	queue   *rankQueue
	visited []bool
	covered *bitset.BitSet
	order   []int
	last    int
	scratch []int // unvisited ids for the farthest-case fallback

	chained   int
	fallbacks int
}

func newOptimizer(set *bbv.Set, dist *matrix.Triangle, sim *similarity, opts Options) *optimizer {
	n := set.Len()
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		if opts.Rank == RankByCoverage {
			rank[i] = int(set.Popcount(i))
		} else {
			rank[i] = sim.count(i)
		}
	}

	return &optimizer{
		set:     set,
		dist:    dist,
		sim:     sim,
		mode:    opts.Rank,
		chain:   opts.Chain,
		queue:   newRankQueue(rank),
		visited: make([]bool, n),
		covered: bitset.New(set.Universe()),
		order:   make([]int, 0, n),
		last:    -1,
		scratch: make([]int, 0, n),
	}
}

// run selects cases until none is left. A positive top rank wins; when all
// ranks are exhausted the case farthest from the last visited one is taken.
func (o *optimizer) run(ctx context.Context) error {
	var id, r int
	for o.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		id, r = o.queue.top()
		if r <= 0 && o.last >= 0 {
			id = o.farthestUnvisited()
			o.fallbacks++
		}
		o.chase(id)
	}
	return nil
}

// chase visits id and, when chaining, keeps following the nearest
// unvisited similar peer while the case just visited had a positive rank.
// It is the iterative form of a depth-first walk down the similarity lists.
func (o *optimizer) chase(id int) {
	var r int
	for id >= 0 {
		r = o.queue.rank[id]
		o.visit(id)
		if !o.chain || r <= 0 {
			return
		}
		id = o.sim.nearestUnvisited(id, o.visited)
		if id >= 0 {
			o.chained++
		}
	}
}

// visit appends id to the order and updates the ranks it affects.
func (o *optimizer) visit(id int) {
	o.order = append(o.order, id)
	o.visited[id] = true
	o.queue.remove(id)
	o.last = id

	before := o.covered.Count()
	o.covered.InPlaceUnion(o.set.Vector(id))

	switch o.mode {
	case RankBySimilarity:
		for _, p := range o.sim.peers[id] {
			if !o.visited[p] {
				o.queue.set(p, o.queue.rank[p]-1)
			}
		}
	case RankByCoverage:
		if o.covered.Count() == before {
			return
		}
		for p := range o.visited {
			if !o.visited[p] {
				o.queue.set(p, int(hamming.Uncovered(o.set.Vector(p), o.covered)))
			}
		}
	}
}

// farthestUnvisited returns the unvisited case with the largest distance to
// the last visited one, ties to the smaller id.
func (o *optimizer) farthestUnvisited() int {
	o.scratch = o.scratch[:0]
	for p := range o.visited {
		if !o.visited[p] {
			o.scratch = append(o.scratch, p)
		}
	}
	best, _ := o.dist.FarthestFrom(o.last, o.scratch)
	return best
}
