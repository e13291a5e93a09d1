package lsh

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/tso/hamming"
)

// Index is a multi-probe LSH index over fixed-width packed records.
type Index struct {
	width      int    // bytes per record
	data       []byte // n*width, row-major; shared with the caller
	n          int
	keyBits    int
	probeLevel int
	tables     []table
	removed    *bitset.BitSet
	live       int
}

type table struct {
	positions []uint
	buckets   map[uint64][]int32
}

// New indexes the records of data, each width bytes long. data is retained,
// not copied, and must not change while the index is in use.
//
// Complexity: O(n·Tables·KeyBits) time, O(n·Tables) memory.
func New(data []byte, width int, opts Options) (*Index, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || len(data)%width != 0 {
		return nil, ErrShape
	}
	n := len(data) / width
	if n == 0 {
		return nil, ErrEmpty
	}

	dims := width * 8
	ix := &Index{
		width:      width,
		data:       data,
		n:          n,
		keyBits:    min(opts.KeyBits, dims),
		probeLevel: opts.ProbeLevel,
		tables:     make([]table, opts.Tables),
		removed:    bitset.New(uint(n)),
		live:       n,
	}
	ix.probeLevel = min(ix.probeLevel, ix.keyBits)

	key := make([]byte, (ix.keyBits+7)/8)
	for t := range ix.tables {
		tb := table{
			positions: samplePositions(dims, ix.keyBits, tableRNG(opts.Seed, t)),
			buckets:   make(map[uint64][]int32),
		}
		for id := 0; id < n; id++ {
			tb.key(ix.point(id), key)
			h := xxhash.Sum64(key)
			tb.buckets[h] = append(tb.buckets[h], int32(id))
		}
		ix.tables[t] = tb
	}

	return ix, nil
}

// key writes the sampled bits of rec into dst (bit k of the key is bit
// positions[k] of rec).
func (tb *table) key(rec []byte, dst []byte) {
	clear(dst)
	for k, p := range tb.positions {
		if rec[p/8]&(1<<(p%8)) != 0 {
			dst[k/8] |= 1 << (k % 8)
		}
	}
}

func (ix *Index) point(id int) []byte {
	return ix.data[id*ix.width : (id+1)*ix.width]
}

// Size returns the number of points not yet removed.
func (ix *Index) Size() int { return ix.live }

// Point returns the record of id, removed or not. It must not be modified.
func (ix *Index) Point(id int) ([]byte, error) {
	if id < 0 || id >= ix.n {
		return nil, ErrOutOfRange
	}
	return ix.point(id), nil
}

// Remove hides id from later queries.
func (ix *Index) Remove(id int) error {
	if id < 0 || id >= ix.n {
		return ErrOutOfRange
	}
	if ix.removed.Test(uint(id)) {
		return ErrRemoved
	}
	ix.removed.Set(uint(id))
	ix.live--
	return nil
}

// KNN returns up to k live points nearest to q among the candidates found
// in probed buckets, closest first (ties by id). checks caps the number of
// distinct candidates examined; ChecksUnlimited examines all of them.
// An empty result is not an error.
func (ix *Index) KNN(q []byte, k, checks int) ([]Neighbor, error) {
	if len(q) != ix.width {
		return nil, ErrWidthMismatch
	}
	if k < 1 {
		return nil, ErrBadK
	}

	var (
		seen  = bitset.New(uint(ix.n))
		found []Neighbor
		key   = make([]byte, (ix.keyBits+7)/8)
		full  bool
	)
	for t := range ix.tables {
		tb := &ix.tables[t]
		tb.key(q, key)
		forEachNeighborKey(key, ix.keyBits, ix.probeLevel, func(nk []byte) bool {
			for _, id32 := range tb.buckets[xxhash.Sum64(nk)] {
				id := uint(id32)
				if ix.removed.Test(id) || seen.Test(id) {
					continue
				}
				seen.Set(id)
				found = append(found, Neighbor{ID: int(id32), Distance: hamming.Bytes(q, ix.point(int(id32)))})
				if checks > 0 && len(found) >= checks {
					full = true
					return false
				}
			}
			return true
		})
		if full {
			break
		}
	}

	slices.SortFunc(found, func(a, b Neighbor) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(found) > k {
		found = found[:k]
	}
	return found, nil
}

// forEachNeighborKey calls fn with key and then with every key obtained by
// flipping 1..level of its first bits bits, in lexicographic order of the
// flipped positions. fn returning false stops the walk. key is restored
// before returning.
func forEachNeighborKey(key []byte, bits, level int, fn func([]byte) bool) {
	if !fn(key) {
		return
	}

	var (
		idx = make([]int, level)
		i   int
	)
	flip := func(r int) {
		for _, b := range idx[:r] {
			key[b/8] ^= 1 << (b % 8)
		}
	}
	for r := 1; r <= level; r++ {
		for i = 0; i < r; i++ {
			idx[i] = i
		}
		for {
			flip(r)
			ok := fn(key)
			flip(r)
			if !ok {
				return
			}

			i = r - 1
			for i >= 0 && idx[i] == bits-r+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
