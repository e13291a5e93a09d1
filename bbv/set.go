package bbv

import "github.com/bits-and-blooms/bitset"

// Set is an immutable collection of equal-width bit vectors.
type Set struct {
	universe uint
	width    int // bytes per packed record
	vecs     []*bitset.BitSet
	counts   []uint
	packed   []byte // len(vecs)*width, row-major
}

// ByteWidth returns the number of bytes needed to pack universe bits.
func ByteWidth(universe uint) int {
	return int((universe + 7) / 8)
}

// NewSet builds a Set from bitsets of length universe.
// The bitsets are cloned; later mutation by the caller does not leak in.
//
// Complexity: O(N·U/64) time and O(N·U/8) space.
func NewSet(universe uint, vecs []*bitset.BitSet) (*Set, error) {
	if universe == 0 {
		return nil, ErrZeroUniverse
	}
	if len(vecs) == 0 {
		return nil, ErrEmptySet
	}

	var (
		n = len(vecs)
		s = &Set{
			universe: universe,
			width:    ByteWidth(universe),
			vecs:     make([]*bitset.BitSet, n),
			counts:   make([]uint, n),
		}
		i int
	)
	s.packed = make([]byte, n*s.width)
	for i = 0; i < n; i++ {
		if vecs[i] == nil || vecs[i].Len() != universe {
			return nil, ErrUniverseMismatch
		}
		s.vecs[i] = vecs[i].Clone()
		s.counts[i] = s.vecs[i].Count()
		packInto(s.packed[i*s.width:(i+1)*s.width], s.vecs[i])
	}

	return s, nil
}

// FromPacked builds a Set of n vectors from a flat row-major buffer of
// n*ByteWidth(universe) bytes. Padding bits past universe must be zero.
func FromPacked(universe uint, n int, data []byte) (*Set, error) {
	if universe == 0 {
		return nil, ErrZeroUniverse
	}
	if n <= 0 {
		return nil, ErrEmptySet
	}
	width := ByteWidth(universe)
	if len(data) < n*width {
		return nil, ErrTruncated
	}
	if len(data) > n*width {
		return nil, ErrTrailingData
	}

	vecs := make([]*bitset.BitSet, n)
	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		vecs[i], err = unpack(data[i*width:(i+1)*width], universe)
		if err != nil {
			return nil, err
		}
	}

	return NewSet(universe, vecs)
}

// FromStrings builds a Set from '0'/'1' rows, character i being bit i.
// It is mostly useful for fixtures:
//
//	s, _ := bbv.FromStrings("1100", "0110", "0011")
func FromStrings(rows ...string) (*Set, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySet
	}
	universe := uint(len(rows[0]))
	if universe == 0 {
		return nil, ErrZeroUniverse
	}

	vecs := make([]*bitset.BitSet, len(rows))
	var (
		i   int
		err error
	)
	for i = range rows {
		if uint(len(rows[i])) != universe {
			return nil, ErrUniverseMismatch
		}
		vecs[i], err = parseRow(rows[i])
		if err != nil {
			return nil, err
		}
	}

	return NewSet(universe, vecs)
}

// Len returns the number of test cases N.
func (s *Set) Len() int { return len(s.vecs) }

// Universe returns the vector width U in bits.
func (s *Set) Universe() uint { return s.universe }

// ByteWidth returns B, the packed record width in bytes.
func (s *Set) ByteWidth() int { return s.width }

// Vector returns the bitset of case i. The result must not be modified.
func (s *Set) Vector(i int) *bitset.BitSet { return s.vecs[i] }

// Popcount returns the number of set bits of case i.
func (s *Set) Popcount(i int) uint { return s.counts[i] }

// Packed returns the packed bytes of case i. The result must not be modified.
func (s *Set) Packed(i int) []byte { return s.packed[i*s.width : (i+1)*s.width] }

// PackedAll returns the flat N×B packed buffer. The result must not be modified.
func (s *Set) PackedAll() []byte { return s.packed }

// Union returns a fresh bitset holding the OR of every vector.
func (s *Set) Union() *bitset.BitSet {
	u := bitset.New(s.universe)
	for _, v := range s.vecs {
		u.InPlaceUnion(v)
	}
	return u
}

// Summarize reports popcount statistics and union coverage.
func Summarize(s *Set) Stats {
	st := Stats{Cases: s.Len(), Universe: s.universe, MinBits: s.counts[0]}
	var total uint
	for _, c := range s.counts {
		total += c
		if c < st.MinBits {
			st.MinBits = c
		}
		if c > st.MaxBits {
			st.MaxBits = c
		}
	}
	st.MeanBits = float64(total) / float64(len(s.counts))
	st.Covered = s.Union().Count()
	return st
}

func packInto(dst []byte, v *bitset.BitSet) {
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		dst[i/8] |= 1 << (i % 8)
	}
}

func unpack(src []byte, universe uint) (*bitset.BitSet, error) {
	v := bitset.New(universe)
	var (
		b   int
		bit uint
	)
	for b = range src {
		if src[b] == 0 {
			continue
		}
		for bit = 0; bit < 8; bit++ {
			if src[b]&(1<<bit) == 0 {
				continue
			}
			idx := uint(b)*8 + bit
			if idx >= universe {
				return nil, ErrPaddingBits
			}
			v.Set(idx)
		}
	}
	return v, nil
}

func parseRow(row string) (*bitset.BitSet, error) {
	v := bitset.New(uint(len(row)))
	for i := 0; i < len(row); i++ {
		switch row[i] {
		case '1':
			v.Set(uint(i))
		case '0':
		default:
			return nil, ErrBadText
		}
	}
	return v, nil
}
