// SPDX-License-Identifier: MIT
package matrix

import "math"

// Triangle is a symmetric, zero-diagonal distance matrix stored as its
// strict upper triangle.
type Triangle struct {
	n    int
	data []float64 // len == n*(n-1)/2
}

// NewTriangle allocates a zeroed Triangle for n cases.
// Complexity: O(n²) memory.
func NewTriangle(n int) (*Triangle, error) {
	if n < 1 {
		return nil, ErrBadShape
	}
	return &Triangle{n: n, data: make([]float64, n*(n-1)/2)}, nil
}

// Pairs returns the number of stored unordered pairs, n·(n−1)/2.
func (t *Triangle) Pairs() int { return len(t.data) }

// offset maps i<j to its position in data.
func (t *Triangle) offset(i, j int) int {
	return i*(2*t.n-i-1)/2 + (j - i - 1)
}

// Get returns d(i, j); Get(i, i) is 0. Indices must be in [0, n).
func (t *Triangle) Get(i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	return t.data[t.offset(i, j)]
}

// Fill computes every pair i<j exactly once, in row-major order, storing
// dist(i, j) and then calling visit (if non-nil) with the stored value.
//
// Complexity: O(n²) calls to dist.
func (t *Triangle) Fill(dist func(i, j int) float64, visit func(i, j int, d float64)) error {
	if dist == nil {
		return ErrNilFunc
	}

	var (
		i, j int
		k    int // running offset; equals offset(i, j)
		d    float64
	)
	for i = 0; i < t.n; i++ {
		for j = i + 1; j < t.n; j++ {
			d = dist(i, j)
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return ErrNaNInf
			}
			t.data[k] = d
			k++
			if visit != nil {
				visit(i, j, d)
			}
		}
	}
	return nil
}
