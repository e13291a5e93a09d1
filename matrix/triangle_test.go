// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tso/matrix"
)

func TestNewTriangle_Shape(t *testing.T) {
	_, err := matrix.NewTriangle(0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	tr, err := matrix.NewTriangle(1)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Pairs())
	assert.Equal(t, 0.0, tr.Mean())
	assert.Equal(t, 0.0, tr.StdDev())

	tr, err = matrix.NewTriangle(5)
	require.NoError(t, err)
	assert.Equal(t, 10, tr.Pairs())
}

func TestTriangle_GetSymmetric(t *testing.T) {
	tr, err := matrix.NewTriangle(4)
	require.NoError(t, err)
	require.NoError(t, tr.Fill(func(i, j int) float64 { return float64(j-i) / 4 }, nil))

	assert.Equal(t, 0.5, tr.Get(1, 3))
	assert.Equal(t, 0.5, tr.Get(3, 1))
	assert.Equal(t, 0.0, tr.Get(2, 2))

	assert.ErrorIs(t, tr.Fill(func(int, int) float64 { return -1 }, nil), matrix.ErrNaNInf)
	assert.ErrorIs(t, tr.Fill(func(int, int) float64 { return math.NaN() }, nil), matrix.ErrNaNInf)
}

// TestTriangle_FillVisitsEachPairOnce checks the i<j walk: every unordered
// pair is produced exactly once and lands where Get looks for it.
func TestTriangle_FillVisitsEachPairOnce(t *testing.T) {
	const n = 7
	tr, err := matrix.NewTriangle(n)
	require.NoError(t, err)

	seen := map[[2]int]int{}
	err = tr.Fill(
		func(i, j int) float64 { return float64(i*10 + j) },
		func(i, j int, d float64) {
			assert.Less(t, i, j)
			seen[[2]int{i, j}]++
		},
	)
	require.NoError(t, err)
	assert.Len(t, seen, n*(n-1)/2)
	for p, c := range seen {
		assert.Equal(t, 1, c, "pair %v", p)
		assert.Equal(t, float64(p[0]*10+p[1]), tr.Get(p[1], p[0]))
	}

	assert.ErrorIs(t, tr.Fill(nil, nil), matrix.ErrNilFunc)
	assert.ErrorIs(t, tr.Fill(func(int, int) float64 { return math.Inf(1) }, nil), matrix.ErrNaNInf)
}

func TestTriangle_Statistics(t *testing.T) {
	tr, err := matrix.NewTriangle(3)
	require.NoError(t, err)
	vals := map[[2]int]float64{{0, 1}: 0.1, {0, 2}: 0.5, {1, 2}: 0.9}
	require.NoError(t, tr.Fill(func(i, j int) float64 { return vals[[2]int{i, j}] }, nil))

	assert.InDelta(t, 0.5, tr.Mean(), 1e-12)
	assert.InDelta(t, 0.4, tr.StdDev(), 1e-12)
	assert.Equal(t, 1, tr.CountBelow(0.5))
	assert.Equal(t, 2, tr.CountBelow(0.6))

	far, ok := tr.FarthestFrom(0, []int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 2, far)
	_, ok = tr.FarthestFrom(0, nil)
	assert.False(t, ok)
}
