// SPDX-License-Identifier: MIT
package matrix

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of all stored pairs, or 0 when there are none.
func (t *Triangle) Mean() float64 {
	if len(t.data) == 0 {
		return 0
	}
	return stat.Mean(t.data, nil)
}

// StdDev returns the sample standard deviation of the stored pairs, or 0
// when fewer than two pairs exist.
func (t *Triangle) StdDev() float64 {
	if len(t.data) < 2 {
		return 0
	}
	return stat.StdDev(t.data, nil)
}

// CountBelow returns how many stored pairs are strictly below threshold.
func (t *Triangle) CountBelow(threshold float64) int {
	c := 0
	for _, v := range t.data {
		if v < threshold {
			c++
		}
	}
	return c
}

// FarthestFrom returns the candidate with the largest distance to from;
// ties go to the candidate listed first. ok is false when candidates is empty.
func (t *Triangle) FarthestFrom(from int, candidates []int) (best int, ok bool) {
	var (
		bestD = -1.0
		d     float64
	)
	for _, c := range candidates {
		d = t.Get(from, c)
		if d > bestD {
			best, bestD, ok = c, d, true
		}
	}
	return best, ok
}
