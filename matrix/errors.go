// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a Triangle is requested for n < 1 cases.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf is returned by Fill for a NaN, ±Inf or negative distance.
	ErrNaNInf = errors.New("matrix: distance must be finite and non-negative")

	// ErrNilFunc is returned when Fill receives a nil distance function.
	ErrNilFunc = errors.New("matrix: nil distance function")
)
