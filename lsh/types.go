package lsh

import "errors"

var (
	// ErrShape is returned when the data buffer is not a whole number of
	// records of the given width.
	ErrShape = errors.New("lsh: data length is not a multiple of record width")

	// ErrEmpty is returned when the index would hold no points.
	ErrEmpty = errors.New("lsh: no points to index")

	// ErrBadOptions is returned for non-positive tables or key bits, or a
	// negative probe level.
	ErrBadOptions = errors.New("lsh: invalid index options")

	// ErrWidthMismatch is returned when a query's width differs from the index width.
	ErrWidthMismatch = errors.New("lsh: query width does not match index")

	// ErrBadK is returned for k < 1.
	ErrBadK = errors.New("lsh: k must be at least 1")

	// ErrOutOfRange is returned for ids outside the indexed points.
	ErrOutOfRange = errors.New("lsh: point id out of range")

	// ErrRemoved is returned when removing a point twice.
	ErrRemoved = errors.New("lsh: point already removed")
)

// ChecksUnlimited lets KNN examine every candidate found in probed buckets.
const ChecksUnlimited = 0

// Options configures index construction.
//
// The defaults (12 tables, 20 key bits, probe level 2) trade a few hundred
// bucket probes per table for high recall on sparse coverage vectors.
// KeyBits is clamped to the record width in bits.
type Options struct {
	Tables     int
	KeyBits    int
	ProbeLevel int
	Seed       int64 // 0 selects a fixed default stream
}

// DefaultOptions returns the default index parameters.
func DefaultOptions() Options {
	return Options{Tables: 12, KeyBits: 20, ProbeLevel: 2}
}

// Validate checks o.
func (o Options) Validate() error {
	if o.Tables < 1 || o.KeyBits < 1 || o.ProbeLevel < 0 || o.ProbeLevel > o.KeyBits {
		return ErrBadOptions
	}
	return nil
}

// Neighbor is one KNN result.
type Neighbor struct {
	ID       int
	Distance int
}
