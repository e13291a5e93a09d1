package bbv

import "errors"

var (
	// ErrEmptySet is returned when a Set would hold no vectors.
	ErrEmptySet = errors.New("bbv: vector set is empty")

	// ErrZeroUniverse is returned when the declared vector width is zero.
	ErrZeroUniverse = errors.New("bbv: universe size must be positive")

	// ErrUniverseMismatch indicates a vector whose width differs from the
	// universe, or a file whose universe differs from the expected one.
	ErrUniverseMismatch = errors.New("bbv: vector width does not match universe")

	// ErrCaseCountMismatch indicates a file whose case count differs from
	// the expected one.
	ErrCaseCountMismatch = errors.New("bbv: case count does not match")

	// ErrBadMagic is returned when a binary stream does not start with "BBV1".
	ErrBadMagic = errors.New("bbv: not a vector file")

	// ErrTruncated is returned when the payload is shorter than the header promises.
	ErrTruncated = errors.New("bbv: truncated payload")

	// ErrTrailingData is returned when bytes follow the last record.
	ErrTrailingData = errors.New("bbv: trailing bytes after payload")

	// ErrPaddingBits is returned when bits beyond the universe are set in a
	// packed record.
	ErrPaddingBits = errors.New("bbv: non-zero padding bits")

	// ErrBadText is returned for characters other than '0' and '1' in a text vector.
	ErrBadText = errors.New("bbv: invalid character in text vector")
)

// Expect pins the shape a loaded Set must have. Zero fields accept
// whatever the payload declares.
type Expect struct {
	Universe uint
	Cases    int
}

// Check verifies s against e.
func (e Expect) Check(s *Set) error {
	if e.Universe != 0 && s.Universe() != e.Universe {
		return ErrUniverseMismatch
	}
	if e.Cases != 0 && s.Len() != e.Cases {
		return ErrCaseCountMismatch
	}
	return nil
}

// Stats summarizes a Set; see Summarize.
type Stats struct {
	Cases    int
	Universe uint
	// MinBits, MaxBits and MeanBits describe per-vector popcounts.
	MinBits  uint
	MaxBits  uint
	MeanBits float64
	// Covered is the popcount of the union of all vectors.
	Covered uint
}
