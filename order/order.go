package order

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/hamming"
)

var (
	// ErrLength is returned when an order does not have exactly n entries.
	ErrLength = errors.New("order: length does not match case count")

	// ErrOutOfRange is returned for ids outside [0, n).
	ErrOutOfRange = errors.New("order: case id out of range")

	// ErrDuplicate is returned when an id appears twice.
	ErrDuplicate = errors.New("order: duplicate case id")

	// ErrBadLine is returned by Read for a line that is not a decimal id.
	ErrBadLine = errors.New("order: malformed line")
)

// Validate checks that o is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func Validate(o []int, n int) error {
	if len(o) != n || n <= 0 {
		return ErrLength
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = o[i]
		if v < 0 || v >= n {
			return ErrOutOfRange
		}
		if seen[v] {
			return ErrDuplicate
		}
		seen[v] = true
	}
	return nil
}

// Cost returns the sum of Hamming distances between consecutive cases of o,
// the quantity every strategy tries to keep small.
func Cost(set *bbv.Set, o []int) (uint, error) {
	if err := Validate(o, set.Len()); err != nil {
		return 0, err
	}
	var c int
	for i := 1; i < len(o); i++ {
		c += hamming.Bytes(set.Packed(o[i-1]), set.Packed(o[i]))
	}
	return uint(c), nil
}

// Write emits o, one id per line. It never rejects the data itself.
func Write(w io.Writer, o []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for _, id := range o {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses an order file. Blank lines are ignored.
func Read(r io.Reader) ([]int, error) {
	var (
		sc     = bufio.NewScanner(r)
		out    []int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrBadLine)
		}
		out = append(out, id)
	}
	return out, sc.Err()
}
