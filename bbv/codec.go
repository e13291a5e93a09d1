package bbv

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// magic opens every binary vector stream.
var magic = [4]byte{'B', 'B', 'V', '1'}

// headerSize is magic + universe + case count.
const headerSize = 12

// Decode reads a binary vector stream (see package doc).
// The whole stream must be consumed exactly: short payloads yield
// ErrTruncated and extra bytes yield ErrTrailingData.
func Decode(r io.Reader) (*Set, error) {
	return decode(r, Expect{})
}

// decode checks the header against expect before reading the payload. The
// payload buffer grows with the bytes actually read, so a header promising
// more than the stream holds fails with ErrTruncated instead of allocating
// the promised size up front.
func decode(r io.Reader, expect Expect) (*Set, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if [4]byte(hdr[0:4]) != magic {
		return nil, ErrBadMagic
	}

	var (
		universe = uint(binary.LittleEndian.Uint32(hdr[4:8]))
		n        = int(binary.LittleEndian.Uint32(hdr[8:12]))
	)
	if universe == 0 {
		return nil, ErrZeroUniverse
	}
	if n == 0 {
		return nil, ErrEmptySet
	}
	if expect.Universe != 0 && universe != expect.Universe {
		return nil, ErrUniverseMismatch
	}
	if expect.Cases != 0 && n != expect.Cases {
		return nil, ErrCaseCountMismatch
	}

	// Both header fields are uint32, so the product fits in int64.
	size := int64(n) * int64(ByteWidth(universe))
	var payload bytes.Buffer
	if k, err := io.CopyN(&payload, r, size); k < size {
		if err == nil || err == io.EOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	var probe [1]byte
	if k, _ := r.Read(probe[:]); k != 0 {
		return nil, ErrTrailingData
	}

	return FromPacked(universe, n, payload.Bytes())
}

// Encode writes s as a binary vector stream.
func Encode(w io.Writer, s *Set) error {
	var hdr [headerSize]byte
	copy(hdr[0:4], magic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(s.universe))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(s.Len()))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(s.packed)
	return err
}

// DecodeText reads the '0'/'1' line format. Blank lines and lines starting
// with '#' are skipped; every remaining line must have the same length.
func DecodeText(r io.Reader) (*Set, error) {
	var (
		sc       = bufio.NewScanner(r)
		vecs     []*bitset.BitSet
		universe uint
		line     string
		lineNo   int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if universe == 0 {
			universe = uint(len(line))
		}
		if uint(len(line)) != universe {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrUniverseMismatch)
		}
		v, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		vecs = append(vecs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, ErrEmptySet
	}

	return NewSet(universe, vecs)
}

// EncodeText writes s in the '0'/'1' line format.
func EncodeText(w io.Writer, s *Set) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, s.universe+1)
	row[s.universe] = '\n'

	var (
		i   int
		bit uint
	)
	for i = 0; i < s.Len(); i++ {
		for bit = 0; bit < s.universe; bit++ {
			row[bit] = '0'
			if s.vecs[i].Test(bit) {
				row[bit] = '1'
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
