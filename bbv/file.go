package bbv

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the little-endian zstd frame magic number.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Open loads a vector file and checks it against expect.
// Files ending in ".txt" are parsed as text; anything else as the binary
// format, decompressed first when it carries a zstd frame header.
func Open(path string, expect Expect) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, isText(path), expect)
}

// Read decodes a vector stream and checks it against expect. text selects
// the line format; otherwise the binary format is assumed, zstd input is
// detected by its magic and the header is checked before the payload is read.
func Read(r io.Reader, text bool, expect Expect) (*Set, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	}

	if !text {
		return decode(src, expect)
	}
	s, err := DecodeText(src)
	if err != nil {
		return nil, err
	}
	if err = expect.Check(s); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteFile stores s at path. Text output is chosen by the ".txt" suffix;
// compress wraps the stream in a zstd frame.
func WriteFile(path string, s *Set, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	var enc *zstd.Encoder
	if compress {
		if enc, err = zstd.NewWriter(f); err != nil {
			return err
		}
		w = enc
	}

	if isText(path) {
		err = EncodeText(w, s)
	} else {
		err = Encode(w, s)
	}
	if err != nil {
		return err
	}
	if enc != nil {
		return enc.Close()
	}
	return nil
}

func isText(path string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".zst")))
	return ext == ".txt"
}
