package order_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/order"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		o    []int
		n    int
		want error
	}{
		{"ok", []int{2, 0, 1}, 3, nil},
		{"single", []int{0}, 1, nil},
		{"short", []int{0, 1}, 3, order.ErrLength},
		{"empty", nil, 0, order.ErrLength},
		{"range", []int{0, 3, 1}, 3, order.ErrOutOfRange},
		{"negative", []int{0, -1, 1}, 3, order.ErrOutOfRange},
		{"duplicate", []int{0, 1, 1}, 3, order.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := order.Validate(tc.o, tc.n)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCost(t *testing.T) {
	s, err := bbv.FromStrings("1100", "0110", "0011")
	require.NoError(t, err)

	c, err := order.Cost(s, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, uint(4), c)

	c, err = order.Cost(s, []int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, uint(6), c)

	_, err = order.Cost(s, []int{0, 0, 1})
	assert.ErrorIs(t, err, order.ErrDuplicate)
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, order.Write(&buf, []int{3, 0, 12, 1}))
	assert.Equal(t, "3\n0\n12\n1\n", buf.String())

	got, err := order.Read(strings.NewReader("3\n0\n\n12\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 12, 1}, got)

	_, err = order.Read(strings.NewReader("1\nx\n"))
	assert.ErrorIs(t, err, order.ErrBadLine)
}

func TestFile_CommitIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.txt")

	f, err := order.Create(path)
	require.NoError(t, err)
	require.NoError(t, order.Write(f, []int{1, 0}))
	assert.NoFileExists(t, path, "nothing is visible before Commit")
	require.NoError(t, f.Commit())
	f.Abort()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may remain")
}

func TestFile_AbortLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.txt")

	f, err := order.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial\n"))
	require.NoError(t, err)
	f.Abort()
	f.Abort()
	assert.NoError(t, f.Commit(), "commit after abort is a no-op")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_UnwritableDestination(t *testing.T) {
	_, err := order.Create(filepath.Join(t.TempDir(), "missing", "order.txt"))
	assert.Error(t, err)
}
