package approx_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tso/approx"
	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/order"
)

func TestOrder_ByteScenario(t *testing.T) {
	s, err := bbv.FromPacked(8, 3, []byte{0b00000001, 0b00000011, 0b11110000})
	require.NoError(t, err)

	res, err := approx.Order(context.Background(), s, approx.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, 1, res.Fallbacks, "11110000 is out of probe reach of 00000011")
}

func TestOrder_FallbackPicksLowestUnvisited(t *testing.T) {
	// Every pair is at least 8 bits apart, so no query finds anything.
	s, err := bbv.FromPacked(16, 4, []byte{
		0x00, 0x00,
		0xff, 0x00,
		0x00, 0xff,
		0xff, 0xff,
	})
	require.NoError(t, err)

	opts := approx.DefaultOptions()
	opts.Start = 2
	res, err := approx.Order(context.Background(), s, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3}, res.Order)
	assert.Equal(t, 3, res.Fallbacks)
}

func TestOrder_Boundaries(t *testing.T) {
	one, err := bbv.FromStrings("1011")
	require.NoError(t, err)
	res, err := approx.Order(context.Background(), one, approx.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)

	same, err := bbv.FromStrings("0110", "0110", "0110", "0110", "0110")
	require.NoError(t, err)
	res, err = approx.Order(context.Background(), same, approx.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order, "identical points tie-break to the smallest id")
	assert.Equal(t, 0, res.Fallbacks)

	opts := approx.DefaultOptions()
	opts.Start = 5
	_, err = approx.Order(context.Background(), same, opts)
	assert.ErrorIs(t, err, approx.ErrStartOutOfRange)

	_, err = approx.Order(context.Background(), nil, approx.DefaultOptions())
	assert.ErrorIs(t, err, approx.ErrNilSet)
}

func TestOrder_RandomPermutationAndDeterminism(t *testing.T) {
	const n, width = 150, 12
	r := rand.New(rand.NewSource(21))
	data := make([]byte, n*width)
	for i := range data {
		data[i] = byte(r.Intn(256)) & byte(r.Intn(256)) // sparse-ish
	}
	s, err := bbv.FromPacked(width*8, n, data)
	require.NoError(t, err)

	res, err := approx.Order(context.Background(), s, approx.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, order.Validate(res.Order, n))
	assert.Equal(t, 0, res.Order[0])

	again, err := approx.Order(context.Background(), s, approx.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, res.Order, again.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = approx.Order(ctx, s, approx.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
