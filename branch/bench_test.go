package branch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/branch"
)

func BenchmarkOrder_n500(b *testing.B) {
	const n, universe = 500, 2048
	r := rand.New(rand.NewSource(3))
	vecs := make([]*bitset.BitSet, n)
	for i := range vecs {
		vecs[i] = bitset.New(universe)
		for k := 0; k < 64; k++ {
			vecs[i].Set(uint(r.Intn(universe)))
		}
	}
	s, err := bbv.NewSet(universe, vecs)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = branch.Order(context.Background(), s); err != nil {
			b.Fatal(err)
		}
	}
}
