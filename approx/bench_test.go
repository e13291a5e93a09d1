package approx_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tso/approx"
	"github.com/katalvlaran/tso/bbv"
)

func BenchmarkOrder_n1000(b *testing.B) {
	const n, width = 1000, 32
	r := rand.New(rand.NewSource(4))
	data := make([]byte, n*width)
	for i := range data {
		data[i] = byte(r.Intn(256)) & byte(r.Intn(256))
	}
	s, err := bbv.FromPacked(width*8, n, data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = approx.Order(context.Background(), s, approx.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
