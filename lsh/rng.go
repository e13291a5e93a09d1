package lsh

import "math/rand"

// defaultSeed replaces a zero seed so that the default index is reproducible.
const defaultSeed int64 = 1

// mixSeed derives a decorrelated seed for stream from parent using the
// SplitMix64 finalizer.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// tableRNG gives table t its own stream so that adding tables does not
// change the positions sampled by earlier ones.
func tableRNG(seed int64, t int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(mixSeed(seed, uint64(t))))
}

// samplePositions returns k distinct bit positions out of [0, dims), drawn
// with a partial Fisher–Yates shuffle, in draw order.
func samplePositions(dims, k int, r *rand.Rand) []uint {
	pool := make([]int, dims)
	for i := range pool {
		pool[i] = i
	}

	out := make([]uint, k)
	var j int
	for i := 0; i < k; i++ {
		j = i + r.Intn(dims-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = uint(pool[i])
	}
	return out
}
