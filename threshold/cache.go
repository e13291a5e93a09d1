package threshold

// CacheCapacity returns how many average-sized instructions fit in the L1
// instruction cache: l1CacheSize / avgInstructionSize.
func CacheCapacity(l1CacheSize, avgInstructionSize int) float64 {
	return float64(l1CacheSize) / float64(avgInstructionSize)
}

// DeriveThreshold turns the cache model into a dissimilarity threshold:
//
//	t = 1 − executed/capacity
//	t = capacity/executed   if t < 0 (the working set overflows the cache)
//	t = floor               if t < floor
//
// The floor keeps a baseline of pairs similar even when the model degenerates.
func DeriveThreshold(capacity, executed, floor float64) float64 {
	t := 1 - executed/capacity
	if t < 0 {
		t = capacity / executed
	}
	if t < floor {
		t = floor
	}
	return t
}

// resolveThreshold applies an explicit override, otherwise derives it.
func resolveThreshold(opts Options, capacity float64) float64 {
	if opts.Threshold > 0 {
		return opts.Threshold
	}
	return DeriveThreshold(capacity, opts.AvgInstructionsExecuted, opts.ThresholdFloor)
}
