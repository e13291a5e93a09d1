package threshold

import (
	"errors"
	"strings"
)

var (
	// ErrNilSet is returned when Order receives a nil vector set.
	ErrNilSet = errors.New("threshold: nil vector set")

	// ErrBadInstructionSize indicates a non-positive average instruction size.
	ErrBadInstructionSize = errors.New("threshold: average instruction size must be above zero")

	// ErrBadCacheSize indicates a non-positive L1 instruction cache size.
	ErrBadCacheSize = errors.New("threshold: L1 instruction cache size must be above zero")

	// ErrBadExecuted indicates a non-positive average executed-instruction count.
	ErrBadExecuted = errors.New("threshold: average executed instructions must be above zero")

	// ErrBadThreshold indicates a threshold override or floor outside [0, 1].
	ErrBadThreshold = errors.New("threshold: threshold must lie in [0, 1]")

	// ErrUnknownRankMode is returned by ParseRankMode and by Order for
	// unrecognised modes.
	ErrUnknownRankMode = errors.New("threshold: unknown rank mode")
)

// RankMode selects how a case's rank is defined.
type RankMode int

const (
	// RankBySimilarity ranks a case by its count of unvisited similar peers.
	RankBySimilarity RankMode = iota

	// RankByCoverage ranks a case by its count of set bits outside the
	// union of already visited vectors.
	RankByCoverage
)

// String returns the configuration spelling of m.
func (m RankMode) String() string {
	switch m {
	case RankBySimilarity:
		return "similarity"
	case RankByCoverage:
		return "coverage"
	default:
		return "unknown"
	}
}

// ParseRankMode accepts "similarity" or "coverage" (case-insensitive).
func ParseRankMode(s string) (RankMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "similarity", "":
		return RankBySimilarity, nil
	case "coverage":
		return RankByCoverage, nil
	default:
		return 0, ErrUnknownRankMode
	}
}

const (
	// DefaultThresholdFloor is the smallest derived threshold accepted.
	DefaultThresholdFloor = 0.20

	// DefaultAvgInstructionsExecuted is the average dynamic instruction
	// count per test case assumed when none is configured.
	DefaultAvgInstructionsExecuted = 1000.0
)

// Options configures Order.
//
// Fields:
//   - AvgInstructionSize: average instruction size in bytes (> 0).
//   - L1CacheSize: L1 instruction-cache size in bytes (> 0).
//   - AvgInstructionsExecuted: average dynamic instructions per test case (> 0).
//   - Threshold: explicit threshold in (0, 1]; 0 derives it from the cache model.
//   - ThresholdFloor: lower clamp for the derived threshold.
//   - Rank: rank definition, see RankMode.
//   - Chain: chase nearest similar peers depth-first after each pick.
type Options struct {
	AvgInstructionSize      int
	L1CacheSize             int
	AvgInstructionsExecuted float64
	Threshold               float64
	ThresholdFloor          float64
	Rank                    RankMode
	Chain                   bool
}

// DefaultOptions returns the options used by the command line tool when
// only the cache parameters are given. The cache parameters themselves have
// no sensible default and are left at zero.
func DefaultOptions() Options {
	return Options{
		AvgInstructionsExecuted: DefaultAvgInstructionsExecuted,
		ThresholdFloor:          DefaultThresholdFloor,
		Rank:                    RankBySimilarity,
		Chain:                   true,
	}
}

// Validate checks opts without touching any vector data.
func (o Options) Validate() error {
	if o.AvgInstructionSize <= 0 {
		return ErrBadInstructionSize
	}
	if o.L1CacheSize <= 0 {
		return ErrBadCacheSize
	}
	if o.AvgInstructionsExecuted <= 0 {
		return ErrBadExecuted
	}
	if o.Threshold < 0 || o.Threshold > 1 || o.ThresholdFloor < 0 || o.ThresholdFloor > 1 {
		return ErrBadThreshold
	}
	if o.Rank != RankBySimilarity && o.Rank != RankByCoverage {
		return ErrUnknownRankMode
	}
	return nil
}

// Details are the diagnostics of one optimizer run.
type Details struct {
	RunID              string  `yaml:"run_id,omitempty"`
	Threshold          float64 `yaml:"threshold"`
	AvgInstructionSize int     `yaml:"average_instruction_size"`
	L1CacheSize        int     `yaml:"l1_instruction_cache_size"`
	CacheCapacity      float64 `yaml:"cache_instruction_capacity"`
	Cases              int     `yaml:"test_cases"`
	Pairs              int     `yaml:"distance_pairs"`
	PairsBelow         int     `yaml:"distance_pairs_below_threshold"`
	PercentBelow       float64 `yaml:"distance_pairs_below_threshold_percent"`
	MeanDistance       float64 `yaml:"distance_mean"`
	StdDevDistance     float64 `yaml:"distance_stddev"`
	Rank               string  `yaml:"rank_mode"`
	Chained            int     `yaml:"chained_visits"`
	Fallbacks          int     `yaml:"farthest_fallbacks"`
}

// Result is the output of Order.
type Result struct {
	Order   []int
	Details Details
}
