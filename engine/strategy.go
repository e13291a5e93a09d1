package engine

import (
	"context"
	"sort"

	"github.com/katalvlaran/tso/approx"
	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/branch"
	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/lsh"
	"github.com/katalvlaran/tso/threshold"
)

// strategy binds a name to an ordering function.
type strategy struct {
	name    string
	details bool // writes a details report next to the order
	order   func(ctx context.Context, r *Run, set *bbv.Set, rep *Report) error
}

var strategies = map[string]strategy{
	config.StrategyOptimize: {name: config.StrategyOptimize, details: true, order: runThreshold},
	config.StrategyBranch:   {name: config.StrategyBranch, order: runBranch},
	config.StrategyApprox:   {name: config.StrategyApprox, order: runApprox},
}

func lookup(name string) (strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// Strategies lists the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ThresholdOptions maps the configuration onto threshold.Options.
func ThresholdOptions(c *config.Config) (threshold.Options, error) {
	mode, err := threshold.ParseRankMode(c.Rank.Mode)
	if err != nil {
		return threshold.Options{}, err
	}
	return threshold.Options{
		AvgInstructionSize:      c.Cache.AvgInstructionSize,
		L1CacheSize:             c.Cache.L1Size,
		AvgInstructionsExecuted: c.Cache.AvgInstructionsExecuted,
		Threshold:               c.Cache.Threshold,
		ThresholdFloor:          c.Cache.ThresholdFloor,
		Rank:                    mode,
		Chain:                   c.Rank.Chain,
	}, nil
}

// ApproxOptions maps the configuration onto approx.Options.
func ApproxOptions(c *config.Config) approx.Options {
	return approx.Options{
		Index: lsh.Options{
			Tables:     c.Index.Tables,
			KeyBits:    c.Index.KeyBits,
			ProbeLevel: c.Index.ProbeLevel,
			Seed:       c.Index.Seed,
		},
		Checks: c.Index.Checks,
		Start:  c.Index.Start,
	}
}

func runThreshold(ctx context.Context, r *Run, set *bbv.Set, rep *Report) error {
	opts, err := ThresholdOptions(r.Config)
	if err != nil {
		return err
	}
	res, err := threshold.Order(ctx, set, opts)
	if err != nil {
		return err
	}
	res.Details.RunID = r.ID
	rep.Order = res.Order
	rep.Details = &res.Details
	rep.Fallbacks = res.Details.Fallbacks
	return nil
}

func runBranch(ctx context.Context, _ *Run, set *bbv.Set, rep *Report) error {
	res, err := branch.Order(ctx, set)
	if err != nil {
		return err
	}
	rep.Order = res.Order
	rep.SaturatedAt = res.SaturatedAt
	return nil
}

func runApprox(ctx context.Context, r *Run, set *bbv.Set, rep *Report) error {
	res, err := approx.Order(ctx, set, ApproxOptions(r.Config))
	if err != nil {
		return err
	}
	rep.Order = res.Order
	rep.Fallbacks = res.Fallbacks
	return nil
}
