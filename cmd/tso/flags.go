package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tso/config"
)

// addIOFlags registers the input and order flags shared by every strategy.
func addIOFlags(cmd *cobra.Command, keys map[string]string) {
	f := cmd.Flags()
	f.StringP("vectors", "i", "", "vector file (.bbv, .txt, optionally .zst)")
	f.StringP("order", "o", "", "case order output file")
	f.Uint("universe", 0, "expected basic block count (0 accepts the file header)")
	f.Int("cases", 0, "expected test case count (0 accepts the file header)")
	keys["vectors"] = "vectors.path"
	keys["order"] = "output.order"
	keys["universe"] = "vectors.universe"
	keys["cases"] = "vectors.cases"
}

func addOptimizeFlags(cmd *cobra.Command, keys map[string]string) {
	d := config.Default()
	f := cmd.Flags()
	f.Int("avg-instruction-size", 0, "average instruction size in bytes")
	f.Int("l1-size", 0, "L1 instruction cache size in bytes")
	f.Float64("avg-executed", d.Cache.AvgInstructionsExecuted, "average instructions executed per test case")
	f.Float64("threshold", 0, "normalized distance threshold in [0, 1] (0 derives it from the cache model)")
	f.Float64("threshold-floor", d.Cache.ThresholdFloor, "lower bound of the derived threshold")
	f.String("details", "", "optimization details output file")
	f.String("details-format", d.Output.DetailsFormat, "details format: text or yaml")
	f.String("rank", d.Rank.Mode, "rank mode: similarity or coverage")
	f.Bool("chain", d.Rank.Chain, "follow nearest similar peers after each pick")
	keys["avg-instruction-size"] = "cache.avg_instruction_size"
	keys["l1-size"] = "cache.l1_size"
	keys["avg-executed"] = "cache.avg_instructions_executed"
	keys["threshold"] = "cache.threshold"
	keys["threshold-floor"] = "cache.threshold_floor"
	keys["details"] = "output.details"
	keys["details-format"] = "output.details_format"
	keys["rank"] = "rank.mode"
	keys["chain"] = "rank.chain"
}

func addIndexFlags(cmd *cobra.Command, keys map[string]string) {
	d := config.Default()
	f := cmd.Flags()
	f.Int("tables", d.Index.Tables, "number of hash tables")
	f.Int("key-bits", d.Index.KeyBits, "sampled bits per hash key")
	f.Int("probe-level", d.Index.ProbeLevel, "multi-probe level (flipped key bits)")
	f.Int("checks", d.Index.Checks, "candidates examined per query (0 is unlimited)")
	f.Int64("seed", d.Index.Seed, "bit sampling seed (0 is a fixed default)")
	f.Int("start", d.Index.Start, "first test case of the order")
	keys["tables"] = "index.tables"
	keys["key-bits"] = "index.key_bits"
	keys["probe-level"] = "index.probe_level"
	keys["checks"] = "index.checks"
	keys["seed"] = "index.seed"
	keys["start"] = "index.start"
}
