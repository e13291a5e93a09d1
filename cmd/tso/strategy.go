package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/engine"
)

func newOptimizeCmd(g *globalFlags, v *viper.Viper) *cobra.Command {
	keys := map[string]string{}
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Order by cache-derived similarity threshold and rank",
		Long: `optimize derives a distance threshold from the cache model
(L1 size / instruction size / instructions executed), ranks every case by its
similar peers and visits cases greedily, chasing nearest similar peers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStrategy(cmd, g, v, keys, config.StrategyOptimize, "Optimization completed successfully.")
		},
	}
	addIOFlags(cmd, keys)
	addOptimizeFlags(cmd, keys)
	return cmd
}

func newBranchCmd(g *globalFlags, v *viper.Viper) *cobra.Command {
	keys := map[string]string{}
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Order by greedy marginal coverage, then by diversity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStrategy(cmd, g, v, keys, config.StrategyBranch, "Branch optimization completed successfully.")
		},
	}
	addIOFlags(cmd, keys)
	return cmd
}

func newApproxCmd(g *globalFlags, v *viper.Viper) *cobra.Command {
	keys := map[string]string{}
	cmd := &cobra.Command{
		Use:   "approx",
		Short: "Chain cases through approximate nearest neighbours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStrategy(cmd, g, v, keys, config.StrategyApprox, "Approximation completed successfully.")
		},
	}
	addIOFlags(cmd, keys)
	addIndexFlags(cmd, keys)
	return cmd
}

func runStrategy(cmd *cobra.Command, g *globalFlags, v *viper.Viper, keys map[string]string, strategy, success string) error {
	cfg, log, err := load(cmd, g, v, keys)
	if err != nil {
		return err
	}
	if _, err = engine.New(cfg, log).Execute(cmd.Context(), strategy); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), success)
	return nil
}
