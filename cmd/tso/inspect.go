package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tso/engine"
)

func newInspectCmd(g *globalFlags, v *viper.Viper) *cobra.Command {
	keys := map[string]string{}
	var orderPath string
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print vector file statistics and optionally score an order file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load(cmd, g, v, keys)
			if err != nil {
				return err
			}
			cfg.Vectors.Path = args[0]
			run := engine.New(cfg, log)
			st, err := run.Inspect()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "test cases:      %d\n", st.Cases)
			fmt.Fprintf(out, "basic blocks:    %d\n", st.Universe)
			fmt.Fprintf(out, "bits per case:   min %d, max %d, mean %.2f\n", st.MinBits, st.MaxBits, st.MeanBits)
			fmt.Fprintf(out, "covered blocks:  %d (%.2f%%)\n", st.Covered, 100*float64(st.Covered)/float64(st.Universe))
			if orderPath == "" {
				return nil
			}
			cost, err := run.Score(orderPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "order cost:      %d\n", cost)
			return nil
		},
	}
	f := cmd.Flags()
	f.Uint("universe", 0, "expected basic block count (0 accepts the file header)")
	f.Int("cases", 0, "expected test case count (0 accepts the file header)")
	f.StringVar(&orderPath, "order", "", "order file to score against the vectors")
	keys["universe"] = "vectors.universe"
	keys["cases"] = "vectors.cases"
	return cmd
}
