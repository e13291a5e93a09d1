package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    int
	quiet      bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	v := config.New()

	root := &cobra.Command{
		Use:   "tso",
		Short: "Order test cases so that neighbours share basic blocks",
		Long: `tso reads one coverage bit vector per test case and writes an execution
order in which consecutive cases exercise similar code, improving
instruction cache reuse when the suite is replayed.

Settings come from flags, TSO_* environment variables (TSO_CACHE_L1_SIZE for
cache.l1_size) and an optional --config file, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (yaml, json or toml)")
	pf.CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "suppress all log output")
	pf.String("log-format", config.Default().Logging.Format, "log format: text or json")
	pf.String("log-level", config.Default().Logging.Level, "log level: debug, info, warn or error")

	root.AddCommand(
		newOptimizeCmd(g, v),
		newBranchCmd(g, v),
		newApproxCmd(g, v),
		newInspectCmd(g, v),
	)
	return root
}

// load binds the flags of cmd listed in keys, reads the config file and
// builds the run logger.
func load(cmd *cobra.Command, g *globalFlags, v *viper.Viper, keys map[string]string) (*config.Config, *slog.Logger, error) {
	keys["log-format"] = "logging.format"
	keys["log-level"] = "logging.level"
	for name, key := range keys {
		if err := bind(v, cmd.Flags(), name, key); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(v, g.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := logging.LevelFromVerbosity(g.verbose, g.quiet, logging.LevelFromString(cfg.Logging.Level))
	return cfg, logging.New(cmd.ErrOrStderr(), level, cfg.Logging.Format), nil
}

func bind(v *viper.Viper, fs *pflag.FlagSet, name, key string) error {
	f := fs.Lookup(name)
	if f == nil {
		return nil
	}
	return v.BindPFlag(key, f)
}
