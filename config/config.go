// Package config loads and validates the settings of one ordering run.
//
// Values come, in decreasing precedence, from command line flags bound into
// the viper instance, TSO_* environment variables, an optional config file
// (yaml, json or toml), and the defaults of Default.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tso/lsh"
	"github.com/katalvlaran/tso/threshold"
)

// Strategy names accepted by Validate.
const (
	StrategyOptimize = "optimize"
	StrategyBranch   = "branch"
	StrategyApprox   = "approx"
)

// Config is the complete run configuration.
type Config struct {
	Vectors VectorsConfig `mapstructure:"vectors"`
	Output  OutputConfig  `mapstructure:"output"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Rank    RankConfig    `mapstructure:"rank"`
	Index   IndexConfig   `mapstructure:"index"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// VectorsConfig locates the vector file and pins its expected shape.
// Zero Universe or Cases accept what the file declares.
type VectorsConfig struct {
	Path     string `mapstructure:"path"`
	Universe uint   `mapstructure:"universe"`
	Cases    int    `mapstructure:"cases"`
}

// OutputConfig names the produced artifacts.
type OutputConfig struct {
	Order         string `mapstructure:"order"`
	Details       string `mapstructure:"details"`
	DetailsFormat string `mapstructure:"details_format"`
}

// CacheConfig is the cache model of the threshold optimizer.
type CacheConfig struct {
	AvgInstructionSize      int     `mapstructure:"avg_instruction_size"`
	L1Size                  int     `mapstructure:"l1_size"`
	AvgInstructionsExecuted float64 `mapstructure:"avg_instructions_executed"`
	Threshold               float64 `mapstructure:"threshold"`
	ThresholdFloor          float64 `mapstructure:"threshold_floor"`
}

// RankConfig selects the threshold optimizer's rank definition and chaining.
type RankConfig struct {
	Mode  string `mapstructure:"mode"`
	Chain bool   `mapstructure:"chain"`
}

// IndexConfig tunes the approximate index.
type IndexConfig struct {
	Tables     int   `mapstructure:"tables"`
	KeyBits    int   `mapstructure:"key_bits"`
	ProbeLevel int   `mapstructure:"probe_level"`
	Checks     int   `mapstructure:"checks"`
	Seed       int64 `mapstructure:"seed"`
	Start      int   `mapstructure:"start"`
}

// LoggingConfig controls the run logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in defaults. Paths and cache sizes are empty:
// they must be supplied by the caller.
func Default() *Config {
	t, ix := threshold.DefaultOptions(), lsh.DefaultOptions()
	return &Config{
		Output: OutputConfig{DetailsFormat: "text"},
		Cache: CacheConfig{
			AvgInstructionsExecuted: t.AvgInstructionsExecuted,
			ThresholdFloor:          t.ThresholdFloor,
		},
		Rank:    RankConfig{Mode: "similarity", Chain: true},
		Index:   IndexConfig{Tables: ix.Tables, KeyBits: ix.KeyBits, ProbeLevel: ix.ProbeLevel},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// New returns a viper instance carrying the defaults and the TSO_ env
// mapping ("cache.l1_size" ← TSO_CACHE_L1_SIZE). Flags are bound onto it
// by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("vectors.path", d.Vectors.Path)
	v.SetDefault("vectors.universe", d.Vectors.Universe)
	v.SetDefault("vectors.cases", d.Vectors.Cases)
	v.SetDefault("output.order", d.Output.Order)
	v.SetDefault("output.details", d.Output.Details)
	v.SetDefault("output.details_format", d.Output.DetailsFormat)
	v.SetDefault("cache.avg_instruction_size", d.Cache.AvgInstructionSize)
	v.SetDefault("cache.l1_size", d.Cache.L1Size)
	v.SetDefault("cache.avg_instructions_executed", d.Cache.AvgInstructionsExecuted)
	v.SetDefault("cache.threshold", d.Cache.Threshold)
	v.SetDefault("cache.threshold_floor", d.Cache.ThresholdFloor)
	v.SetDefault("rank.mode", d.Rank.Mode)
	v.SetDefault("rank.chain", d.Rank.Chain)
	v.SetDefault("index.tables", d.Index.Tables)
	v.SetDefault("index.key_bits", d.Index.KeyBits)
	v.SetDefault("index.probe_level", d.Index.ProbeLevel)
	v.SetDefault("index.checks", d.Index.Checks)
	v.SetDefault("index.seed", d.Index.Seed)
	v.SetDefault("index.start", d.Index.Start)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetEnvPrefix("TSO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and unmarshals the
// merged settings. An empty path, or a path that does not exist, leaves the
// defaults, environment and flags in charge.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, &ConfigError{Field: "config", Message: err.Error()}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Field: "config", Message: err.Error()}
	}
	return &cfg, nil
}
