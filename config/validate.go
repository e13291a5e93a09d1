package config

import "strings"

// ConfigError names the setting that violates a constraint.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Validate checks the settings a strategy needs before any file is opened.
func (c *Config) Validate(strategy string) error {
	switch strategy {
	case StrategyOptimize, StrategyBranch, StrategyApprox:
	default:
		return &ConfigError{Field: "strategy", Message: "unknown strategy " + strategy}
	}

	if c.Vectors.Path == "" {
		return &ConfigError{Field: "vectors.path", Message: "the vector file is required"}
	}
	if c.Vectors.Cases < 0 {
		return &ConfigError{Field: "vectors.cases", Message: "case count must not be negative"}
	}
	if c.Output.Order == "" {
		return &ConfigError{Field: "output.order", Message: "the case order file is required"}
	}

	switch strategy {
	case StrategyOptimize:
		return c.validateOptimize()
	case StrategyApprox:
		return c.validateApprox()
	}
	return nil
}

func (c *Config) validateOptimize() error {
	if c.Cache.AvgInstructionSize <= 0 {
		return &ConfigError{Field: "cache.avg_instruction_size", Message: "average instruction size must be an integer above zero"}
	}
	if c.Cache.L1Size <= 0 {
		return &ConfigError{Field: "cache.l1_size", Message: "L1 instruction cache size must be an integer above zero"}
	}
	if c.Cache.AvgInstructionsExecuted <= 0 {
		return &ConfigError{Field: "cache.avg_instructions_executed", Message: "average executed instructions must be above zero"}
	}
	if c.Cache.Threshold < 0 || c.Cache.Threshold > 1 {
		return &ConfigError{Field: "cache.threshold", Message: "threshold must lie in [0, 1]"}
	}
	if c.Cache.ThresholdFloor < 0 || c.Cache.ThresholdFloor > 1 {
		return &ConfigError{Field: "cache.threshold_floor", Message: "threshold floor must lie in [0, 1]"}
	}
	if c.Output.Details == "" {
		return &ConfigError{Field: "output.details", Message: "the optimization details file is required"}
	}
	switch strings.ToLower(c.Output.DetailsFormat) {
	case "text", "yaml", "yml":
	default:
		return &ConfigError{Field: "output.details_format", Message: "details format must be text or yaml"}
	}
	switch strings.ToLower(c.Rank.Mode) {
	case "similarity", "coverage":
	default:
		return &ConfigError{Field: "rank.mode", Message: "rank mode must be similarity or coverage"}
	}
	return nil
}

func (c *Config) validateApprox() error {
	if c.Index.Tables <= 0 {
		return &ConfigError{Field: "index.tables", Message: "table count must be above zero"}
	}
	if c.Index.KeyBits <= 0 {
		return &ConfigError{Field: "index.key_bits", Message: "key size must be above zero"}
	}
	if c.Index.ProbeLevel < 0 || c.Index.ProbeLevel > c.Index.KeyBits {
		return &ConfigError{Field: "index.probe_level", Message: "probe level must lie in [0, key_bits]"}
	}
	if c.Index.Checks < 0 {
		return &ConfigError{Field: "index.checks", Message: "checks must not be negative (0 is unlimited)"}
	}
	if c.Index.Start < 0 {
		return &ConfigError{Field: "index.start", Message: "start case must not be negative"}
	}
	return nil
}
