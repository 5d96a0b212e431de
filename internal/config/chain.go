package config

import (
	"fmt"
	"time"
)

// ChainConfig defines the connection to the chain node whose block height is
// the engine's global clock. The clock is advanced externally; the engine
// only ever reads it.
type ChainConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("chain URL must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("chain timeout must be positive")
	}

	return nil
}
