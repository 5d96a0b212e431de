package config

import (
	"fmt"
	"time"
)

// BankConfig defines the connection to the external value-custody service
// that moves staked funds into the engine's custody account.
type BankConfig struct {
	URL            string        `mapstructure:"url"`
	CustodyAccount string        `mapstructure:"custody-account"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *BankConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("bank URL must be set")
	}
	if cfg.CustodyAccount == "" {
		return fmt.Errorf("bank custody account must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("bank timeout must be positive")
	}

	return nil
}
