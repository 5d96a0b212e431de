package config

import (
	"fmt"
)

// QueueConfig defines the RabbitMQ connection used for publishing governance
// events. The section is optional; without it no events are published.
type QueueConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("queue URL must be set")
	}
	if cfg.Exchange == "" {
		return fmt.Errorf("queue exchange must be set")
	}

	return nil
}
