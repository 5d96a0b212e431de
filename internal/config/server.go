package config

import (
	"fmt"
	"time"
)

// ServerConfig defines the HTTP API server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("server host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be in range 1-65535")
	}
	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("server idle timeout must be positive")
	}

	return nil
}

func (cfg *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
