// Package config loads the daemon configuration from defaults, an optional
// TOML file and CSD_-prefixed environment variables, in that priority order.
package config

import (
	"fmt"
	"time"
)

// Config is the complete daemon configuration.
type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
}

// StoreConfig configures the content store.
type StoreConfig struct {
	// Capacity is the maximum number of cached Data packets.
	Capacity int `mapstructure:"capacity"`
}

// ServerConfig configures the management HTTP server.
type ServerConfig struct {
	Bind string `mapstructure:"bind"`
	Port int    `mapstructure:"port"`

	// ShutdownGrace bounds how long a graceful shutdown may take.
	ShutdownGrace time.Duration `mapstructure:"shutdown_grace"`
}

// ListenAddr returns the host:port the management server binds to.
func (c ServerConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// ValidateConfig checks the complete configuration for consistency.
func ValidateConfig(c *Config) error {
	if c.Store.Capacity <= 0 {
		return fmt.Errorf("store.capacity must be positive, got %d", c.Store.Capacity)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.ShutdownGrace < 0 {
		return fmt.Errorf("server.shutdown_grace must be non-negative, got %s", c.Server.ShutdownGrace)
	}
	return nil
}
