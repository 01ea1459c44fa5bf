package config

import (
	"fmt"

	envconfig "github.com/JeremyLoy/config"
)

// DefaultDBPath is where scores are kept unless configured otherwise.
const DefaultDBPath = "~/.breakout/scores.db"

// ServerConfig holds the SSH server settings. Every field can be
// overridden from the environment.
type ServerConfig struct {
	Addr        string `config:"BREAKOUT_SSH_ADDR"`
	HostKeyPath string `config:"BREAKOUT_HOST_KEY"`
	DBPath      string `config:"BREAKOUT_DB"`
	IdleMinutes int    `config:"BREAKOUT_IDLE_MINUTES"`
}

// DefaultServerConfig returns the settings used when nothing is configured.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:        ":2222",
		HostKeyPath: ".ssh/breakout_ed25519",
		DBPath:      DefaultDBPath,
		IdleMinutes: 10,
	}
}

// LoadServerConfig overlays environment variables onto base.
func LoadServerConfig(base ServerConfig) (ServerConfig, error) {
	cfg := base
	if err := envconfig.FromEnv().To(&cfg); err != nil {
		return base, fmt.Errorf("config: cannot read server environment: %w", err)
	}
	if cfg.IdleMinutes < 0 {
		return base, fmt.Errorf("config: BREAKOUT_IDLE_MINUTES must not be negative, got %d", cfg.IdleMinutes)
	}
	return cfg, nil
}
