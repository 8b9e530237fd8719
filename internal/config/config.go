// Package config loads the FitTracker TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB       DBConfig       `toml:"db"`
	Event    EventConfig    `toml:"event"`
	Rollover RolloverConfig `toml:"rollover"`
	API      APIConfig      `toml:"api"`
}

type DBConfig struct {
	// Path overrides the default DB location when set.
	Path string `toml:"path"`
}

type EventConfig struct {
	Active     bool    `toml:"active"`
	Multiplier float64 `toml:"multiplier"`
}

type RolloverConfig struct {
	PageSize int `toml:"page_size"`
}

type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

func DefaultConfig() Config {
	return Config{
		Event: EventConfig{
			Active:     false,
			Multiplier: 2.0,
		},
		Rollover: RolloverConfig{
			PageSize: 100,
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8642,
		},
	}
}

// DefaultPath returns ~/.fittracker/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".fittracker", "config.toml"), nil
}

// Load reads the config at path, layered over defaults. A missing file is
// not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Event.Multiplier <= 0 {
		cfg.Event.Multiplier = 2.0
	}
	if cfg.Rollover.PageSize <= 0 {
		cfg.Rollover.PageSize = 100
	}
	return cfg, nil
}

func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
