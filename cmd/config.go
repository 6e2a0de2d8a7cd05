package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the ambient settings of the tool. Every field has a
// working default so that running with no configuration at all works.
type Config struct {
	// DataDir is where the store lives. Defaults to ~/.lance.
	DataDir string `yaml:"data_dir" env:"LANCE_DATA_DIR"`
	// Store selects the backend: "dir" (one file per key) or "sqlite".
	Store string `yaml:"store" env:"LANCE_STORE" env-default:"dir"`
	// Currency is the display currency for fees and earnings.
	Currency string `yaml:"currency" env:"LANCE_CURRENCY" env-default:"USD"`
}

// DatabasePath is the sqlite database location for the sqlite backend.
func (c Config) DatabasePath() string { return filepath.Join(c.DataDir, "lance.db") }

// LoadConfig reads the optional configuration file (from the -config flag
// or $LANCE_CONFIG) and the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	path := *configFile
	if path == "" {
		path = os.Getenv("LANCE_CONFIG")
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("cannot read config from environment: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("cannot determine home directory for the default data dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".lance")
	}
	return cfg, nil
}
