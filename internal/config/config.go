// Package config loads runtime settings for the todo application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"todo/internal/models"
)

// Default values used when the config file is absent or leaves a field unset.
const (
	DefaultFile      = "todo.toml"
	DefaultDBPath    = "tasks.db"
	DefaultListName  = "default"
	DefaultExitDelay = 2 * time.Second
	DefaultLogLevel  = "warn"
)

// Config holds the application settings.
type Config struct {
	DBPath    string        `toml:"db_path"`
	ListName  string        `toml:"list_name"`
	ExitDelay time.Duration `toml:"exit_delay"`
	LogLevel  string        `toml:"log_level"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		DBPath:    DefaultDBPath,
		ListName:  DefaultListName,
		ExitDelay: DefaultExitDelay,
		LogLevel:  DefaultLogLevel,
	}
}

// Load returns the defaults overlaid with the TOML file at path.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config has usable values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}

	if err := models.ValidateListName(c.ListName); err != nil {
		return fmt.Errorf("list_name: %w", err)
	}

	if c.ExitDelay < 0 {
		return errors.New("exit_delay must not be negative")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
