// Package config loads TotoTime settings from a YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/tototime/internal/llm"
)

// Config is the full application configuration.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path" env:"TOTOTIME_DB"`

	Log   LogConfig   `yaml:"log"`
	Buddy BuddyConfig `yaml:"buddy"`
	LLM   llm.Config  `yaml:"llm"`
}

// LogConfig controls the file logger. The TUI owns the terminal, so logs
// never go to stdout or stderr.
type LogConfig struct {
	Level string `yaml:"level" env:"TOTOTIME_LOG_LEVEL"`
	File  string `yaml:"file" env:"TOTOTIME_LOG_FILE"` // empty disables logging
}

// BuddyConfig controls model-written character lines.
type BuddyConfig struct {
	Enabled bool          `yaml:"enabled" env:"TOTOTIME_BUDDY"`
	Timeout time.Duration `yaml:"timeout" env:"TOTOTIME_BUDDY_TIMEOUT"`

	// ShareName sends the learner's name to the model. Off by default.
	ShareName bool `yaml:"share_name" env:"TOTOTIME_BUDDY_SHARE_NAME"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
		Buddy: BuddyConfig{
			Enabled: true,
			Timeout: 8 * time.Second,
		},
		LLM: llm.DefaultConfig(),
	}
}

// Load reads the YAML file at path (a missing file means defaults) and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught while decoding.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Buddy.Timeout < 0 {
		return fmt.Errorf("buddy timeout must not be negative, got %s", c.Buddy.Timeout)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Redacted returns a copy safe to print: API keys are masked.
func (c *Config) Redacted() *Config {
	out := *c
	out.LLM = c.LLM.Redacted()
	return &out
}

// DefaultPath resolves the config file path in priority order:
// 1. TOTOTIME_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/tototime/config.yaml
// 3. ~/.config/tototime/config.yaml
func DefaultPath() string {
	if p := os.Getenv("TOTOTIME_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "tototime", "config.yaml")
}

// DefaultLogPath returns $XDG_STATE_HOME/tototime/tototime.log, falling
// back to ~/.local/state.
func DefaultLogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), "tototime", "tototime.log")
}

func xdgDir(envVar, fallback string) string {
	if d := os.Getenv(envVar); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}
