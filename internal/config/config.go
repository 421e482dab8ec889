// Package config loads promptstudio settings from defaults, an optional YAML
// file, an optional .env file and the environment, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers for saved versions.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	History    HistoryConfig    `yaml:"history"`
	Simulation SimulationConfig `yaml:"simulation"`
	Preview    PreviewConfig    `yaml:"preview"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // memory, sqlite
	// DSN is the SQLite file path. Empty keeps the database in memory.
	DSN string `yaml:"dsn"`
}

type HistoryConfig struct {
	// Limit caps the undo log; 0 keeps everything.
	Limit int `yaml:"limit"`
}

type SimulationConfig struct {
	ResponseDelay string `yaml:"response_delay"`
	FeedbackDelay string `yaml:"feedback_delay"`
}

type PreviewConfig struct {
	CacheSize int `yaml:"cache_size"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "5s",
		},
		Storage:    StorageConfig{Driver: StorageMemory},
		Simulation: SimulationConfig{ResponseDelay: "1s", FeedbackDelay: "500ms"},
		Preview:    PreviewConfig{CacheSize: 128},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults, then applies .env
// and environment overrides. An empty path or a missing file leaves the
// defaults in place.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Variables already set in the process win over .env.
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if strings.HasPrefix(port, ":") {
			c.Server.Addr = port
		} else {
			c.Server.Addr = ":" + port
		}
	}
	c.Server.Addr = firstNonEmpty(env("ADDR"), c.Server.Addr)

	c.Storage.Driver = firstNonEmpty(env("STORAGE"), c.Storage.Driver)
	c.Storage.DSN = firstNonEmpty(env("DB"), c.Storage.DSN)
	if n, err := strconv.Atoi(env("HISTORY_LIMIT")); err == nil {
		c.History.Limit = n
	}
	c.Simulation.ResponseDelay = firstNonEmpty(env("RESPONSE_DELAY"), c.Simulation.ResponseDelay)
	c.Simulation.FeedbackDelay = firstNonEmpty(env("FEEDBACK_DELAY"), c.Simulation.FeedbackDelay)
	c.Export.Dir = firstNonEmpty(env("EXPORT_DIR"), c.Export.Dir)
	c.Logging.Level = firstNonEmpty(env("LOG_LEVEL"), c.Logging.Level)
	if dev, err := strconv.ParseBool(env("LOG_DEVELOPMENT")); err == nil {
		c.Logging.Development = dev
	}
}

// env reads PROMPTSTUDIO_<name>.
func env(name string) string {
	return strings.TrimSpace(os.Getenv("PROMPTSTUDIO_" + name))
}

// Validate rejects settings the services can't run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage driver: %s (valid: %s, %s)", c.Storage.Driver, StorageMemory, StorageSQLite)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history limit must be >= 0, got %d", c.History.Limit)
	}
	if c.Preview.CacheSize <= 0 {
		return fmt.Errorf("preview cache size must be > 0, got %d", c.Preview.CacheSize)
	}
	for name, raw := range map[string]string{
		"simulation.response_delay": c.Simulation.ResponseDelay,
		"simulation.feedback_delay": c.Simulation.FeedbackDelay,
		"server.shutdown_timeout":   c.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
	}
	return nil
}

// GetResponseDelay returns the pause before a simulated answer.
func (c *Config) GetResponseDelay() time.Duration {
	return parseDuration(c.Simulation.ResponseDelay, time.Second)
}

// GetFeedbackDelay returns the pause before simulated feedback.
func (c *Config) GetFeedbackDelay() time.Duration {
	return parseDuration(c.Simulation.FeedbackDelay, 500*time.Millisecond)
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
