// Package config loads pairrot settings from YAML, environment variables and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Jaesu26/pairrot-solver/internal/solver"
)

// Config is the full application configuration.
type Config struct {
	Solver solver.Config `yaml:"solver"`
	Store  StoreConfig   `yaml:"store"`
	Server ServerConfig  `yaml:"server"`
	Log    LogConfig     `yaml:"log"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	DBPath string `yaml:"db_path" env:"PAIRROT_DB"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"PAIRROT_ADDR" env-default:":8080"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"PAIRROT_REQUEST_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"PAIRROT_SHUTDOWN_TIMEOUT" env-default:"5s"`
	MaxSessions     int           `yaml:"max_sessions" env:"PAIRROT_MAX_SESSIONS" env-default:"1000"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Solver: solver.DefaultConfig(),
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxSessions:     1000,
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// DBPath returns the configured database path, falling back to ~/.pairrot/pairrot.db.
func (c *Config) DBPath() string {
	if c.Store.DBPath != "" {
		return c.Store.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pairrot", "pairrot.db")
}
