package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks every section. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Server.MaxSessions <= 0 {
		return fmt.Errorf("server: max_sessions must be > 0 (got %d)", c.Server.MaxSessions)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server: request_timeout must be > 0 (got %s)", c.Server.RequestTimeout)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	switch strings.ToLower(l.Format) {
	case "json", "console":
		return nil
	}
	return fmt.Errorf("format must be json or console (got %q)", l.Format)
}
