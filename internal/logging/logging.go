// Package logging builds the zerolog logger used across pairrot.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jaesu26/pairrot-solver/internal/config"
)

// New creates a logger writing to w and installs it as the global zerolog logger.
//
// Format "json" writes one JSON object per line; "console" writes human-readable lines.
// Level is one of: trace, debug, info, warn, error (case-insensitive); defaults to info.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	out := w
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
