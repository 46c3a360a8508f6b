package app

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/config"
)

// NewLogger builds the root logger from the logging settings. Unknown
// levels fall back to info.
func NewLogger(cfg *config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", "pohoda").
		Logger()
}
