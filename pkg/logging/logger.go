// Package logging provides structured logging for stigmerge using zerolog.
//
// Library callers get a logger configured from LOG_LEVEL, LOG_FORMAT and
// NO_COLOR; the CLI replaces it with one built from its own configuration.
// Console output is used when the destination is a terminal, JSON otherwise.
//
//	ctx := logging.WithLogger(context.Background(), logging.Default())
//	ctx = logging.WithGroup(ctx, "Windows_10_STIG")
//	logging.FromContext(ctx).Debug().Msg("Building vulnerability index")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger = NewLoggerFromConfig(configFromEnv())

// configFromEnv layers the LOG_* variables over DefaultConfig.
func configFromEnv() *Config {
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
