package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger from the logging
// configuration. Console format writes a human-readable stream to
// stderr; json writes raw zerolog output. When a file is configured it
// receives a copy of every event via a multi-level writer.
func NewLogger(cfg LoggingConfig) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	switch cfg.Format {
	case "json":
		writers = append(writers, os.Stderr)
	default:
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	cleanup := func() {}

	if cfg.File != "" {
		logFile, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if fileErr != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("opening log file %s: %w", cfg.File, fileErr)
		}
		writers = append(writers, logFile)
		cleanup = func() { _ = logFile.Close() }
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, cleanup, nil
}
