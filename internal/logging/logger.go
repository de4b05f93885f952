package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls where log output goes besides (or instead of) stderr.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	SessionID     string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	var output = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// CHARTDECK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// CHARTDECK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("CHARTDECK_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("CHARTDECK_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile creates a logger that writes to a rotated session log file.
// The interactive viewer owns the terminal, so stderr output is opt-in.
// The returned cleanup closes the file and must be called on shutdown.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if !fc.Enabled {
		if fc.WriteToStderr {
			return New(cfg), func() {}, nil
		}
		return zerolog.Nop(), func() {}, nil
	}

	sessionID := fc.SessionID
	if sessionID == "" {
		sessionID = GenerateSessionID()
	}

	if err := os.MkdirAll(fc.LogDir, logDirPerm); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}

	rotator, err := NewLogRotator(fc.LogDir, SessionFilename(sessionID), fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays, fc.Compress)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	var out io.Writer = rotator
	if fc.WriteToStderr {
		out = io.MultiWriter(rotator, os.Stderr)
	}

	logger := newLogger(cfg, out).With().Str("session", ShortSessionID(sessionID)).Logger()
	cleanup := func() {
		if closeErr := rotator.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", closeErr)
		}
	}
	return logger, cleanup, nil
}
