package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// parseLogLevel maps debug, info, warn and error (case-insensitive) to a slog.Level
// Anything else is info
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logPath returns customPath when given, otherwise the XDG state file
func logPath(customPath string) (string, error) {
	if customPath != "" {
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			return "", fmt.Errorf("create log dir: %w", err)
		}
		return customPath, nil
	}
	p, err := xdg.StateFile("term-invaders/term-invaders.log")
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return p, nil
}

// newLogger builds the JSON logger all components derive from
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}

// setupLogging installs the default logger
// The terminal owns stdout, so logs go to a file when enabled and are discarded otherwise
// The returned closer is never nil
func setupLogging(enabled bool, level, customPath string) (*slog.Logger, io.Closer, error) {
	if !enabled {
		logger := newLogger(io.Discard, slog.LevelError)
		slog.SetDefault(logger)
		log.SetOutput(io.Discard)
		return logger, io.NopCloser(nil), nil
	}

	path, err := logPath(customPath)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := newLogger(f, parseLogLevel(level))
	slog.SetDefault(logger)
	log.SetOutput(f)
	return logger, f, nil
}
