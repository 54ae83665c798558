// Package logutil builds the slog loggers used across crumbtug.
// The terminal belongs to the UI, so logs go to a file or nowhere.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelOff is above every standard level.
const LevelOff = slog.Level(100)

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFileLogger opens path in append mode, creating it and its directory if needed.
// The caller closes the returned file.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f, level), f, nil
}

func NewDiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, LevelOff)
}

// LevelFromString parses debug, info, warn, error and off. Anything else is info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off", "none":
		return LevelOff
	default:
		return slog.LevelInfo
	}
}
