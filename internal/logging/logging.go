// Package logging provides the structured file logger used across the
// orchestrators. Operator-facing reporting stays on stdout; the log file
// records request outcomes, including per-section failures swallowed by
// the batch drafter.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileLogger wraps a slog.Logger writing JSON lines under the home dir.
type FileLogger struct {
	Logger *slog.Logger
	Close  func() error
	Path   string
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewFileLogger opens (or creates) the proposer log file under home.
// debug lowers the level to Debug.
func NewFileLogger(home string, debug bool) (FileLogger, error) {
	logDir := filepath.Join(home, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }}, err
	}
	path := filepath.Join(logDir, "proposer.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }}, err
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return FileLogger{
		Logger: slog.New(handler),
		Close:  file.Close,
		Path:   path,
	}, nil
}
