// Package logging configures the shared structured logger for the CLI and
// the document scanner. The rendering core never logs.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One process-wide logger, guarded by mu.
var (
	mu  sync.Mutex
	std *log.Logger
)

// ParseLevel maps a level name to its log level. Unknown names fall back
// to info.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing to stderr without timestamps or caller info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if std == nil {
		std = New("info")
	}
	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	std = logger
}

// SetLevel updates the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
