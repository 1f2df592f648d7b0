// Package debuglog writes leveled diagnostics to a file. The TUI owns
// stdout, so logging is file-only and disabled unless requested.
package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// Setup configures logging at the given level. An empty or "off" level
// disables logging entirely. If filePath is omitted, the log goes to
// ~/.findbar/findbar.log.
func Setup(level string, filePath ...string) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil

	lvl, ok := parseLevel(level)
	if !ok {
		return nil
	}

	var logPath string
	if len(filePath) > 0 && filePath[0] != "" {
		logPath = filePath[0]
	} else {
		home, _ := os.UserHomeDir()
		dir := filepath.Join(home, ".findbar")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		logPath = filepath.Join(dir, "findbar.log")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", logPath, err)
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		Prefix:          "findbar",
		ReportTimestamp: true,
		Level:           lvl,
	})
	return nil
}

// parseLevel maps a level string to a charmbracelet/log level. The
// second return is false when logging should stay disabled.
func parseLevel(s string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return 0, false
	case "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	default:
		return log.InfoLevel, true
	}
}

// Close closes the log file if open.
func Close() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func Debugf(format string, args ...any) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

func Infof(format string, args ...any) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

func Warnf(format string, args ...any) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}

func Errorf(format string, args ...any) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}
