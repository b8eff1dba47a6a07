// Package logger provides charmbracelet/log factories for the rest of the
// application. Output goes to a log file, never to the terminal the TUI owns.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var sink io.Writer = io.Discard

// SetupFile opens the log file and routes the default logger and every
// logger created afterwards to it. The caller closes the returned handle
// on shutdown. Until SetupFile is called all output is discarded.
func SetupFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	sink = f
	log.SetOutput(f)
	return f, nil
}

// SetLevel applies a named level ("debug", "info", ...) to the default logger.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("failed to parse log level %q: %w", name, err)
	}
	log.SetLevel(lvl)
	return nil
}

// New creates a charm log for one subsystem that respects the global log level
func New(prefix string) *log.Logger {
	return log.NewWithOptions(sink, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(sink, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
