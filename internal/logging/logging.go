// Package logging builds the charmbracelet loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // append to this file instead of Writer; "~" is expanded
	Prefix string    // e.g. "sidescroller" or "sidescroller-ssh"
	Writer io.Writer // defaults to os.Stderr
	JSON   bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and a closer for its output file.
// The closer is a no-op when logging to Writer.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	var (
		w                = opts.Writer
		closer io.Closer = nopCloser{}
	)
	if w == nil {
		w = os.Stderr
	}
	if opts.File != "" {
		path, err := expandHome(opts.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	if opts.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, closer, nil
}

// Discard returns a logger that drops everything. The TUI uses it when no
// log file is given, since stderr belongs to the terminal UI.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: get home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
