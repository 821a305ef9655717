// Package logging builds the leveled logger shared by imbridge packages.
//
// Packages receive a *golog.Logger through their options and derive
// prefixed children from it, e.g. logger.Child("[platform]").
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kataras/golog"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error, fatal or disable.
	Level string

	// File appends log output to this path. Parent directories are created.
	File string

	// Console also writes to stderr. Terminal hosts own the screen and
	// leave this off.
	Console bool
}

// New returns a logger and the closer for its file, if any.
func New(opts Options) (*golog.Logger, io.Closer, error) {
	logger := golog.New()
	logger.SetTimeFormat("2006-01-02 15:04:05.000")

	level := opts.Level
	if level == "" {
		level = "info"
	}
	logger.SetLevel(level)

	var outputs []io.Writer
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		outputs = append(outputs, f)
		closer = f
	}
	if opts.Console {
		outputs = append(outputs, os.Stderr)
	}

	switch len(outputs) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(outputs[0])
	default:
		logger.SetOutput(io.MultiWriter(outputs...))
	}

	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *golog.Logger {
	logger := golog.New()
	logger.SetOutput(io.Discard)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
