package appender

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/alfmunny/EVA02/core"
	"github.com/alfmunny/EVA02/formatter"
)

// FileConfig holds configuration for file appender
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: PatternFormatter compiled from Pattern)
	Formatter formatter.Formatter
	// Pattern is compiled when Formatter is nil (default: formatter.DefaultPattern)
	Pattern string
	// Level is the minimum level written (default: UnknownLevel, everything)
	Level core.Level
	// ErrorOutput receives write errors (default: locked os.Stderr)
	ErrorOutput zapcore.WriteSyncer
}

// FileAppender appends rendered events to a file
type FileAppender struct {
	base
	filename string
	mu       sync.Mutex // protects file, w and closed
	file     *os.File
	w        *bufio.Writer
	closed   bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil && cfg.Pattern == "" {
		cfg.Pattern = formatter.DefaultPattern
	}
	if cfg.ErrorOutput == nil {
		cfg.ErrorOutput = stderr
	}
}

// NewFileAppender opens (or creates) cfg.Filename for appending.
func NewFileAppender(cfg FileConfig) (*FileAppender, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	applyFileDefaults(&cfg)

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", dir)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", cfg.Filename)
	}

	a := &FileAppender{filename: cfg.Filename, file: file, w: bufio.NewWriterSize(file, 4096)}
	initBase(&a.base, "file", cfg.Level, cfg.Formatter, cfg.Pattern, cfg.ErrorOutput)
	return a, nil
}

// Filename returns the path being written.
func (a *FileAppender) Filename() string {
	return a.filename
}

// Log renders e and appends it to the file when e passes the appender level.
func (a *FileAppender) Log(e *core.Event) {
	if !a.enabled(e) {
		return
	}

	data, err := a.formatter.Format(e)
	if err != nil {
		a.drop(e, err)
		return
	}

	a.mu.Lock()
	if a.closed {
		err = os.ErrClosed
	} else {
		if _, err = a.w.Write(data); err == nil {
			err = a.w.Flush()
		}
	}
	a.mu.Unlock()

	if err != nil {
		a.drop(e, errors.Wrap(err, a.filename))
		return
	}
	a.stats.IncrementProcessed()
}

// Close syncs and closes the file. Closing twice is a no-op.
func (a *FileAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	return multierr.Combine(a.w.Flush(), a.file.Sync(), a.file.Close())
}
