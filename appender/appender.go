package appender

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/alfmunny/EVA02/core"
	"github.com/alfmunny/EVA02/formatter"
)

// Appender receives events from loggers and writes them to a sink.
// Implementations must be pointer types: loggers compare appenders by
// identity.
type Appender interface {
	// Log renders and writes e when e.Level is at or above Level().
	Log(e *core.Event)
	// Level returns the minimum level this appender accepts.
	Level() core.Level
	// SetLevel changes the minimum level.
	SetLevel(level core.Level)
	// Formatter returns the formatter used to render events.
	Formatter() formatter.Formatter
	// Close releases the sink.
	Close() error
}

var (
	stdout = zapcore.Lock(os.Stdout)
	stderr = zapcore.Lock(os.Stderr)
)

// base holds the state shared by the built-in appenders.
type base struct {
	name            string
	level           atomic.Int32
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	errorOutput     zapcore.WriteSyncer
	stats           *Stats
}

func initBase(b *base, name string, level core.Level, f formatter.Formatter, pattern string, errOut zapcore.WriteSyncer) {
	if f == nil {
		if pattern == "" {
			pattern = formatter.DefaultPattern
		}
		f = formatter.NewPatternFormatter(pattern)
	}
	if errOut == nil {
		errOut = stderr
	}
	b.name = name
	b.level.Store(int32(level))
	b.formatter = f
	b.bufferFormatter, _ = f.(formatter.BufferFormatter)
	b.errorOutput = errOut
	b.stats = NewStats()
}

// Level returns the minimum level this appender accepts.
func (b *base) Level() core.Level {
	return core.Level(b.level.Load())
}

// SetLevel changes the minimum level.
func (b *base) SetLevel(level core.Level) {
	b.level.Store(int32(level))
}

// Formatter returns the formatter used to render events.
func (b *base) Formatter() formatter.Formatter {
	return b.formatter
}

// Stats returns a snapshot of the current statistics
func (b *base) Stats() Snapshot {
	return b.stats.GetSnapshot()
}

func (b *base) enabled(e *core.Event) bool {
	return e != nil && b.Level().Enabled(e.Level)
}

// render appends the formatted event to buf.
func (b *base) render(e *core.Event, buf *bytes.Buffer) error {
	if b.bufferFormatter != nil {
		b.bufferFormatter.FormatEntry(e, buf)
		return nil
	}
	data, err := b.formatter.Format(e)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// drop counts e as dropped and reports err to the error output.
func (b *base) drop(e *core.Event, err error) {
	b.stats.IncrementDropped(e.Level)
	fmt.Fprintf(b.errorOutput, "%v %s appender write error: %v\n", time.Now().Format(time.RFC3339), b.name, err)
	_ = b.errorOutput.Sync()
}
