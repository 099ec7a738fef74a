package appender

import (
	"bytes"
	"io"
	"sync"

	"github.com/fatih/color"
	"go.uber.org/zap/zapcore"

	"github.com/alfmunny/EVA02/core"
	"github.com/alfmunny/EVA02/formatter"
)

// ConsoleConfig holds configuration for console appender
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: PatternFormatter compiled from Pattern)
	Formatter formatter.Formatter
	// Pattern is compiled when Formatter is nil (default: formatter.DefaultPattern)
	Pattern string
	// Level is the minimum level written (default: UnknownLevel, everything)
	Level core.Level
	// Color wraps each line in an ANSI colour chosen by level
	Color bool
	// ErrorOutput receives sink write errors (default: locked os.Stderr)
	ErrorOutput zapcore.WriteSyncer
}

// levelColors maps levels to the colour used when ConsoleConfig.Color is set
var levelColors = map[core.Level]*color.Color{
	core.DebugLevel: color.New(color.FgCyan),
	core.InfoLevel:  color.New(color.FgGreen),
	core.WarnLevel:  color.New(color.FgYellow),
	core.ErrorLevel: color.New(color.FgRed),
	core.FatalLevel: color.New(color.FgHiRed, color.Bold),
}

func init() {
	// Colour is decided per appender by ConsoleConfig.Color, not by terminal detection.
	for _, c := range levelColors {
		c.EnableColor()
	}
}

// ConsoleAppender writes rendered events to a console-like writer
type ConsoleAppender struct {
	base
	out   zapcore.WriteSyncer
	color bool
	mu    sync.Mutex // protects buf
	buf   bytes.Buffer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Pattern == "" {
		cfg.Pattern = formatter.DefaultPattern
	}
	if cfg.ErrorOutput == nil {
		cfg.ErrorOutput = stderr
	}
}

// NewConsoleAppender creates a new console appender.
func NewConsoleAppender(cfg ConsoleConfig) *ConsoleAppender {
	applyConsoleDefaults(&cfg)

	a := &ConsoleAppender{color: cfg.Color}
	initBase(&a.base, "console", cfg.Level, cfg.Formatter, cfg.Pattern, cfg.ErrorOutput)

	if cfg.Writer == nil {
		a.out = stdout
	} else {
		a.out = zapcore.AddSync(cfg.Writer)
	}
	a.buf.Grow(256)
	return a
}

// NewStdoutAppender creates a console appender on stdout rendering with
// pattern, or formatter.DefaultPattern when pattern is empty.
func NewStdoutAppender(pattern string) *ConsoleAppender {
	return NewConsoleAppender(ConsoleConfig{Pattern: pattern})
}

// Log renders e and writes it when e passes the appender level.
func (a *ConsoleAppender) Log(e *core.Event) {
	if !a.enabled(e) {
		return
	}

	a.mu.Lock()
	a.buf.Reset()
	err := a.render(e, &a.buf)
	if err == nil {
		data := a.buf.Bytes()
		if a.color {
			data = colorize(e.Level, data)
		}
		_, err = a.out.Write(data)
	}
	a.mu.Unlock()

	if err != nil {
		a.drop(e, err)
		return
	}
	a.stats.IncrementProcessed()
}

// colorize wraps line in the level's colour, keeping a trailing newline
// outside the escape sequence.
func colorize(level core.Level, line []byte) []byte {
	c, ok := levelColors[level]
	if !ok {
		return line
	}
	body, hadNewline := bytes.CutSuffix(line, []byte{'\n'})
	out := []byte(c.Sprint(string(body)))
	if hadNewline {
		out = append(out, '\n')
	}
	return out
}

// Close flushes the sink. The underlying writer is not closed.
func (a *ConsoleAppender) Close() error {
	// Sync fails with EINVAL on terminals and pipes.
	_ = a.out.Sync()
	return nil
}
