package appender

import (
	"go.uber.org/zap/zapcore"

	"github.com/alfmunny/EVA02/core"
	"github.com/alfmunny/EVA02/formatter"
)

// ZapConfig holds configuration for the zap bridge appender
type ZapConfig struct {
	// Core receives the events (default: zapcore.NewNopCore())
	Core zapcore.Core
	// Formatter renders the zap entry message (default: PatternFormatter compiled from Pattern)
	Formatter formatter.Formatter
	// Pattern is compiled when Formatter is nil (default: "%m")
	Pattern string
	// Level is the minimum level forwarded (default: UnknownLevel, everything)
	Level core.Level
	// ErrorOutput receives Core write errors (default: locked os.Stderr)
	ErrorOutput zapcore.WriteSyncer
}

// ZapAppender forwards events to a zapcore.Core. Level, logger name,
// caller and time become the matching zapcore.Entry fields; the rendered
// pattern becomes the entry message.
type ZapAppender struct {
	base
	core zapcore.Core
}

// NewZapAppender creates a new zap bridge appender.
func NewZapAppender(cfg ZapConfig) *ZapAppender {
	if cfg.Core == nil {
		cfg.Core = zapcore.NewNopCore()
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "%m"
	}

	a := &ZapAppender{core: cfg.Core}
	initBase(&a.base, "zap", cfg.Level, cfg.Formatter, cfg.Pattern, cfg.ErrorOutput)
	return a
}

// Log forwards e to the core when both this appender and the core accept it.
func (a *ZapAppender) Log(e *core.Event) {
	if !a.enabled(e) {
		return
	}
	lvl := toZapLevel(e.Level)
	if !a.core.Enabled(lvl) {
		return
	}

	msg, err := a.formatter.Format(e)
	if err != nil {
		a.drop(e, err)
		return
	}

	ent := zapcore.Entry{
		Level:      lvl,
		Time:       e.Time,
		LoggerName: e.LoggerName(),
		Message:    string(msg),
		Caller: zapcore.EntryCaller{
			Defined: e.File != "",
			File:    e.File,
			Line:    e.Line,
		},
	}
	if err := a.core.Write(ent, nil); err != nil {
		a.drop(e, err)
		return
	}
	a.stats.IncrementProcessed()
}

// Close syncs the core.
func (a *ZapAppender) Close() error {
	return a.core.Sync()
}

// toZapLevel converts a core.Level to a zapcore.Level. FATAL maps to
// zapcore.FatalLevel, but writing straight to a Core never exits.
func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}
