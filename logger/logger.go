package logger

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alfmunny/EVA02/appender"
	"github.com/alfmunny/EVA02/core"
)

// callerSkip is the frame distance from core.GetCaller to the user's call
// in the *f helpers.
const callerSkip = 2

// Logger routes events to its appenders
type Logger struct {
	name      string
	level     atomic.Int32
	appenders appender.List
}

// New creates a Logger with no appenders.
func New(name string, level Level) *Logger {
	l := &Logger{name: name}
	l.level.Store(int32(level))
	return l
}

// Name returns the logger name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// AddAppender appends a unless the same appender is already attached.
func (l *Logger) AddAppender(a appender.Appender) {
	l.appenders.Add(a)
}

// RemoveAppender detaches a. It is a no-op when a is not attached.
func (l *Logger) RemoveAppender(a appender.Appender) {
	l.appenders.Remove(a)
}

// ClearAppenders detaches every appender.
func (l *Logger) ClearAppenders() {
	l.appenders.Clear()
}

// Appenders returns the attached appenders in insertion order.
func (l *Logger) Appenders() []appender.Appender {
	snap := l.appenders.Snapshot()
	out := make([]appender.Appender, len(snap))
	copy(out, snap)
	return out
}

// Log forwards e to every appender when level passes the logger level.
// The event's own level is what appenders filter on.
func (l *Logger) Log(level Level, e *core.Event) {
	if e == nil || !l.Level().Enabled(level) {
		return
	}
	for _, a := range l.appenders.Snapshot() {
		a.Log(e)
	}
}

// Debug logs e at DebugLevel
func (l *Logger) Debug(e *core.Event) {
	l.Log(DebugLevel, e)
}

// Info logs e at InfoLevel
func (l *Logger) Info(e *core.Event) {
	l.Log(InfoLevel, e)
}

// Warn logs e at WarnLevel
func (l *Logger) Warn(e *core.Event) {
	l.Log(WarnLevel, e)
}

// Error logs e at ErrorLevel
func (l *Logger) Error(e *core.Event) {
	l.Log(ErrorLevel, e)
}

// Fatal logs e at FatalLevel. It does not exit the process.
func (l *Logger) Fatal(e *core.Event) {
	l.Log(FatalLevel, e)
}

// NewEvent builds an event from this logger for the given call site.
func (l *Logger) NewEvent(level Level, msg, file string, line int) *core.Event {
	return core.NewEvent(l, msg, level, file, line, time.Now())
}

// logf builds an event with the caller's location. Level check happens
// before formatting so filtered calls do not pay for fmt.Sprintf.
func (l *Logger) logf(level Level, skip int, format string, args []interface{}) {
	if !l.Level().Enabled(level) {
		return
	}
	caller := core.GetCaller(skip)
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.Log(level, core.NewEvent(l, msg, level, caller.File, caller.Line, time.Now()))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, callerSkip, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, callerSkip, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, callerSkip, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, callerSkip, format, args)
}

// Fatalf logs a fatal message with formatting. It does not exit the process.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(FatalLevel, callerSkip, format, args)
}

// Close closes every attached appender and returns their combined errors.
func (l *Logger) Close() error {
	return l.appenders.Close()
}
