package core

import (
	"runtime"
	"time"
)

// processStart anchors Event.Elapsed.
var processStart = time.Now()

// Named is implemented by anything an event can point back to for its
// logger name.
type Named interface {
	Name() string
}

// Event is the record of a single log call. Loggers hand the same *Event
// to every appender, so fields must not be changed once it is logged.
type Event struct {
	logger  Named
	Message string
	Level   Level
	File    string
	Line    int
	Time    time.Time
	Elapsed time.Duration
}

// NewEvent creates an event. A negative line is clamped to zero.
func NewEvent(logger Named, msg string, level Level, file string, line int, t time.Time) *Event {
	if line < 0 {
		line = 0
	}
	elapsed := t.Sub(processStart)
	if elapsed < 0 {
		elapsed = 0
	}
	return &Event{
		logger:  logger,
		Message: msg,
		Level:   level,
		File:    file,
		Line:    line,
		Time:    t,
		Elapsed: elapsed,
	}
}

// LoggerName returns the name of the originating logger, or "" when the
// event was created without one.
func (e *Event) LoggerName() string {
	if e.logger == nil {
		return ""
	}
	return e.logger.Name()
}

// CallerInfo is the source position of a log call.
type CallerInfo struct {
	File    string
	Line    int
	Defined bool
}

// GetCaller returns the position skip frames above its caller.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}
	return CallerInfo{File: file, Line: line, Defined: true}
}
