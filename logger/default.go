package logger

import (
	"sync"

	"github.com/alfmunny/EVA02/appender"
	"github.com/alfmunny/EVA02/core"
)

// RootName is the name of the root logger.
const RootName = "root"

var (
	rootLogger *Logger
	rootMu     sync.RWMutex
)

func init() {
	rootLogger = New(RootName, DebugLevel)
	rootLogger.AddAppender(appender.NewStdoutAppender(""))
}

// Root returns the root logger
func Root() *Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return rootLogger
}

// SetRoot replaces the root logger. A nil logger is ignored.
func SetRoot(l *Logger) {
	if l == nil {
		return
	}
	rootMu.Lock()
	defer rootMu.Unlock()
	rootLogger = l
}

// Package-level convenience functions using the root logger

// Log forwards e through the root logger
func Log(level Level, e *core.Event) {
	Root().Log(level, e)
}

// Debugf logs a formatted debug message using the root logger
func Debugf(format string, args ...interface{}) {
	Root().logf(DebugLevel, callerSkip, format, args)
}

// Infof logs a formatted info message using the root logger
func Infof(format string, args ...interface{}) {
	Root().logf(InfoLevel, callerSkip, format, args)
}

// Warnf logs a formatted warning message using the root logger
func Warnf(format string, args ...interface{}) {
	Root().logf(WarnLevel, callerSkip, format, args)
}

// Errorf logs a formatted error message using the root logger
func Errorf(format string, args ...interface{}) {
	Root().logf(ErrorLevel, callerSkip, format, args)
}

// Fatalf logs a formatted fatal message using the root logger. It does not exit the process.
func Fatalf(format string, args ...interface{}) {
	Root().logf(FatalLevel, callerSkip, format, args)
}
