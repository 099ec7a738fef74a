package logger

import (
	"strings"

	"github.com/alfmunny/EVA02/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	UnknownLevel = core.UnknownLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a string to a Level. Unrecognised input yields InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	case "UNKNOWN":
		return UnknownLevel
	default:
		return InfoLevel
	}
}
