package core

// Level represents the severity level of a log event
type Level int8

const (
	// UnknownLevel is the zero value and sorts below every real level
	UnknownLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level never exits the process.
	FatalLevel
)

// String returns the name of the level. Values outside the defined
// range map to "UNKNOWN".
func (l Level) String() string {
	switch l {
	case UnknownLevel:
		return "UNKNOWN"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether an event at level e passes a threshold of l.
func (l Level) Enabled(e Level) bool {
	return e >= l
}
