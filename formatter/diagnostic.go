package formatter

import (
	"fmt"

	"go.uber.org/multierr"
)

// DiagnosticKind classifies a pattern compile problem
type DiagnosticKind uint8

const (
	// MissingKey is a '%' at the very end of the pattern
	MissingKey DiagnosticKind = iota
	// UnexpectedEscape is "%%": a second '%' where a key was expected
	UnexpectedEscape
	// UnknownDirective is a key with no factory in the registry
	UnknownDirective
	// UnterminatedArgument is a '{' with no closing '}'
	UnterminatedArgument
	// BadArgument is an argument the directive's factory rejected
	BadArgument
)

// String returns the string representation of the kind
func (k DiagnosticKind) String() string {
	switch k {
	case MissingKey:
		return "missing directive key"
	case UnexpectedEscape:
		return "unexpected escape"
	case UnknownDirective:
		return "unknown directive"
	case UnterminatedArgument:
		return "unterminated argument"
	case BadArgument:
		return "bad argument"
	default:
		return "unknown diagnostic"
	}
}

// Diagnostic describes one problem found while compiling a pattern.
// Offset is the byte index of the '%' that introduced the directive.
type Diagnostic struct {
	Kind   DiagnosticKind
	Offset int
	Key    byte
	Arg    string
	Err    error
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case MissingKey, UnexpectedEscape:
		return fmt.Sprintf("pattern offset %d: %s", d.Offset, d.Kind)
	case BadArgument:
		return fmt.Sprintf("pattern offset %d: %s for %%%c{%s}: %v", d.Offset, d.Kind, d.Key, d.Arg, d.Err)
	default:
		return fmt.Sprintf("pattern offset %d: %s %%%c", d.Offset, d.Kind, d.Key)
	}
}

// Unwrap returns the factory error of a BadArgument diagnostic.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// stopsCompile reports whether the compiler abandons the rest of the
// pattern after this diagnostic.
func (d *Diagnostic) stopsCompile() bool {
	return d.Kind != BadArgument
}

// combineDiagnostics folds a diagnostics list into a single error, or nil.
func combineDiagnostics(diags []*Diagnostic) error {
	var err error
	for _, d := range diags {
		err = multierr.Append(err, d)
	}
	return err
}
