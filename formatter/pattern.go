package formatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/alfmunny/EVA02/core"
)

// DefaultPattern is used by appenders constructed without a pattern.
const DefaultPattern = "%d{%Y-%m-%d %a %H:%M:%S}%T%f{5}%T%l%T[%p]%T[%c]%T%m%n"

// PatternFormatter renders events through a compiled item sequence
type PatternFormatter struct {
	pattern     string
	items       []Item
	diagnostics []*Diagnostic
}

// NewPatternFormatter compiles pattern with the built-in directives.
// Problems in the pattern are available from Diagnostics; the returned
// formatter is always usable.
func NewPatternFormatter(pattern string) *PatternFormatter {
	f, _ := Compile(pattern, NewRegistry())
	return f
}

// Compile builds a PatternFormatter from pattern using reg to resolve
// directive keys. A nil reg means the built-in directives.
//
// The formatter is never nil. The error is nil for a clean pattern and
// otherwise combines every *Diagnostic (see multierr.Errors).
//
// A malformed directive (MissingKey, UnexpectedEscape, UnknownDirective,
// UnterminatedArgument) stops compilation; items compiled before it still
// render. A BadArgument, where the directive's factory rejects its
// argument, drops only that directive and compilation continues.
func Compile(pattern string, reg *Registry) (*PatternFormatter, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	c := compiler{pattern: pattern, reg: reg}
	c.run()

	f := &PatternFormatter{
		pattern:     pattern,
		items:       c.items,
		diagnostics: c.diags,
	}
	return f, combineDiagnostics(c.diags)
}

// compiler holds the state of a single left-to-right scan
type compiler struct {
	pattern string
	reg     *Registry
	items   []Item
	diags   []*Diagnostic
}

func (c *compiler) run() {
	p := c.pattern
	i := 0
	for i < len(p) {
		j := strings.IndexByte(p[i:], '%')
		if j < 0 {
			c.items = append(c.items, literalItem(p[i:]))
			return
		}
		if j > 0 {
			c.items = append(c.items, literalItem(p[i:i+j]))
		}
		i += j

		next, d := c.directive(i)
		if d != nil {
			c.diags = append(c.diags, d)
			if d.stopsCompile() {
				return
			}
		}
		i = next
	}
}

// directive compiles the directive whose '%' sits at offset start and
// returns the offset just past it.
func (c *compiler) directive(start int) (int, *Diagnostic) {
	p := c.pattern
	if start+1 >= len(p) {
		return len(p), &Diagnostic{Kind: MissingKey, Offset: start}
	}
	key := p[start+1]
	if key == '%' {
		return len(p), &Diagnostic{Kind: UnexpectedEscape, Offset: start, Key: key}
	}
	factory, ok := c.reg.Lookup(key)
	if !ok {
		return len(p), &Diagnostic{Kind: UnknownDirective, Offset: start, Key: key}
	}

	end := start + 2
	var arg string
	if end < len(p) && p[end] == '{' {
		k := strings.IndexByte(p[end+1:], '}')
		if k < 0 {
			return len(p), &Diagnostic{Kind: UnterminatedArgument, Offset: start, Key: key, Arg: p[end+1:]}
		}
		arg = p[end+1 : end+1+k]
		end += k + 2
	}

	it, err := factory(arg)
	if err != nil {
		return end, &Diagnostic{Kind: BadArgument, Offset: start, Key: key, Arg: arg, Err: err}
	}
	if it != nil {
		c.items = append(c.items, it)
	}
	return end, nil
}

// Pattern returns the source pattern.
func (f *PatternFormatter) Pattern() string {
	return f.pattern
}

// Diagnostics returns the problems recorded while compiling, in the
// order they were found.
func (f *PatternFormatter) Diagnostics() []*Diagnostic {
	out := make([]*Diagnostic, len(f.diagnostics))
	copy(out, f.diagnostics)
	return out
}

// Items returns the number of compiled items.
func (f *PatternFormatter) Items() int {
	return len(f.items)
}

// Format renders an event. The error is always nil.
func (f *PatternFormatter) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(e, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatString renders an event as a string.
func (f *PatternFormatter) FormatString(e *core.Event) string {
	buf := getBuffer()
	f.FormatEntry(e, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo renders an event and writes it to w in a single Write call.
func (f *PatternFormatter) FormatTo(e *core.Event, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(e, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry renders an event into buf (implements BufferFormatter).
func (f *PatternFormatter) FormatEntry(e *core.Event, buf *bytes.Buffer) {
	for _, it := range f.items {
		it.Format(buf, e)
	}
}
