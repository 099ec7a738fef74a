package formatter

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/alfmunny/EVA02/core"
)

type namedStub string

func (n namedStub) Name() string { return string(n) }

func testEvent() *core.Event {
	return core.NewEvent(
		namedStub("root"),
		"hello",
		core.InfoLevel,
		"/a/b/c/d/e/file.cpp",
		42,
		time.Date(2026, 1, 15, 12, 30, 45, 0, time.Local),
	)
}

func render(t *testing.T, pattern string, e *core.Event) string {
	t.Helper()
	f, err := Compile(pattern, nil)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return f.FormatString(e)
}

func TestPatternFormatter_EndToEnd(t *testing.T) {
	e := core.NewEvent(nil, "hello", core.InfoLevel, "main.go", 1, time.Now())

	if got := render(t, "%p %m%n", e); got != "INFO hello\n" {
		t.Errorf("render = %q, want %q", got, "INFO hello\n")
	}
}

func TestPatternFormatter_Directives(t *testing.T) {
	e := testEvent()
	e.Elapsed = 1500 * time.Millisecond

	tests := []struct {
		pattern string
		want    string
	}{
		{"plain text", "plain text"},
		{"%d", "2026-01-15 12:30:45"},
		{"%d{}", "2026-01-15 12:30:45"},
		{"%d{%Y-%m-%d %a %H:%M:%S}", "2026-01-15 Thu 12:30:45"},
		{"%d{%H:%M}", "12:30"},
		{"%f", "/a/b/c/d/e/file.cpp"},
		{"%f{0}", "/a/b/c/d/e/file.cpp"},
		{"%f{2}", "d/e/file.cpp"},
		{"%f{ 1 }", "e/file.cpp"},
		{"%f{abc}", "/a/b/c/d/e/file.cpp"},
		{"%f{-3}", "/a/b/c/d/e/file.cpp"},
		{"%l", "42"},
		{"%l{ignored}", "42"},
		{"%p", "INFO"},
		{"%m", "hello"},
		{"%c", "root"},
		{"%T", "\t"},
		{"%n", "\n"},
		{"%r", "1500"},
		{"[%p]%T[%c]", "[INFO]\t[root]"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := render(t, tt.pattern, e); got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPatternFormatter_ConcatenatesDirectives(t *testing.T) {
	e := testEvent()
	parts := []string{
		"%d{%Y-%m-%d %a %H:%M:%S}", "%T", "%f{5}", "%T", "%l", "%T",
		"[", "%p", "]", "%T", "[", "%c", "]", "%T", "%m", "%n",
	}

	var want string
	var pattern string
	for _, p := range parts {
		want += render(t, p, e)
		pattern += p
	}

	if pattern != DefaultPattern {
		t.Fatalf("parts do not spell DefaultPattern: %q", pattern)
	}
	if got := render(t, pattern, e); got != want {
		t.Errorf("full render = %q, want concatenation %q", got, want)
	}
	if want != "2026-01-15 Thu 12:30:45\ta/b/c/d/e/file.cpp\t42\t[INFO]\t[root]\thello\n" {
		t.Errorf("unexpected default rendering %q", want)
	}
}

func TestPatternFormatter_Idempotent(t *testing.T) {
	e := testEvent()
	a := NewPatternFormatter(DefaultPattern)
	b := NewPatternFormatter(DefaultPattern)

	if a.FormatString(e) != b.FormatString(e) {
		t.Error("two compilations of the same pattern rendered differently")
	}
	if a.FormatString(e) != a.FormatString(e) {
		t.Error("repeated rendering of the same event differed")
	}
}

func TestPatternFormatter_Outputs(t *testing.T) {
	e := testEvent()
	f := NewPatternFormatter("%p:%m")

	data, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(data) != "INFO:hello" {
		t.Errorf("Format() = %q", data)
	}

	var w bytes.Buffer
	if err := f.FormatTo(e, &w); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if w.String() != "INFO:hello" {
		t.Errorf("FormatTo() wrote %q", w.String())
	}

	var buf bytes.Buffer
	buf.WriteString(">")
	f.FormatEntry(e, &buf)
	if buf.String() != ">INFO:hello" {
		t.Errorf("FormatEntry() appended %q", buf.String())
	}

	if f.Pattern() != "%p:%m" {
		t.Errorf("Pattern() = %q", f.Pattern())
	}
}

func TestPatternFormatter_Diagnostics(t *testing.T) {
	e := testEvent()

	tests := []struct {
		name    string
		pattern string
		kind    DiagnosticKind
		offset  int
		key     byte
		items   int
		want    string
	}{
		{"unknown key", "%q", UnknownDirective, 0, 'q', 0, ""},
		{"unknown key stops compile", "ab%q%m", UnknownDirective, 2, 'q', 1, "ab"},
		{"escape", "%m%%p", UnexpectedEscape, 2, '%', 1, "hello"},
		{"trailing percent", "%m %", MissingKey, 3, 0, 2, "hello "},
		{"unterminated", "[%p]%d{%Y", UnterminatedArgument, 4, 'd', 3, "[INFO]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.pattern, nil)
			if f == nil {
				t.Fatal("Compile() returned nil formatter")
			}
			if err == nil {
				t.Fatal("Compile() expected an error")
			}

			diags := f.Diagnostics()
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
			}
			d := diags[0]
			if d.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.kind)
			}
			if d.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", d.Offset, tt.offset)
			}
			if d.Key != tt.key {
				t.Errorf("Key = %q, want %q", d.Key, tt.key)
			}

			var target *Diagnostic
			if !errors.As(err, &target) || target != d {
				t.Errorf("error %v does not carry the diagnostic", err)
			}

			if f.Items() != tt.items {
				t.Errorf("Items() = %d, want %d", f.Items(), tt.items)
			}
			if got := f.FormatString(e); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPatternFormatter_BadArgumentSkipsDirective(t *testing.T) {
	reg := NewRegistry()
	errBad := errors.New("bad width")
	reg.Register('w', func(arg string) (Item, error) {
		if arg != "ok" {
			return nil, errBad
		}
		return literalItem("W"), nil
	})

	f, err := Compile("%w{nope}|%m|%w{ok}|%w", reg)
	if got := f.FormatString(testEvent()); got != "|hello|W|" {
		t.Errorf("render = %q, want %q", got, "|hello|W|")
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	for _, e := range errs {
		var d *Diagnostic
		if !errors.As(e, &d) || d.Kind != BadArgument {
			t.Errorf("expected BadArgument diagnostic, got %v", e)
			continue
		}
		if !errors.Is(d, errBad) {
			t.Errorf("diagnostic does not unwrap to the factory error: %v", d)
		}
	}
}

func TestPatternFormatter_CleanPatternHasNoDiagnostics(t *testing.T) {
	f, err := Compile(DefaultPattern, nil)
	if err != nil {
		t.Fatalf("Compile(DefaultPattern) error = %v", err)
	}
	if len(f.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want none", f.Diagnostics())
	}
}

func TestPatternFormatter_EmptyPattern(t *testing.T) {
	f, err := Compile("", nil)
	if err != nil {
		t.Fatalf("Compile(\"\") error = %v", err)
	}
	if got := f.FormatString(testEvent()); got != "" {
		t.Errorf("render = %q, want empty", got)
	}
}

func TestTrimPath(t *testing.T) {
	tests := []struct {
		path  string
		depth int
		want  string
	}{
		{"/a/b/c/d/e/file.cpp", 2, "d/e/file.cpp"},
		{"/a/b/c/d/e/file.cpp", 0, "/a/b/c/d/e/file.cpp"},
		{"/a/b/c/d/e/file.cpp", 5, "a/b/c/d/e/file.cpp"},
		{"/a/b/c/d/e/file.cpp", 6, "/a/b/c/d/e/file.cpp"},
		{"file.cpp", 3, "file.cpp"},
		{"src/file.cpp", 0, "src/file.cpp"},
		{"", 2, ""},
	}

	for _, tt := range tests {
		if got := trimPath(tt.path, tt.depth); got != tt.want {
			t.Errorf("trimPath(%q, %d) = %q, want %q", tt.path, tt.depth, got, tt.want)
		}
	}
}

func TestDiagnostic_Error(t *testing.T) {
	d := &Diagnostic{Kind: UnknownDirective, Offset: 4, Key: 'q'}
	if d.Error() != "pattern offset 4: unknown directive %q" {
		t.Errorf("Error() = %q", d.Error())
	}
	if DiagnosticKind(99).String() != "unknown diagnostic" {
		t.Errorf("String() = %q", DiagnosticKind(99).String())
	}
}

func BenchmarkPatternFormatter(b *testing.B) {
	f := NewPatternFormatter(DefaultPattern)
	e := testEvent()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(e)
	}
}

func BenchmarkCompile(b *testing.B) {
	reg := NewRegistry()
	for i := 0; i < b.N; i++ {
		_, _ = Compile(DefaultPattern, reg)
	}
}
