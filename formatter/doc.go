// Package formatter turns log events into bytes.
//
// The main formatter is PatternFormatter, compiled from a printf-style
// pattern such as
//
//	%d{%Y-%m-%d %H:%M:%S}%T[%p]%T%m%n
//
// Compilation is eager and happens once: the pattern is scanned left to
// right and every literal run or %-directive becomes an Item. Rendering
// replays the items in order into a pooled bytes.Buffer, so a compiled
// formatter carries no per-call state and may be shared freely.
//
// Malformed patterns never make rendering fail. The compiler records a
// Diagnostic for each problem and keeps every item compiled before it.
// An unknown directive, a stray %% or an unterminated {argument} stops
// compilation; an argument the directive itself rejects only drops that
// one directive.
//
// Directive keys are resolved through a Registry. NewRegistry returns
// the built-in set (d, f, l, p, m, c, T, n, r); callers that need their
// own directives register an ItemFactory on a registry of their own and
// pass it to Compile.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
