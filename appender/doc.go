// Package appender provides the Appender interface and its built-in
// sinks.
//
// An appender owns a Formatter and a minimum Level. Log drops events
// below that level, renders the rest and writes them synchronously, so
// a Log call returns only once the bytes have reached the sink.
//
// Built-in appenders:
//
//   - ConsoleAppender writes to any io.Writer (default: stdout), with
//     optional per-level ANSI colour.
//   - FileAppender appends to a file. It never rotates.
//   - ZapAppender hands events to a zapcore.Core, so an existing zap
//     pipeline can be used as a sink.
//
// A failing sink never reaches the caller. The event is counted as
// dropped in the appender's Stats and the error is reported to the
// appender's ErrorOutput (stderr unless configured), mirroring how zap
// reports its own write errors.
//
// List is the ordered, identity-deduplicated appender collection used by
// loggers. It is copy-on-write: iteration takes no lock.
package appender
