// Package logger is the public API of eva02. Most users only need to
// import this package.
//
// A Logger has a name, a minimum level and an ordered set of appenders.
// Log drops events below the logger's level and hands the rest, unchanged,
// to every appender in the order they were added. Each appender applies
// its own level again, so an appender can be stricter than its logger:
//
//	log := logger.New("api", logger.DebugLevel)
//	log.AddAppender(appender.NewStdoutAppender("%d%T[%p]%T%m%n"))
//	log.Infof("listening on %d", 8080)
//
// The appender set is copy-on-write and the level is atomic, so Log never
// takes a lock and a Logger may be used from several goroutines. Adding
// the same appender twice is a no-op; the same appender may be shared by
// several loggers.
//
// The package keeps a root logger (named "root", DebugLevel, default
// pattern on stdout). The package-level functions Debugf, Infof, etc.
// delegate to it, so simple programs can log without any setup.
//
// NewSlogHandler lets a Logger back a log/slog.Logger.
package logger
