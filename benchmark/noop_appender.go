package benchmark

import (
	"github.com/alfmunny/EVA02/appender"
	"github.com/alfmunny/EVA02/core"
	"github.com/alfmunny/EVA02/formatter"
)

// noopAppender measures logger dispatch without any formatting
type noopAppender struct{}

func newNoopAppender() appender.Appender {
	return &noopAppender{}
}

func (a *noopAppender) Log(e *core.Event) {
	_ = len(e.Message)
}

func (a *noopAppender) Level() core.Level { return core.UnknownLevel }

func (a *noopAppender) SetLevel(core.Level) {}

func (a *noopAppender) Formatter() formatter.Formatter { return nil }

func (a *noopAppender) Close() error { return nil }
