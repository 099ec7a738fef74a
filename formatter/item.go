package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/alfmunny/EVA02/core"
)

// DefaultDateLayout is used by %d when no {template} is given.
const DefaultDateLayout = "%Y-%m-%d %H:%M:%S"

// Item renders one piece of an event into a buffer. Items are immutable
// once built and must not keep per-call state.
type Item interface {
	Format(buf *bytes.Buffer, e *core.Event)
}

// ItemFunc adapts a plain function to the Item interface.
type ItemFunc func(buf *bytes.Buffer, e *core.Event)

// Format calls f(buf, e).
func (f ItemFunc) Format(buf *bytes.Buffer, e *core.Event) {
	f(buf, e)
}

// literalItem emits fixed text
type literalItem string

func (s literalItem) Format(buf *bytes.Buffer, _ *core.Event) {
	buf.WriteString(string(s))
}

// dateItem formats the event time in local time
type dateItem struct {
	layout *strftime.Strftime
}

func newDateItem(arg string) (Item, error) {
	if arg == "" {
		arg = DefaultDateLayout
	}
	layout, err := strftime.New(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date template %q", arg)
	}
	return dateItem{layout: layout}, nil
}

func (d dateItem) Format(buf *bytes.Buffer, e *core.Event) {
	// Writes into a bytes.Buffer cannot fail.
	_ = d.layout.Format(buf, e.Time.Local())
}

// fileItem emits the trailing part of the source path
type fileItem struct {
	depth int
}

func newFileItem(arg string) (Item, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		depth = 0
	}
	return fileItem{depth: depth}, nil
}

func (f fileItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.WriteString(trimPath(e.File, f.depth))
}

// trimPath keeps the file name plus the last depth directories of path.
// A depth of zero or less, or a path with fewer separators, keeps the
// whole path.
func trimPath(path string, depth int) string {
	if depth <= 0 {
		return path
	}
	end := len(path)
	for n := 0; n <= depth; n++ {
		i := strings.LastIndexByte(path[:end], '/')
		if i < 0 {
			return path
		}
		end = i
	}
	return path[end+1:]
}

type lineItem struct{}

func (lineItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(e.Line), 10))
}

type levelItem struct{}

func (levelItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.WriteString(e.Level.String())
}

type messageItem struct{}

func (messageItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.WriteString(e.Message)
}

type loggerNameItem struct{}

func (loggerNameItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.WriteString(e.LoggerName())
}

type tabItem struct{}

func (tabItem) Format(buf *bytes.Buffer, _ *core.Event) {
	buf.WriteByte('\t')
}

type newlineItem struct{}

func (newlineItem) Format(buf *bytes.Buffer, _ *core.Event) {
	buf.WriteByte('\n')
}

// elapsedItem emits milliseconds since process start
type elapsedItem struct{}

func (elapsedItem) Format(buf *bytes.Buffer, e *core.Event) {
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), e.Elapsed.Milliseconds(), 10))
}

// fixed returns a factory that ignores its argument.
func fixed(it Item) ItemFactory {
	return func(string) (Item, error) {
		return it, nil
	}
}
