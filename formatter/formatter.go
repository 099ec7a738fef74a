package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/alfmunny/EVA02/core"
)

// Formatter renders an event as one line of output.
type Formatter interface {
	Format(e *core.Event) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can render straight
// into an io.Writer.
type WriterFormatter interface {
	FormatTo(e *core.Event, w io.Writer) error
}

// BufferFormatter is implemented by formatters that can append to a
// buffer owned by the caller. Appenders holding their own buffer under a
// lock prefer it.
type BufferFormatter interface {
	FormatEntry(e *core.Event, buf *bytes.Buffer)
}

// maxPooledBuffer caps the capacity of buffers returned to the pool.
const maxPooledBuffer = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledBuffer {
		bufferPool.Put(buf)
	}
}
