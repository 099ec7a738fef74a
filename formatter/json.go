package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/alfmunny/EVA02/core"
)

// JSONFormatter renders each event as one JSON object per line
type JSONFormatter struct {
	// TimestampFormat is a Go time layout (default: time.RFC3339)
	TimestampFormat string
	// FileDepth trims the "file" value the way %f{depth} does (0 keeps the full path)
	FileDepth int
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(timestampFormat string, fileDepth int) *JSONFormatter {
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}
	return &JSONFormatter{TimestampFormat: timestampFormat, FileDepth: fileDepth}
}

// Format formats an event as JSON
func (f *JSONFormatter) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(e, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an event as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(e *core.Event, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(e, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry builds JSON manually into the buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(e *core.Event, buf *bytes.Buffer) {
	buf.WriteString(`{"time":"`)
	buf.Write(e.Time.Local().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","level":"`)
	buf.WriteString(e.Level.String())

	buf.WriteString(`","logger":"`)
	appendJSONString(buf, e.LoggerName())

	buf.WriteString(`","file":"`)
	appendJSONString(buf, trimPath(e.File, f.FileDepth))

	buf.WriteString(`","line":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(e.Line), 10))

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, e.Message)
	buf.WriteString("\"}\n")
}

// appendJSONString escapes s for use inside a JSON string literal.
// Control bytes without a short form become \u00XX; bytes >= 0x80 are
// copied through unchanged.
func appendJSONString(buf *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"

	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch c := s[i]; {
		case c == '"':
			esc = `\"`
		case c == '\\':
			esc = `\\`
		case c == '\n':
			esc = `\n`
		case c == '\r':
			esc = `\r`
		case c == '\t':
			esc = `\t`
		case c < 0x20:
			esc = string([]byte{'\\', 'u', '0', '0', hex[c>>4], hex[c&0xf]})
		default:
			continue
		}
		buf.WriteString(s[last:i])
		buf.WriteString(esc)
		last = i + 1
	}
	buf.WriteString(s[last:])
}
