package formatter

import (
	"bytes"
	"strings"

	"github.com/kvlog/kvlog/core"
)

// TextFormatter formats log entries as human-readable text:
// "LEVEL: message key=value key=value".
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// pre-formatted level prefixes to avoid a second WriteString per entry
var levelPrefixes = [...]string{
	core.TraceLevel:    "TRACE: ",
	core.DebugLevel:    "DEBUG: ",
	core.InfoLevel:     "INFO: ",
	core.WarningLevel:  "WARNING: ",
	core.ErrorLevel:    "ERROR: ",
	core.CriticalLevel: "CRITICAL: ",
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if int(entry.Level) >= 0 && int(entry.Level) < len(levelPrefixes) {
		buf.WriteString(levelPrefixes[entry.Level])
	} else {
		buf.WriteString("UNKNOWN: ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields.Items() {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		appendTextValue(buf, field)
	}
}

// appendTextValue writes the field value. Text values containing a
// space are wrapped in double quotes; nothing inside the quotes is
// escaped, so a value carrying its own quote renders ambiguously.
// Keys and messages are never quoted.
func appendTextValue(buf *bytes.Buffer, field core.Field) {
	if field.Type == core.StringType && strings.IndexByte(field.Str, ' ') >= 0 {
		buf.WriteByte('"')
		buf.WriteString(field.Str)
		buf.WriteByte('"')
		return
	}
	buf.WriteString(field.StringValue())
}
