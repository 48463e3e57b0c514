package formatter

import (
	"bytes"
	"sync"

	"github.com/kvlog/kvlog/core"
)

// Formatter defines the interface for log formatters. A formatted
// entry is a single line with no trailing newline; handlers append
// exactly one '\n' per record.
type Formatter interface {
	// Format renders a log entry. The returned slice is a fresh
	// copy the caller may retain.
	Format(entry *core.Entry) []byte
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead. Both built-in formatters implement it.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
