package consolehandler

import (
	"bytes"
	"io"
	"os"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/formatter"
)

// Config holds configuration for the console handler
type Config struct {
	// Writer overrides the destination stream (tests mostly). When
	// nil the handler writes to os.Stdout, or os.Stderr when
	// UseStderr is set.
	Writer io.Writer
	// UseStderr selects standard error instead of standard output
	UseStderr bool
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the minimum level written (default: TraceLevel, everything passes)
	Level core.Level
}

// ConsoleHandler writes log entries to a console stream. The stream
// is fixed at construction time; Close stops further writes but never
// closes the stream itself, since the handler does not own stdout or
// stderr.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	buf             bytes.Buffer
	closed          bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg Config) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		level:     cfg.Level,
	}

	// Cache BufferFormatter so Handle formats straight into the
	// handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *Config) {
	if cfg.Writer == nil {
		if cfg.UseStderr {
			cfg.Writer = os.Stderr
		} else {
			cfg.Writer = os.Stdout
		}
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
}

// Handle formats and writes an entry if its level passes the
// threshold. The line and its newline reach the writer in a single
// Write call.
func (h *ConsoleHandler) Handle(entry *core.Entry) {
	if h.closed || !entry.Level.Enabled(h.level) {
		return
	}

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, &h.buf)
	} else {
		h.buf.Write(h.formatter.Format(entry))
	}
	h.buf.WriteByte('\n')

	// Write errors are swallowed: logging must not abort the caller
	_, _ = h.writer.Write(h.buf.Bytes())
}

// SetLevel replaces the minimum-level threshold
func (h *ConsoleHandler) SetLevel(level core.Level) {
	h.level = level
}

// Flush is a no-op; console writes are unbuffered
func (h *ConsoleHandler) Flush() {}

// Close stops further writes. Idempotent.
func (h *ConsoleHandler) Close() {
	h.closed = true
}
