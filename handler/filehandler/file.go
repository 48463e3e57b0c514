package filehandler

import (
	"bufio"
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/formatter"
)

// Config holds configuration for the file handler
type Config struct {
	// Filename is the path to the log file. The parent directory
	// must already exist; a missing directory surfaces as an open
	// error rather than being created behind the caller's back.
	Filename string
	// Truncate opens the file with O_TRUNC instead of O_APPEND
	Truncate bool
	// BufferSize is the size of the write buffer in bytes (default 4096)
	BufferSize int
	// Formatter to use (default: JSONFormatter)
	Formatter formatter.Formatter
	// Level is the minimum level written (default: TraceLevel, everything passes)
	Level core.Level
}

// FileHandler writes log entries to a single file through an internal
// buffered writer. There is no rotation and no size cap: the file
// grows until something outside this process deals with it.
type FileHandler struct {
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	buf             bytes.Buffer
	closed          bool
}

// NewFileHandler creates a new file handler. Opening the file is the
// one fallible step in a handler's life; the error comes back wrapped
// with the path and nothing is retried.
func NewFileHandler(cfg Config) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	applyFileDefaults(&cfg)

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(cfg.Filename, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", cfg.Filename)
	}

	h := &FileHandler{
		file:      file,
		bufWriter: bufio.NewWriterSize(file, cfg.BufferSize),
		formatter: cfg.Formatter,
		level:     cfg.Level,
	}

	// Cache BufferFormatter so Handle formats straight into the
	// handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h, nil
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter()
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// Handle formats and writes an entry if its level passes the threshold.
func (h *FileHandler) Handle(entry *core.Entry) {
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
	_, _ = h.bufWriter.Write(h.buf.Bytes())
}

// SetLevel replaces the minimum-level threshold
func (h *FileHandler) SetLevel(level core.Level) {
	h.level = level
}

// Flush forces buffered bytes out to the file. Flush errors are
// swallowed like write errors.
func (h *FileHandler) Flush() {
	if h.closed {
		return
	}
	_ = h.bufWriter.Flush()
}

// Close flushes, syncs and closes the file, swallowing errors at each
// step. Idempotent; Handle calls after Close are dropped.
func (h *FileHandler) Close() {
	if h.closed {
		return
	}
	h.closed = true

	_ = h.bufWriter.Flush()
	_ = h.file.Sync()
	_ = h.file.Close()
}
