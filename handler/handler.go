package handler

import (
	"github.com/kvlog/kvlog/core"
)

// Handler defines the interface for log handlers. A handler owns one
// formatter and a minimum-level threshold, and writes each accepted
// entry as one line to its sink.
//
// Handle, Flush and Close return nothing: runtime sink errors are
// swallowed so that logging can never abort the caller's control
// flow. The failures that matter (a file that cannot be opened)
// surface from the constructor instead.
//
// Handlers are not safe for concurrent use; wrap one in
// synchandler.SyncHandler to share it across goroutines.
type Handler interface {
	// Handle formats and writes a log entry iff entry.Level passes
	// the handler's threshold (inclusive: equal passes). The entry
	// is only valid for the duration of the call.
	Handle(entry *core.Entry)

	// SetLevel replaces the minimum-level threshold. It affects
	// only subsequent Handle calls.
	SetLevel(level core.Level)

	// Flush forces buffered output toward the sink. Unbuffered
	// handlers treat it as a no-op.
	Flush()

	// Close flushes and releases the sink. Close is idempotent;
	// entries handled after Close are dropped.
	Close()
}
