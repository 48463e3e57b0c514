package multihandler

import (
	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// MultiHandler fans a log entry out to multiple child handlers in
// registration order. Each child applies its own level gate, so one
// entry can land in some sinks and not in others.
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a handler that forwards to all given handlers
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle forwards the entry to every child handler
func (h *MultiHandler) Handle(entry *core.Entry) {
	for _, child := range h.handlers {
		child.Handle(entry)
	}
}

// SetLevel broadcasts the threshold to every child. Configure the
// children individually before wrapping when they need distinct gates.
func (h *MultiHandler) SetLevel(level core.Level) {
	for _, child := range h.handlers {
		child.SetLevel(level)
	}
}

// Flush flushes every child handler
func (h *MultiHandler) Flush() {
	for _, child := range h.handlers {
		child.Flush()
	}
}

// Close closes every child handler. Children treat Close as
// idempotent, so closing the fan-out twice is harmless too.
func (h *MultiHandler) Close() {
	for _, child := range h.handlers {
		child.Close()
	}
}
