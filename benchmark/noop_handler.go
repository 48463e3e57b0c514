package benchmark

import (
	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// noopHandler applies the level gate and discards the record, so a
// benchmark can isolate the cost of everything before the sink.
type noopHandler struct {
	level core.Level
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) {
	if !e.Level.Enabled(h.level) {
		return
	}
	_ = len(e.Message)
}

func (h *noopHandler) SetLevel(level core.Level) {
	h.level = level
}

func (h *noopHandler) Flush() {}

func (h *noopHandler) Close() {}
