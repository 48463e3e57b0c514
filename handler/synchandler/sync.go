package synchandler

import (
	"sync"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// SyncHandler wraps another handler with a mutex, making it safe to
// share one logger across goroutines. Lines from concurrent callers
// interleave whole, never torn.
type SyncHandler struct {
	mu    sync.Mutex
	inner handler.Handler
}

// NewSyncHandler wraps h with a mutex across all handler operations
func NewSyncHandler(h handler.Handler) *SyncHandler {
	return &SyncHandler{inner: h}
}

// Handle forwards the entry to the wrapped handler under the lock
func (h *SyncHandler) Handle(entry *core.Entry) {
	h.mu.Lock()
	h.inner.Handle(entry)
	h.mu.Unlock()
}

// SetLevel forwards to the wrapped handler under the lock
func (h *SyncHandler) SetLevel(level core.Level) {
	h.mu.Lock()
	h.inner.SetLevel(level)
	h.mu.Unlock()
}

// Flush forwards to the wrapped handler under the lock
func (h *SyncHandler) Flush() {
	h.mu.Lock()
	h.inner.Flush()
	h.mu.Unlock()
}

// Close forwards to the wrapped handler under the lock. Idempotence
// comes from the wrapped handler.
func (h *SyncHandler) Close() {
	h.mu.Lock()
	h.inner.Close()
	h.mu.Unlock()
}
