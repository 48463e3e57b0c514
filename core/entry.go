package core

import (
	"sync"
)

// Entry represents a single log record: a severity, a message and the
// fields attached to it. Entries carry no timestamp and no caller
// information; the record is exactly this triple.
type Entry struct {
	Level   Level
	Message string
	Fields  Fields
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: Fields{kv: make([]Field, 0, 8)}, // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves a reset Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Level = TraceLevel
	e.Message = ""
	e.Fields.Reset()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Message = ""
	e.Fields.Reset()
	entryPool.Put(e)
}
