// Package core defines the shared types used across the kvlog library.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, the Field type for zero-allocation
// structured key-value pairs, and the Fields collection that keeps keys
// unique with last-write-wins semantics.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handler has consumed it. The pool
// pre-allocates the field store with capacity 8, which covers most
// log calls without triggering a slice growth.
//
// Field encodes values into fixed-size slots (Int64, Float64, Str) so
// that ints, floats, bools and strings never box through an interface.
// The variant set is closed on purpose: four types cover the records
// this library models, and every formatter switches over exactly those
// four.
//
// Nothing in this package locks. An Entry and its Fields belong to one
// goroutine at a time; concurrent use is the caller's problem to
// arrange, normally by wrapping a handler in synchandler.
package core
