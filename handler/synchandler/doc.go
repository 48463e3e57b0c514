// Package synchandler provides a mutex decorator for handlers.
//
// Everything else in this module is single-threaded by contract: no
// handler or logger performs its own locking. Wrapping a handler in
// NewSyncHandler is the one sanctioned way to share it (and any
// logger built on it) across goroutines. Callers that stay on one
// goroutine skip the wrapper and pay nothing.
package synchandler
