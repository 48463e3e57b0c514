// Package consolehandler provides a console output handler that
// writes formatted log entries to standard output or standard error
// (or any io.Writer, which tests use).
//
// The stream is chosen once at construction via the UseStderr flag
// and never reassigned. Writes are unbuffered: each accepted entry is
// one Write call carrying the formatted line plus its newline, so
// Flush has nothing to do. Close stops further writes without closing
// the stream, which the process, not the handler, owns.
package consolehandler
