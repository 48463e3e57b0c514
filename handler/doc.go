// Package handler defines the Handler interface for dispatching log
// entries to output sinks.
//
// A handler owns exactly one formatter and a minimum-level gate. The
// gate is checked before formatting, so a filtered entry costs one
// integer comparison. All handlers are synchronous: Handle returns
// once the line has been handed to the sink (or to the handler's
// internal write buffer), and entries appear in call order.
//
// Handle, Flush and Close swallow runtime sink errors by contract.
// Construction errors are the exception and propagate normally.
//
// Built-in implementations live in subpackages:
//
//   - consolehandler writes to stdout or stderr (or any io.Writer).
//   - filehandler writes to an append or truncate mode file through
//     an internal buffer.
//   - multihandler fans out a single entry to multiple child handlers.
//   - synchandler wraps any handler with a mutex for use across
//     goroutines; everything else in this module is single-threaded
//     by contract.
//   - sloghandler adapts a Handler to log/slog.Handler so kvlog can
//     serve as a backend for the standard library.
//   - zaphandler adapts a Handler to zapcore.Core so kvlog can sit
//     behind a zap.Logger.
package handler
