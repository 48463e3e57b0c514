// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, allowing kvlog to serve as a drop-in backend for
// the standard library's structured logging.
//
// slog levels map onto the six kvlog levels (below Debug becomes
// Trace, above Error becomes Critical), attribute groups flatten into
// dot-prefixed keys, and attribute values outside the four field
// types render as text.
package sloghandler
