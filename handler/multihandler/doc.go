// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers in registration order. The entry
// passes through each child's own level gate, so per-sink thresholds
// keep working; SetLevel on the fan-out broadcasts to every child.
package multihandler
