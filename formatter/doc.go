// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which formats into a caller-provided bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer
// it when available, eliminating the intermediate byte slice
// allocation on the write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces. The JSONFormatter renders numbers with Go's
// Append-style functions (strconv.AppendInt, strconv.AppendFloat) to
// avoid per-value allocations, and the TextFormatter pre-computes
// level prefix strings ("INFO: ", etc.) so the common path starts with
// a single WriteString call.
//
// Formatted lines never end in a newline; the handler owns the line
// separator. The JSON escaper is partial on purpose (quote, backslash,
// \n, \r, \t only), and the text quoting of values with spaces adds no
// inner escaping. Both choices trade adversarial-input fidelity for a
// branch-light hot path.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
