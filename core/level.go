package core

// Level represents the severity of a log entry. Levels are ordered:
// a handler configured with threshold T writes an entry of level L
// when L >= T.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for errors that likely precede a shutdown
	CriticalLevel
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether an entry at level l passes a handler
// threshold of t. The gate is inclusive: l == t passes.
func (l Level) Enabled(t Level) bool {
	return l >= t
}
