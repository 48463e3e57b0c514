package logger

import (
	"fmt"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// Logger is the front door of kvlog. A Logger owns exactly one
// Handler; fan-out to several sinks is the multihandler's job.
//
// Loggers are immutable: With returns a child instead of mutating.
// Level filtering lives in the handler, so SetLevel changes the
// threshold seen by every logger sharing that handler.
type Logger struct {
	handler handler.Handler
	fields  []core.Field
}

// New creates a Logger writing through h. A nil handler panics: a
// logger without a sink is a programming error, not a runtime
// condition.
func New(h handler.Handler) *Logger {
	if h == nil {
		panic("logger: nil handler")
	}
	return &Logger{handler: h}
}

// With creates a new Logger with additional bound fields (immutable
// operation). Bound fields precede call-site fields on every record,
// so a call-site field can override a bound key.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		handler: l.handler,
		fields:  newFields,
	}
}

// Log logs a message at the specified level.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

// log builds a pooled entry, folds bound and call-site fields through
// the deduplicating field set, and hands it to the handler. The
// handler owns the level gate, so a filtered record costs one pool
// round-trip and nothing else.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg

	for _, f := range l.fields {
		entry.Fields.Set(f)
	}
	for _, f := range fields {
		entry.Fields.Set(f)
	}

	l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	l.log(core.WarningLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.log(core.CriticalLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.log(core.WarningLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// SetLevel changes the threshold of the owned handler. Records below
// the new threshold are dropped from the next call on.
func (l *Logger) SetLevel(level core.Level) {
	l.handler.SetLevel(level)
}

// Flush forces buffered records through to the sink.
func (l *Logger) Flush() {
	l.handler.Flush()
}

// Close closes the logger's handler. The logger must not be used
// afterwards.
func (l *Logger) Close() {
	l.handler.Close()
}
