package sloghandler

import (
	"context"
	"log/slog"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// kvlog Handler. The wrapped handler keeps its own level gate; the
// adapter's level only answers slog's Enabled checks.
type SlogHandler struct {
	handler handler.Handler
	level   core.Level
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h handler.Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.level)
}

// Handle converts a slog.Record to a core.Entry and hands it to the
// wrapped handler. It never returns an error; the wrapped handler
// swallows sink failures by contract.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message

	// Pre-bound attrs first, then record attrs; later keys win
	for _, f := range s.attrs {
		entry.Fields.Set(f)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&entry.Fields, s.group, a)
		return true
	})

	s.handler.Handle(entry)
	core.PutEntry(entry)
	return nil
}

// WithAttrs returns a new SlogHandler with additional pre-bound attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var converted core.Fields
	for _, a := range attrs {
		appendSlogAttr(&converted, s.group, a)
	}

	newAttrs := make([]core.Field, 0, len(s.attrs)+converted.Len())
	newAttrs = append(newAttrs, s.attrs...)
	newAttrs = append(newAttrs, converted.Items()...)

	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler whose subsequent attrs are
// prefixed with the group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr converts a slog.Attr into fields, flattening groups
// into dot-prefixed keys and rendering values outside the four field
// types as text.
func appendSlogAttr(fields *core.Fields, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		// A group with an empty key inlines its attrs
		prefix := a.Key
		if prefix == "" {
			prefix = group
		} else if group != "" {
			prefix = group + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			appendSlogAttr(fields, prefix, ga)
		}
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindString:
		fields.SetString(key, a.Value.String())
	case slog.KindInt64:
		fields.SetInt64(key, a.Value.Int64())
	case slog.KindUint64:
		fields.SetInt64(key, int64(a.Value.Uint64()))
	case slog.KindFloat64:
		fields.SetFloat64(key, a.Value.Float64())
	case slog.KindBool:
		fields.SetBool(key, a.Value.Bool())
	default:
		// times, durations and arbitrary values render as text
		fields.SetString(key, a.Value.String())
	}
}
