package zaphandler

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
)

// ZapCore implements zapcore.Core on top of a kvlog Handler, so a
// zap.Logger can write through kvlog formatters and sinks. The
// LevelEnabler answers zap's own gate; the wrapped handler still
// applies its threshold afterwards.
type ZapCore struct {
	handler handler.Handler
	enab    zapcore.LevelEnabler
	fields  []zapcore.Field
}

// NewZapCore creates a zapcore.Core adapter wrapping the given Handler.
func NewZapCore(h handler.Handler, enab zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{handler: h, enab: enab}
}

// Enabled reports whether the given zap level is enabled.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.enab.Enabled(level)
}

// With returns a child core carrying additional bound fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{
		handler: c.handler,
		enab:    c.enab,
		fields:  make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

// Check adds this core to the checked entry if its level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry and fields to a core.Entry and hands
// it to the wrapped handler. It never fails; the handler swallows
// sink errors by contract.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	entry.Level = zapLevelToCore(ent.Level)
	entry.Message = ent.Message

	// Bound fields first, then call-site fields; later keys win
	for _, f := range c.fields {
		setZapField(&entry.Fields, f)
	}
	for _, f := range fields {
		setZapField(&entry.Fields, f)
	}

	c.handler.Handle(entry)
	core.PutEntry(entry)
	return nil
}

// Sync flushes the wrapped handler.
func (c *ZapCore) Sync() error {
	c.handler.Flush()
	return nil
}

// zapLevelToCore maps zap levels onto the six kvlog levels. DPanic
// and above collapse into Critical; zap has nothing below Debug.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// setZapField converts one zap field into the four kvlog field types.
// Integers of every width share the Integer slot; floats travel as
// raw bits. Values outside the four types render as text.
func setZapField(fields *core.Fields, f zapcore.Field) {
	switch f.Type {
	case zapcore.StringType:
		fields.SetString(f.Key, f.String)
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type,
		zapcore.UintptrType:
		fields.SetInt64(f.Key, f.Integer)
	case zapcore.Float64Type:
		fields.SetFloat64(f.Key, math.Float64frombits(uint64(f.Integer)))
	case zapcore.Float32Type:
		fields.SetFloat64(f.Key, float64(math.Float32frombits(uint32(f.Integer))))
	case zapcore.BoolType:
		fields.SetBool(f.Key, f.Integer == 1)
	case zapcore.DurationType:
		fields.SetString(f.Key, time.Duration(f.Integer).String())
	case zapcore.TimeType:
		fields.SetString(f.Key, time.Unix(0, f.Integer).Format(time.RFC3339Nano))
	case zapcore.ErrorType:
		fields.SetString(f.Key, f.Interface.(error).Error())
	case zapcore.ByteStringType:
		fields.SetString(f.Key, string(f.Interface.([]byte)))
	case zapcore.StringerType:
		fields.SetString(f.Key, f.Interface.(fmt.Stringer).String())
	case zapcore.SkipType:
		// zap.Skip and nil errors produce no field
	default:
		fields.SetString(f.Key, fmt.Sprint(f.Interface))
	}
}
