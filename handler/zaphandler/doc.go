// Package zaphandler bridges zap into kvlog.
//
// NewZapCore wraps any Handler as a zapcore.Core, so existing code
// built on zap.Logger can emit through kvlog formatters and sinks
// without changing call sites:
//
//	h := consolehandler.NewConsoleHandler(consolehandler.Config{})
//	log := zap.New(zaphandler.NewZapCore(h, zapcore.InfoLevel))
//	log.Info("user login", zap.Int("user_id", 123))
//
// Zap levels collapse onto the six kvlog levels (DPanic, Panic and
// Fatal all map to CRITICAL), and zap fields convert to the four
// kvlog field types, rendering richer values as text.
package zaphandler
