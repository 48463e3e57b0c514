// Package logger is the public API of kvlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the handler and the
// bound fields are set once and never modified. Level filtering lives
// in the handler, so the threshold of a running program changes
// through SetLevel without swapping loggers.
//
// The package initializes a default Logger (text format to stdout,
// InfoLevel) in init(). The package-level functions Info, Error,
// Debugf, etc. delegate to this default instance, so simple programs
// can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom sinks, construct a handler and hand it to New:
//
//	h, err := filehandler.NewFileHandler(filehandler.Config{
//	    Filename: "app.log",
//	})
//	if err != nil {
//	    return err
//	}
//	log := logger.New(h)
//
// Child loggers with extra fields are created via With, which returns
// a new Logger that shares the same handler but carries additional
// bound fields:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Duplicate keys collapse before formatting: a call-site field with
// the same key as a bound field replaces its value while keeping the
// bound field's position.
//
// Neither Logger nor the handlers synchronize. One goroutine at a
// time per handler chain, or wrap the chain in a synchandler.
package logger
