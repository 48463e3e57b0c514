package logger

import "github.com/kvlog/kvlog/core"

// Field helper functions for convenience

// String creates a text field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an integer field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
}

// Int64 creates an integer field from an int64
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a floating-point field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a boolean field
func Bool(key string, val bool) core.Field {
	var v int64
	if val {
		v = 1
	}
	return core.Field{Key: key, Type: core.BoolType, Int64: v}
}

// Err creates a text field under the key "error" holding err.Error().
// A nil error yields an empty value.
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Type: core.StringType, Str: ""}
	}
	return core.Field{Key: "error", Type: core.StringType, Str: err.Error()}
}
