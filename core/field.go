package core

import (
	"strconv"
)

// FieldType represents the type of a field value. The set of variants
// is closed: formatters switch over it exhaustively, so adding a type
// here means touching every formatter.
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Float64Type
	BoolType
)

// Field represents a key-value pair for structured logging. All value
// slots live inline; only the one selected by Type is meaningful.
// Booleans are stored in Int64 as 0 or 1.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
}

// StringValue returns the string representation of a field's value.
// Floats render in plain decimal notation, never scientific.
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	default:
		return ""
	}
}
