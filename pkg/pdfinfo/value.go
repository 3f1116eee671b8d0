package pdfinfo

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindTime
	KindNull
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindTime:
		return "time"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// TimeLayout is the layout used when a timestamp value is rendered as text.
const TimeLayout = time.RFC3339

// Value is a typed metadata value. The zero Value is an empty string.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int64
	t    time.Time
}

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int creates an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Time creates a timestamp value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Null creates a null value.
func Null() Value { return Value{kind: KindNull} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsTime returns the timestamp held by v and whether v is a timestamp.
func (v Value) AsTime() (time.Time, bool) { return v.t, v.kind == KindTime }

// String renders v in the same textual form the field parser accepts, so
// rendered scalars re-parse to an equal value.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "yes"
		}
		return "no"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindTime:
		return v.t.Format(TimeLayout)
	case KindNull:
		return "none"
	default:
		return v.s
	}
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindTime:
		return v.t.Equal(o.t)
	case KindNull:
		return true
	default:
		return v.s == o.s
	}
}

// Interface returns v as a plain Go value: string, bool, int64, time.Time or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindTime:
		return v.t
	case KindNull:
		return nil
	default:
		return v.s
	}
}

// MarshalJSON encodes v as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindTime {
		return json.Marshal(v.t.Format(TimeLayout))
	}
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes v as its natural YAML scalar.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindTime {
		return v.t.Format(TimeLayout), nil
	}
	return v.Interface(), nil
}
