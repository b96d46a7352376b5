package lineprotocol

import (
	"fmt"
	"strconv"
)

// FieldType identifies the inferred type of a field value.
type FieldType int

const (
	// Float is an IEEE-754 double, the default numeric type
	Float FieldType = iota
	// Integer is a signed 64-bit integer (value suffix "i")
	Integer
	// UInteger is an unsigned 64-bit integer (value suffix "u")
	UInteger
	// Boolean is a true/false value
	Boolean
	// String is a double-quoted string value
	String
)

// String returns the string representation of FieldType
func (ft FieldType) String() string {
	switch ft {
	case Float:
		return "float"
	case Integer:
		return "integer"
	case UInteger:
		return "uinteger"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged union holding one typed field value. The zero Value is
// Float(0).
type Value struct {
	typ FieldType
	f   float64
	i   int64
	u   uint64
	b   bool
	s   string
}

// FloatValue returns a Float-typed value
func FloatValue(f float64) Value { return Value{typ: Float, f: f} }

// IntegerValue returns an Integer-typed value
func IntegerValue(i int64) Value { return Value{typ: Integer, i: i} }

// UIntegerValue returns a UInteger-typed value
func UIntegerValue(u uint64) Value { return Value{typ: UInteger, u: u} }

// BooleanValue returns a Boolean-typed value
func BooleanValue(b bool) Value { return Value{typ: Boolean, b: b} }

// StringValue returns a String-typed value
func StringValue(s string) Value { return Value{typ: String, s: s} }

// Type returns the variant this value holds
func (v Value) Type() FieldType { return v.typ }

// Float returns the float64 payload; zero unless Type is Float
func (v Value) Float() float64 { return v.f }

// Int returns the int64 payload; zero unless Type is Integer
func (v Value) Int() int64 { return v.i }

// UInt returns the uint64 payload; zero unless Type is UInteger
func (v Value) UInt() uint64 { return v.u }

// Bool returns the bool payload; false unless Type is Boolean
func (v Value) Bool() bool { return v.b }

// Str returns the string payload; empty unless Type is String
func (v Value) Str() string { return v.s }

// Any returns the payload as an untyped value (float64, int64, uint64,
// bool, or string).
func (v Value) Any() any {
	switch v.typ {
	case Integer:
		return v.i
	case UInteger:
		return v.u
	case Boolean:
		return v.b
	case String:
		return v.s
	default:
		return v.f
	}
}

// String renders the value for logs and error messages
func (v Value) String() string {
	switch v.typ {
	case Integer:
		return strconv.FormatInt(v.i, 10) + "i"
	case UInteger:
		return strconv.FormatUint(v.u, 10) + "u"
	case Boolean:
		return strconv.FormatBool(v.b)
	case String:
		return strconv.Quote(v.s)
	default:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
}

// Tag is one key/value pair from a line's tag set. Tag values are always
// strings regardless of shape.
type Tag struct {
	Key   string
	Value string
}

// Field is one key/typed-value pair from a line's field set.
type Field struct {
	Key   string
	Value Value
}

// Point is one fully parsed line: a non-empty measurement, ordered unique
// tags, ordered unique non-empty fields, and an optional timestamp in the
// stream's precision unit.
type Point struct {
	Measurement  string
	Tags         []Tag
	Fields       []Field
	Timestamp    int64
	HasTimestamp bool
}

// TagValue returns the value of the named tag
func (p *Point) TagValue(key string) (string, bool) {
	for _, t := range p.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// FieldValue returns the value of the named field
func (p *Point) FieldValue(key string) (Value, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// String renders a compact description for logs
func (p *Point) String() string {
	return fmt.Sprintf("point(%s, %d tags, %d fields)", p.Measurement, len(p.Tags), len(p.Fields))
}
