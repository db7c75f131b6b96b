// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package value defines a mutable in-memory model for JSON values, with
// conversion to and from text.
//
// A Value is one of seven concrete types:
//
//	Variant | Go type  | Notes
//	------- | -------- | -----------------------------------------
//	null    | Null     | the zero value of Null
//	boolean | Bool     |
//	integer | Int      | 64-bit signed
//	float   | Float    | 64-bit IEEE 754
//	string  | String   |
//	array   | *Array   | ordered; elements may alias
//	object  | *Object  | named members; order is not significant
//
// The scalar types are plain Go values. Arrays and objects are referenced by
// pointer, so one container may appear in several places in a tree, and may
// even contain itself. Such a cycle is legal to build, but cannot be
// rendered as text: Encode reports a *CircularReferenceError.
//
// Wherever a Value is stored into a container, a nil Value is stored as Null.
package value

import (
	"fmt"
	"strconv"
)

// A Value is an arbitrary JSON value. Its concrete type is one of Null, Bool,
// Int, Float, String, *Array, or *Object.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind

	// Len reports the number of elements of an array or members of an object.
	// It reports 0 for null and 1 for other scalars.
	Len() int

	String() string

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull   Kind = iota // null
	KindBool               // true, false
	KindInt                // integer
	KindFloat              // floating-point number
	KindString             // string
	KindArray              // array
	KindObject             // object
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindInt:    "integer",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// KindOf reports the kind of v, treating nil as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) Len() int       { return 0 }
func (Null) String() string { return "null" }
func (Null) JSON() string   { return "null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (Bool) Len() int         { return 1 }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (b Bool) JSON() string   { return b.String() }
func (Bool) isValue()         {}

// An Int is an integer value.
type Int int64

func (Int) Kind() Kind       { return KindInt }
func (Int) Len() int         { return 1 }
func (z Int) String() string { return strconv.FormatInt(int64(z), 10) }
func (z Int) JSON() string   { return z.String() }
func (Int) isValue()         {}

// A Float is a floating-point value.
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) Len() int   { return 1 }

// String renders f in canonical decimal form, or as NaN, Infinity, or
// -Infinity for non-finite values.
func (f Float) String() string { return FormatFloat(float64(f)) }

// JSON renders f as JSON text. Non-finite values, which have no JSON number
// form, are rendered as quoted strings.
func (f Float) JSON() string { return string(appendFloat(nil, float64(f))) }
func (Float) isValue()       {}

// A String is a string value.
type String string

func (String) Kind() Kind       { return KindString }
func (String) Len() int         { return 1 }
func (s String) String() string { return string(s) }

// JSON renders s as a double-quoted JSON string.
func (s String) JSON() string { return string(appendQuoted(nil, string(s))) }
func (String) isValue()       {}

// norm returns v, or Null if v == nil.
func norm(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// ToValue converts a string, int, float, bool, nil, or Value into a Value.
// It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// ArrayOf constructs an array of the given values, converted with ToValue.
// It panics if any value cannot be converted.
func ArrayOf(vs ...any) *Array {
	a := &Array{values: make([]Value, len(vs))}
	for i, v := range vs {
		a.values[i] = ToValue(v)
	}
	return a
}

// A Member is a key-value pair, used to construct objects.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ObjectOf constructs an object with the given members. If a key occurs more
// than once, the last value for it wins.
func ObjectOf(ms ...*Member) *Object {
	o := NewObject()
	for _, m := range ms {
		o.Set(m.Key, m.Value)
	}
	return o
}
