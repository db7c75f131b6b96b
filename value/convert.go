// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"cmp"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/creachadair/jsonval/idstack"
)

// A Converter is a Go value that can produce its own Value.
type Converter interface {
	JSONValue() (Value, error)
}

// A Recognizer handles Go values and map keys that FromGo does not know how
// to convert by itself. FromGo consults a Recognizer before its own rules.
type Recognizer interface {
	// CanConvert reports whether Convert handles v.
	CanConvert(v any) bool

	// Convert converts v to a Value.
	Convert(v any) (Value, error)

	// CanConvertKey reports whether ConvertKey handles the map key k.
	CanConvertKey(k any) bool

	// ConvertKey converts the map key k to an object member name.
	ConvertKey(k any) (string, error)
}

// An Option configures FromGo.
type Option func(*converter)

// WithRecognizer adds r to the recognizers consulted by FromGo. Recognizers
// are consulted in the order given, and the first to accept a value wins.
func WithRecognizer(r Recognizer) Option {
	return func(c *converter) { c.recs = append(c.recs, r) }
}

// StrictNames makes FromGo add object members with Add semantics: a nil map
// key reports ErrNullName, and two keys that convert to the same name report
// a *NameConflictError. By default, nil keys are skipped and a later member
// replaces an earlier one with the same name.
func StrictNames(strict bool) Option {
	return func(c *converter) { c.strict = strict }
}

// FromGo converts a Go value into a Value. It understands nil, Value,
// Converter, booleans, integers, floats, strings, slices, arrays, maps, and
// pointers or interfaces holding any of those. Map members are added in order
// of their names, so the result does not depend on map iteration order.
//
// A map, slice, or pointer that contains itself is reported as a
// *CircularReferenceError before any of it is converted. Sharing without a
// cycle is permitted, but shared host values are converted once per
// occurrence and do not alias in the result.
func FromGo(v any, opts ...Option) (Value, error) {
	c := new(converter)
	for _, opt := range opts {
		opt(c)
	}
	return c.convert(reflect.ValueOf(v))
}

type converter struct {
	recs   []Recognizer
	strict bool
	path   idstack.Stack[hostRef] // host references on the path from the root
}

// A hostRef identifies a host reference by address, type, and length. Two
// slices over the same array with different lengths are distinct.
type hostRef struct {
	addr uintptr
	typ  reflect.Type
	len  int
}

var (
	valueType     = reflect.TypeFor[Value]()
	converterType = reflect.TypeFor[Converter]()
	marshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

func (c *converter) convert(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null{}, nil
	}
	if rv.CanInterface() {
		iv := rv.Interface()
		for _, r := range c.recs {
			if r.CanConvert(iv) {
				return convertWith(r.Convert, iv)
			}
		}
		if isNilRef(rv) {
			return Null{}, nil
		}
		if rv.Type().Implements(valueType) {
			return norm(iv.(Value)), nil
		} else if rv.Type().Implements(converterType) {
			return convertWith(func(any) (Value, error) { return iv.(Converter).JSONValue() }, iv)
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return Int(u), nil
		}
		return Float(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return c.convert(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return Null{}, nil
		}
		return c.within(rv, hostRef{addr: rv.Pointer(), typ: rv.Type()}, func() (Value, error) {
			return c.convert(rv.Elem())
		})
	case reflect.Slice:
		if rv.IsNil() {
			return Null{}, nil
		}
		ref := hostRef{addr: rv.Pointer(), typ: rv.Type(), len: rv.Len()}
		return c.within(rv, ref, func() (Value, error) { return c.convertList(rv) })
	case reflect.Array:
		return c.convertList(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null{}, nil
		}
		return c.within(rv, hostRef{addr: rv.Pointer(), typ: rv.Type()}, func() (Value, error) {
			return c.convertMap(rv)
		})
	default:
		return nil, fmt.Errorf("unsupported value of type %v", rv.Type())
	}
}

// within calls f with ref pushed on the path, or reports a cycle if ref is
// already on it.
func (c *converter) within(rv reflect.Value, ref hostRef, f func() (Value, error)) (Value, error) {
	if c.path.Contains(ref) {
		var host any
		if rv.CanInterface() {
			host = rv.Interface()
		}
		return nil, &CircularReferenceError{Host: host, Depth: c.path.Len()}
	}
	c.path.Push(ref)
	defer c.path.Pop()
	return f()
}

func (c *converter) convertList(rv reflect.Value) (Value, error) {
	a := &Array{values: make([]Value, rv.Len())}
	for i := range rv.Len() {
		elt, err := c.convert(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		a.values[i] = elt
	}
	return a, nil
}

func (c *converter) convertMap(rv reflect.Value) (Value, error) {
	type member struct {
		name string
		val  reflect.Value
	}
	var ms []member
	iter := rv.MapRange()
	for iter.Next() {
		name, ok, err := c.convertKey(iter.Key())
		if err != nil {
			return nil, err
		} else if !ok {
			if c.strict {
				return nil, ErrNullName
			}
			continue
		}
		ms = append(ms, member{name: name, val: iter.Value()})
	}
	slices.SortStableFunc(ms, func(a, b member) int { return cmp.Compare(a.name, b.name) })

	o := NewObject()
	for _, m := range ms {
		v, err := c.convert(m.val)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", m.name, err)
		}
		if !c.strict {
			o.Set(m.name, v)
		} else if err := o.Add(m.name, v); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// convertKey converts a map key to a member name. It reports false without
// error if the key is nil.
func (c *converter) convertKey(rv reflect.Value) (string, bool, error) {
	if rv.CanInterface() {
		iv := rv.Interface()
		for _, r := range c.recs {
			if r.CanConvertKey(iv) {
				name, err := r.ConvertKey(iv)
				if err != nil {
					return "", false, fmt.Errorf("key %v: %w", iv, err)
				}
				return name, true, nil
			}
		}
	}
	if isNilRef(rv) {
		return "", false, nil
	}
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if rv.Type().Implements(marshalerType) && rv.CanInterface() {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", false, fmt.Errorf("key %v: %w", rv, err)
		}
		return string(text), true, nil
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	default:
		return "", false, fmt.Errorf("unsupported key of type %v", rv.Type())
	}
}

// convertWith calls f(v) and normalizes its result.
func convertWith(f func(any) (Value, error), v any) (Value, error) {
	out, err := f(v)
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", v, err)
	}
	return norm(out), nil
}

// isNilRef reports whether rv is a nil pointer, interface, map, or slice.
func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
