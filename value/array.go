// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"iter"
	"slices"
)

// An Array is an ordered sequence of values. A zero Array is empty and ready
// for use.
type Array struct {
	values []Value
}

// NewArray constructs an array containing the given values in order.
func NewArray(vs ...Value) *Array {
	a := &Array{values: make([]Value, 0, len(vs))}
	a.Append(vs...)
	return a
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}
func (*Array) container() {}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.values) }

// IsEmpty reports whether a has no elements.
func (a *Array) IsEmpty() bool { return len(a.values) == 0 }

// Clear removes all the elements of a.
func (a *Array) Clear() { clear(a.values); a.values = a.values[:0] }

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.values)) }

// Get returns the element at index i, or reports an *IndexError if i is not
// in the range 0 ≤ i < a.Len().
func (a *Array) Get(i int) (Value, error) {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return nil, err
	}
	return a.values[i], nil
}

// Set replaces the element at index i with v. It reports an *IndexError if i
// is not in the range 0 ≤ i < a.Len().
func (a *Array) Set(i int, v Value) error {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return err
	}
	a.values[i] = norm(v)
	return nil
}

// Insert inserts v before index i, shifting later elements up. An index equal
// to a.Len() appends. It reports an *IndexError if i is not in the range
// 0 ≤ i ≤ a.Len().
func (a *Array) Insert(i int, v Value) error {
	if err := a.checkIndex(i, len(a.values)+1); err != nil {
		return err
	}
	a.values = slices.Insert(a.values, i, norm(v))
	return nil
}

// Remove removes and returns the element at index i, shifting later elements
// down. It reports an *IndexError if i is not in the range 0 ≤ i < a.Len().
func (a *Array) Remove(i int) (Value, error) {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return nil, err
	}
	old := a.values[i]
	a.values = slices.Delete(a.values, i, i+1)
	return old, nil
}

// Append adds vs to the end of a, in order.
func (a *Array) Append(vs ...Value) {
	for _, v := range vs {
		a.values = append(a.values, norm(v))
	}
}

// Values returns a copy of the elements of a. The elements themselves are
// not copied.
func (a *Array) Values() []Value { return slices.Clone(a.values) }

// All is a range function over the indices and elements of a.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: len(a.values)}
	}
	return nil
}

// Bool returns the element at index i converted to a bool by the rules of
// ToBool.
func (a *Array) Bool(i int) (bool, error) { return getIndex(a, i, KindBool, ToBool) }

// CanBool reports whether Bool would succeed for index i.
func (a *Array) CanBool(i int) bool { return canIndex(a, i, ToBool) }

// Int returns the element at index i converted to an int64 by the rules of
// ToInt.
func (a *Array) Int(i int) (int64, error) { return getIndex(a, i, KindInt, ToInt) }

// CanInt reports whether Int would succeed for index i.
func (a *Array) CanInt(i int) bool { return canIndex(a, i, ToInt) }

// Float returns the element at index i converted to a float64 by the rules of
// ToFloat.
func (a *Array) Float(i int) (float64, error) { return getIndex(a, i, KindFloat, ToFloat) }

// CanFloat reports whether Float would succeed for index i.
func (a *Array) CanFloat(i int) bool { return canIndex(a, i, ToFloat) }

// Text returns the element at index i converted to a string by the rules of
// ToText.
func (a *Array) Text(i int) (string, error) { return getIndex(a, i, KindString, ToText) }

// CanText reports whether Text would succeed for index i.
func (a *Array) CanText(i int) bool { return canIndex(a, i, ToText) }

// Array returns the element at index i if it is an array.
func (a *Array) Array(i int) (*Array, error) { return getIndex(a, i, KindArray, asArray) }

// CanArray reports whether Array would succeed for index i.
func (a *Array) CanArray(i int) bool { return canIndex(a, i, asArray) }

// Object returns the element at index i if it is an object.
func (a *Array) Object(i int) (*Object, error) { return getIndex(a, i, KindObject, asObject) }

// CanObject reports whether Object would succeed for index i.
func (a *Array) CanObject(i int) bool { return canIndex(a, i, asObject) }

func getIndex[T any](a *Array, i int, target Kind, conv func(Value) (T, bool)) (T, error) {
	var zero T
	v, err := a.Get(i)
	if err != nil {
		return zero, err
	}
	out, ok := conv(v)
	if !ok {
		return zero, &CoercionError{Index: i, Source: v.Kind(), Target: target}
	}
	return out, nil
}

func canIndex[T any](a *Array, i int, conv func(Value) (T, bool)) bool {
	if i < 0 || i >= len(a.values) {
		return false
	}
	_, ok := conv(a.values[i])
	return ok
}

func asArray(v Value) (*Array, bool)   { a, ok := v.(*Array); return a, ok }
func asObject(v Value) (*Object, bool) { o, ok := v.(*Object); return o, ok }
