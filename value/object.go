// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"iter"
	"slices"
)

// An Object is a collection of uniquely-named members. Members are kept in
// the order they were first added, which determines the order in which they
// are rendered; the order is not significant for equality. A zero Object is
// empty and ready for use.
type Object struct {
	members []*Member
	index   map[string]int // key → offset in members
}

// NewObject constructs a new empty object.
func NewObject() *Object { return new(Object) }

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}
func (*Object) container() {}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// IsEmpty reports whether o has no members.
func (o *Object) IsEmpty() bool { return len(o.members) == 0 }

// Clear removes all the members of o.
func (o *Object) Clear() {
	clear(o.members)
	o.members = o.members[:0]
	clear(o.index)
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.members)) }

// Has reports whether o has a member with the given name.
func (o *Object) Has(name string) bool { _, ok := o.index[name]; return ok }

// Get returns the value of the member with the given name, and reports
// whether it was found.
func (o *Object) Get(name string) (Value, bool) {
	if i, ok := o.index[name]; ok {
		return o.members[i].Value, true
	}
	return nil, false
}

// Add adds a new member with the given name and value. It reports a
// *NameConflictError if o already has a member with that name, in which case
// o is not modified.
func (o *Object) Add(name string, v Value) error {
	if o.Has(name) {
		return &NameConflictError{Name: name}
	}
	o.insert(name, v)
	return nil
}

// Set sets the value of the member with the given name, adding it if it does
// not already exist. An existing member keeps its position.
func (o *Object) Set(name string, v Value) {
	if i, ok := o.index[name]; ok {
		o.members[i].Value = norm(v)
		return
	}
	o.insert(name, v)
}

func (o *Object) insert(name string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, &Member{Key: name, Value: norm(v)})
}

// Remove removes the member with the given name, returning its value and
// reporting whether it was present.
func (o *Object) Remove(name string) (Value, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	old := o.members[i].Value
	o.members = slices.Delete(o.members, i, i+1)
	delete(o.index, name)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].Key] = j
	}
	return old, true
}

// Keys returns the names of the members of o, in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// All is a range function over the names and values of the members of o.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Bool returns the named member converted to a bool by the rules of ToBool.
func (o *Object) Bool(name string) (bool, error) { return getName(o, name, KindBool, ToBool) }

// CanBool reports whether Bool would succeed for name.
func (o *Object) CanBool(name string) bool { return canName(o, name, ToBool) }

// Int returns the named member converted to an int64 by the rules of ToInt.
func (o *Object) Int(name string) (int64, error) { return getName(o, name, KindInt, ToInt) }

// CanInt reports whether Int would succeed for name.
func (o *Object) CanInt(name string) bool { return canName(o, name, ToInt) }

// Float returns the named member converted to a float64 by the rules of
// ToFloat.
func (o *Object) Float(name string) (float64, error) { return getName(o, name, KindFloat, ToFloat) }

// CanFloat reports whether Float would succeed for name.
func (o *Object) CanFloat(name string) bool { return canName(o, name, ToFloat) }

// Text returns the named member converted to a string by the rules of ToText.
func (o *Object) Text(name string) (string, error) { return getName(o, name, KindString, ToText) }

// CanText reports whether Text would succeed for name.
func (o *Object) CanText(name string) bool { return canName(o, name, ToText) }

// Array returns the named member if it is an array.
func (o *Object) Array(name string) (*Array, error) { return getName(o, name, KindArray, asArray) }

// CanArray reports whether Array would succeed for name.
func (o *Object) CanArray(name string) bool { return canName(o, name, asArray) }

// Object returns the named member if it is an object.
func (o *Object) Object(name string) (*Object, error) { return getName(o, name, KindObject, asObject) }

// CanObject reports whether Object would succeed for name.
func (o *Object) CanObject(name string) bool { return canName(o, name, asObject) }

// getName fetches and converts the named member of o. A missing member is
// reported as a *CoercionError wrapping ErrNotFound.
func getName[T any](o *Object, name string, target Kind, conv func(Value) (T, bool)) (T, error) {
	var zero T
	v, ok := o.Get(name)
	if !ok {
		return zero, &CoercionError{Index: -1, Name: name, Target: target, Err: ErrNotFound}
	}
	out, ok := conv(v)
	if !ok {
		return zero, &CoercionError{Index: -1, Name: name, Source: v.Kind(), Target: target}
	}
	return out, nil
}

func canName[T any](o *Object, name string, conv func(Value) (T, bool)) bool {
	v, ok := o.Get(name)
	if !ok {
		return false
	}
	_, ok = conv(v)
	return ok
}
