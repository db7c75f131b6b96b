// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by a *CoercionError when the requested object
	// member does not exist.
	ErrNotFound = errors.New("member not found")

	// ErrNullName is reported by FromGo when it meets a nil map key and
	// strict names are enabled.
	ErrNullName = errors.New("null member name")
)

// An IndexError reports an array index out of range.
type IndexError struct {
	Index int // the offending index
	Len   int // the length of the array
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (n=%d)", e.Index, e.Len)
}

// A NameConflictError reports an attempt to add a member whose name is
// already present in the object.
type NameConflictError struct {
	Name string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("duplicate member name %q", e.Name)
}

// A CoercionError reports that an element or member could not be converted
// to the requested type. The container is not modified.
type CoercionError struct {
	Index  int    // array index, or -1 for an object member
	Name   string // object member name, if Index < 0
	Source Kind   // kind of the value found
	Target Kind   // kind requested
	Err    error  // underlying cause, if any (e.g., ErrNotFound)
}

func (e *CoercionError) Error() string {
	var where string
	if e.Index < 0 {
		where = fmt.Sprintf("member %q", e.Name)
	} else {
		where = fmt.Sprintf("index %d", e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: cannot convert to %v: %v", where, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: cannot convert %v to %v", where, e.Source, e.Target)
}

// Unwrap supports error wrapping.
func (e *CoercionError) Unwrap() error { return e.Err }

// A CircularReferenceError reports that a container is reachable from
// itself, so that the value it belongs to cannot be rendered as text.
type CircularReferenceError struct {
	Value Value // the container found inside itself
	Host  any   // for FromGo, the host value found inside itself
	Depth int   // nesting depth at which the repeat was found
}

func (e *CircularReferenceError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("circular reference: host %T contains itself at depth %d", e.Host, e.Depth)
	}
	return fmt.Sprintf("circular reference: %v contains itself at depth %d", e.Value.Kind(), e.Depth)
}
