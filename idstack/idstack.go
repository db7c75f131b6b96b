// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package idstack implements a LIFO stack whose membership test compares
// elements only by identity.
//
// A Stack is meant for detecting that a node of a graph is its own ancestor
// during a depth-first walk: push each node on entry, pop it on exit, and
// check Contains before descending. The element type should be a pointer, an
// address, or an interface whose dynamic types are all pointers, so that ==
// compares identity and never inspects the contents of the node. In
// particular, a Stack never calls a structural Equal or hash method, which on
// a cyclic graph could itself fail to terminate.
package idstack

// A Stack is an array-backed LIFO of elements compared by identity.
// A zero value is ready for use.
type Stack[T comparable] struct {
	elts []T
}

// New constructs an empty stack with room for n elements before it must grow.
func New[T comparable](n int) *Stack[T] { return &Stack[T]{elts: make([]T, 0, n)} }

// Push adds v to the top of s.
func (s *Stack[T]) Push(v T) { s.elts = append(s.elts, v) }

// Pop removes and returns the top element of s, and reports whether there was
// one. Popping an empty stack does nothing.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.elts)
	if n == 0 {
		return zero, false
	}
	top := s.elts[n-1]
	s.elts[n-1] = zero // release the reference
	s.elts = s.elts[:n-1]
	return top, true
}

// Peek returns the top element of s without removing it, and reports whether
// s is non-empty.
func (s *Stack[T]) Peek() (T, bool) {
	if n := len(s.elts); n > 0 {
		return s.elts[n-1], true
	}
	var zero T
	return zero, false
}

// Contains reports whether v is identical to any element of s.
func (s *Stack[T]) Contains(v T) bool {
	for i := len(s.elts) - 1; i >= 0; i-- {
		if s.elts[i] == v {
			return true
		}
	}
	return false
}

// Len reports the number of elements in s.
func (s *Stack[T]) Len() int { return len(s.elts) }

// IsEmpty reports whether s has no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.elts) == 0 }
