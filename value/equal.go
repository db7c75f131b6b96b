// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"hash/maphash"
	"math"

	"github.com/creachadair/jsonval/idstack"
)

// Equal reports whether a and b are structurally equal. A nil Value is
// treated as Null.
//
// Values of different kinds are never equal; in particular Int(1) and
// Float(1) differ. Floats are equal if they have the same bit pattern, except
// that all NaNs are equal to each other; 0.0 and -0.0 differ. Arrays are equal if they have
// equal elements in the same order. Objects are equal if they have the same
// names with equal values, regardless of order.
//
// A container is always equal to itself. Otherwise, if comparison reaches a
// container that is already being compared further up the same path, the
// values are cyclic and Equal reports false rather than recurring forever.
func Equal(a, b Value) bool {
	var c comparer
	return c.equal(norm(a), norm(b))
}

type comparer struct {
	lhs, rhs idstack.Stack[container]
}

func (c *comparer) equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && floatBits(x) == floatBits(y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Array:
		y, ok := b.(*Array)
		if !ok || x.Len() != y.Len() {
			return false
		} else if x == y {
			return true
		} else if !c.enter(x, y) {
			return false
		}
		defer c.leave()
		for i, elt := range x.values {
			if !c.equal(elt, y.values[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		} else if x == y {
			return true
		} else if !c.enter(x, y) {
			return false
		}
		defer c.leave()
		for _, m := range x.members {
			yv, ok := y.Get(m.Key)
			if !ok || !c.equal(m.Value, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// enter pushes x and y on the comparison path, and reports false without
// pushing if either is already on it.
func (c *comparer) enter(x, y container) bool {
	if c.lhs.Contains(x) || c.rhs.Contains(y) {
		return false
	}
	c.lhs.Push(x)
	c.rhs.Push(y)
	return true
}

func (c *comparer) leave() { c.lhs.Pop(); c.rhs.Pop() }

var seed = maphash.MakeSeed()

// Seeds for each kind, so that values of different kinds that share a bit
// pattern hash differently.
const (
	nullHash   = 0x9e3779b97f4a7c15
	trueHash   = 1231
	falseHash  = 1237
	intSalt    = 0xbf58476d1ce4e5b9
	floatSalt  = 0x94d049bb133111eb
	arraySalt  = 0x2545f4914f6cdd1d
	objectSalt = 0x5851f42d4c957f2d
)

// Hash returns a hash of v consistent with Equal: if Equal(a, b), then
// Hash(a) == Hash(b). Hashes are stable within a process but not across
// processes. A nil Value hashes as Null.
//
// The hash of an array depends on the order of its elements, while the hash
// of an object does not depend on the order of its members.
//
// If v contains a cycle, only the top level of v is hashed, and containers
// directly inside it contribute only their kind and length. Two cyclic values
// are equal only if they unfold to the same infinite tree, so they agree on
// that prefix.
func Hash(v Value) uint64 {
	v = norm(v)
	h := hasher{limit: -1}
	if CheckCycles(v) != nil {
		h.limit = 1
	}
	return h.hash(v, 0)
}

type hasher struct {
	limit int // depth at which containers are hashed shallowly, or -1
}

func (h hasher) hash(v Value, depth int) uint64 {
	switch t := v.(type) {
	case Null:
		return nullHash
	case Bool:
		if t {
			return trueHash
		}
		return falseHash
	case Int:
		return mix(uint64(t) ^ intSalt)
	case Float:
		return mix(floatBits(t) ^ floatSalt)
	case String:
		return maphash.String(seed, string(t))
	case *Array:
		acc := uint64(arraySalt)
		if depth == h.limit {
			return mix(acc + uint64(t.Len()))
		}
		for i, elt := range t.values {
			acc = 31*acc + (mix(uint64(i)+1) ^ h.hash(elt, depth+1))
		}
		return acc
	case *Object:
		if depth == h.limit {
			return mix(objectSalt + uint64(t.Len()))
		}
		var sum uint64
		for _, m := range t.members {
			sum += maphash.String(seed, m.Key) ^ mix(h.hash(m.Value, depth+1))
		}
		return sum ^ objectSalt
	default:
		return 0
	}
}

// floatBits returns the bit pattern of f, with every NaN mapped to the same
// pattern.
func floatBits(f Float) uint64 {
	if math.IsNaN(float64(f)) {
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(float64(f))
}

// mix is the finalizer of the SplitMix64 generator.
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
