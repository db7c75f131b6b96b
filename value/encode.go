// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"io"
	"math"
	"strconv"

	"github.com/creachadair/jsonval/idstack"
	"github.com/creachadair/jsonval/internal/escape"
	"github.com/creachadair/jsonval/internal/ident"
	"github.com/creachadair/mds/mapset"

	"go4.org/mem"
)

// A container is a Value that can hold other values: *Array or *Object.
// Comparing two containers with == compares their addresses.
type container interface {
	Value
	container()
}

// An Encoder carries the settings for rendering values as JSON text.
// A zero value is ready for use and quotes only the names that need it.
type Encoder struct {
	// QuoteNames, if true, renders every object member name as a quoted
	// string. Otherwise, a name is rendered bare if it is a valid identifier
	// and not a reserved word, and quoted if not. A name that begins with a
	// digit, such as "1a", is always quoted, since the parser would read a
	// bare digit as the start of a number.
	QuoteNames bool
}

// ToJSON renders v as compact JSON text. If quoteNames is true, all object
// member names are quoted; otherwise names are quoted only where necessary.
func ToJSON(v Value, quoteNames bool) (string, error) {
	return Encoder{QuoteNames: quoteNames}.EncodeToString(v)
}

// Encode renders v as compact JSON text to w. If v contains a cycle, Encode
// reports a *CircularReferenceError and writes nothing.
func (e Encoder) Encode(w io.Writer, v Value) error {
	buf, err := e.Append(nil, v)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// EncodeToString renders v as compact JSON text. If v contains a cycle,
// EncodeToString reports a *CircularReferenceError.
func (e Encoder) EncodeToString(v Value) (string, error) {
	buf, err := e.Append(nil, v)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Append appends the JSON text of v to buf and returns the extended slice.
// If v contains a cycle, Append reports a *CircularReferenceError and returns
// buf unmodified.
func (e Encoder) Append(buf []byte, v Value) ([]byte, error) {
	if err := CheckCycles(v); err != nil {
		return buf, err
	}
	return e.appendValue(buf, v), nil
}

// CheckCycles reports a *CircularReferenceError if any array or object within
// v contains itself, directly or through other containers. Containers shared
// by several parents without forming a cycle are fine.
func CheckCycles(v Value) error {
	c := &cycleChecker{done: mapset.New[container]()}
	return c.check(v)
}

type cycleChecker struct {
	path idstack.Stack[container] // containers on the path from the root
	done mapset.Set[container]    // containers known to be acyclic
}

func (c *cycleChecker) check(v Value) error {
	ct, ok := v.(container)
	if !ok || c.done.Has(ct) {
		return nil
	}
	if c.path.Contains(ct) {
		return &CircularReferenceError{Value: ct, Depth: c.path.Len()}
	}
	c.path.Push(ct)
	switch t := ct.(type) {
	case *Array:
		for _, elt := range t.values {
			if err := c.check(elt); err != nil {
				return err
			}
		}
	case *Object:
		for _, m := range t.members {
			if err := c.check(m.Value); err != nil {
				return err
			}
		}
	}
	c.path.Pop()
	c.done.Add(ct)
	return nil
}

// appendValue appends the text of v to buf.
// Precondition: v is acyclic.
func (e Encoder) appendValue(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case nil, Null:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Int:
		return strconv.AppendInt(buf, int64(t), 10)
	case Float:
		return appendFloat(buf, float64(t))
	case String:
		return appendQuoted(buf, string(t))
	case *Array:
		buf = append(buf, '[')
		for i, elt := range t.values {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = e.appendValue(buf, elt)
		}
		return append(buf, ']')
	case *Object:
		buf = append(buf, '{')
		for i, m := range t.members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = e.appendName(buf, m.Key)
			buf = append(buf, ':')
			buf = e.appendValue(buf, m.Value)
		}
		return append(buf, '}')
	default:
		panic("unknown value type")
	}
}

func (e Encoder) appendName(buf []byte, name string) []byte {
	if !e.QuoteNames && ident.IsBare(name) {
		return append(buf, name...)
	}
	return appendQuoted(buf, name)
}

// appendFloat appends the JSON text of f to buf. Non-finite values are
// rendered as quoted strings.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return appendQuoted(buf, FormatFloat(f))
	}
	return appendFiniteFloat(buf, f)
}

// appendQuoted appends s to buf as a double-quoted, escaped string.
func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	buf = escape.AppendQuote(buf, mem.S(s))
	return append(buf, '"')
}
