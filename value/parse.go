// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jsonval"
)

// Parse parses and returns a single value from r. The input must contain
// exactly one value, optionally surrounded by whitespace. In case of a syntax
// error, the error has concrete type *jsonval.SyntaxError and no partial
// value is returned.
//
// If an object contains the same name more than once, the last value for that
// name wins, in the position where the name first appeared.
func Parse(r io.Reader) (Value, error) {
	return ParseStream(jsonval.NewStream(r))
}

// ParseString parses and returns a single value from s. It is shorthand for
// Parse with a strings.Reader.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// ParseStream parses and returns a single value from st. The caller may
// configure st, for example to allow comments or trailing commas, before
// calling ParseStream.
func ParseStream(st *jsonval.Stream) (Value, error) {
	h := new(parseHandler)
	if err := st.ParseSingle(h); err != nil {
		return nil, err
	} else if h.root == nil || len(h.stk) != 0 {
		return nil, errors.New("incomplete value")
	}
	return h.root, nil
}

// A parseHandler implements the jsonval.Handler interface to construct a
// value from the events of a stream.
type parseHandler struct {
	stk  []container // open arrays and objects, innermost last
	keys []string    // names of open object members, innermost last
	root Value
}

func (h *parseHandler) push(c container) { h.stk = append(h.stk, c) }

func (h *parseHandler) pop() container {
	last := h.stk[len(h.stk)-1]
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

// reduceValue stores a completed value into the innermost open container, or
// records it as the result if there is none.
func (h *parseHandler) reduceValue(v Value) error {
	if len(h.stk) == 0 {
		h.root = v
		return nil
	}
	switch top := h.stk[len(h.stk)-1].(type) {
	case *Array:
		top.Append(v)
	case *Object:
		if len(h.keys) == 0 {
			return errors.New("value without a member name")
		}
		top.Set(h.keys[len(h.keys)-1], v)
	}
	return nil
}

func (h *parseHandler) BeginObject(loc jsonval.Anchor) error {
	h.push(NewObject())
	return nil
}

func (h *parseHandler) EndObject(loc jsonval.Anchor) error { return h.reduceValue(h.pop()) }

func (h *parseHandler) BeginArray(loc jsonval.Anchor) error {
	h.push(new(Array))
	return nil
}

func (h *parseHandler) EndArray(loc jsonval.Anchor) error { return h.reduceValue(h.pop()) }

func (h *parseHandler) BeginMember(loc jsonval.Anchor) error {
	key, err := memberName(loc)
	if err != nil {
		return err
	}
	h.keys = append(h.keys, key)
	return nil
}

func (h *parseHandler) EndMember(loc jsonval.Anchor) error {
	h.keys = h.keys[:len(h.keys)-1]
	return nil
}

func (h *parseHandler) Value(loc jsonval.Anchor) error {
	v, err := anchorValue(loc)
	if err != nil {
		return err
	}
	return h.reduceValue(v)
}

func (h *parseHandler) EndOfInput(loc jsonval.Anchor) {}

// memberName decodes the name of an object member from its anchor.
func memberName(loc jsonval.Anchor) (string, error) {
	switch loc.Token() {
	case jsonval.String:
		dec, err := jsonval.Unquote(loc.Text())
		if err != nil {
			return "", fmt.Errorf("at %v: invalid name: %w", loc.Location().First, err)
		}
		return string(dec), nil
	case jsonval.Name:
		return string(loc.Text()), nil
	default:
		return "", fmt.Errorf("at %v: unexpected name token %v", loc.Location().First, loc.Token())
	}
}

// anchorValue decodes a scalar value from its anchor. An integer too large
// for an Int is decoded as a Float.
func anchorValue(loc jsonval.Anchor) (Value, error) {
	text := loc.Text()
	switch loc.Token() {
	case jsonval.String:
		dec, err := jsonval.Unquote(text)
		if err != nil {
			return nil, fmt.Errorf("at %v: invalid string: %w", loc.Location().First, err)
		}
		return String(dec), nil
	case jsonval.Integer:
		z, err := strconv.ParseInt(string(text), 10, 64)
		if err == nil {
			return Int(z), nil
		} else if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("at %v: invalid integer: %w", loc.Location().First, err)
		}
		fallthrough
	case jsonval.Number:
		f, err := strconv.ParseFloat(string(text), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("at %v: invalid number: %w", loc.Location().First, err)
		}
		return Float(f), nil
	case jsonval.True:
		return Bool(true), nil
	case jsonval.False:
		return Bool(false), nil
	case jsonval.Null:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("at %v: unknown value %v", loc.Location().First, loc.Token())
	}
}
