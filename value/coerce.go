// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The conversions in this file apply only to scalars. Arrays, objects, and
// null never convert to a scalar type, and conversion never modifies its
// input.

var (
	intText   = regexp.MustCompile(`^-?[0-9]+$`)
	floatText = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

// trimText removes leading and trailing spaces and control characters,
// that is, all runes up to and including U+0020. Other Unicode spaces are
// kept.
func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// ToBool converts v to a bool, and reports whether the conversion succeeded.
// A Bool converts to itself. A String converts if, after trimming leading and
// trailing spaces and control characters, it matches "true" or "false"
// without regard to case. No other value converts.
func ToBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case String:
		s := trimText(string(t))
		if strings.EqualFold(s, "true") {
			return true, true
		} else if strings.EqualFold(s, "false") {
			return false, true
		}
	}
	return false, false
}

// ToInt converts v to an int64, and reports whether the conversion succeeded.
// An Int converts to itself. A String converts if, after trimming leading and
// trailing spaces and control characters, it consists of an optional "-"
// followed by decimal digits, and the result fits in an int64. No other value
// converts; in particular, a Float does not. On failure the result is zero.
func ToInt(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int:
		return int64(t), true
	case String:
		s := trimText(string(t))
		if !intText.MatchString(s) {
			return 0, false
		}
		z, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return z, true
	}
	return 0, false
}

// ToFloat converts v to a float64, and reports whether the conversion
// succeeded. A Float converts to itself and an Int is widened. A String
// converts if, after trimming leading and trailing spaces and control
// characters, it is a JSON number: an optional "-", digits, an optional
// fraction, and an optional exponent, with nothing else, and it is within the
// range of a float64. No other value converts. On failure the result is zero.
func ToFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Float:
		return float64(t), true
	case Int:
		return float64(t), true
	case String:
		s := trimText(string(t))
		if !floatText.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// ToText converts v to a string, and reports whether the conversion
// succeeded. A String converts to itself, without quotation. A Bool converts
// to "true" or "false", an Int to its decimal form, and a Float as described
// by FormatFloat. No other value converts.
func ToText(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return string(t), true
	case Bool, Int, Float:
		return t.String(), true
	}
	return "", false
}

// FormatFloat renders f as decimal text. Non-finite values are rendered as
// "NaN", "Infinity", or "-Infinity". Finite values use the shortest
// representation that reads back as the same float64, in exponent form only
// for very large or very small magnitudes. The result always contains a
// decimal point or an exponent, so it does not read back as an integer.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return string(appendFiniteFloat(nil, f))
}

// appendFiniteFloat appends the canonical text of f to buf.
// Precondition: f is finite.
func appendFiniteFloat(buf []byte, f float64) []byte {
	fmt := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, f, fmt, -1, 64)
	if fmt == 'e' {
		// Convert e-09 to e-9, matching the usual JavaScript rendering.
		n := len(buf)
		if n-start >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
		return buf
	}
	if bytes.IndexByte(buf[start:], '.') < 0 {
		buf = append(buf, '.', '0')
	}
	return buf
}
