// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonval

import (
	"errors"

	"github.com/creachadair/jsonval/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 1, len(src)+2)
	buf[0] = '"'
	buf = escape.AppendQuote(buf, mem.S(src))
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value, which may be enclosed in either single
// or double quotation marks.  The quotation marks are removed, and escape
// sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for an incomplete or unknown escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || (src[0] != '"' && src[0] != '\'') || src[len(src)-1] != src[0] {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
