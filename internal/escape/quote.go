// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// Both quotation marks, the backslash, and the solidus are escaped, as are
// all control characters. Other runes are copied verbatim.
func Quote(src mem.RO) []byte {
	return AppendQuote(make([]byte, 0, src.Len()), src)
}

// AppendQuote appends the escaped encoding of src to buf and returns the
// extended slice. No enclosing quotation marks are added.
func AppendQuote(buf []byte, src mem.RO) []byte {
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' || r == '\'' || r == '/' {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		// Copy multi-byte sequences as they are, including any invalid bytes.
		buf = mem.Append(buf, src.SliceTo(n))
		src = src.SliceFrom(n)
	}
	return buf
}
