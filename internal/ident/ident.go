// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ident defines the rules for bare (unquoted) object member names.
package ident

import (
	"unicode"

	"github.com/creachadair/mds/mapset"
)

// reserved is the set of ECMAScript reserved words, including the literal
// names, that may not be used as bare member names.
var reserved = mapset.New(
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends", "false",
	"finally", "for", "function", "if", "implements", "import", "in",
	"instanceof", "interface", "let", "new", "null", "package", "private",
	"protected", "public", "return", "static", "super", "switch", "this",
	"throw", "true", "try", "typeof", "var", "void", "while", "with", "yield",
)

// IsReserved reports whether s is a reserved word.
func IsReserved(s string) bool { return reserved.Has(s) }

// IsStart reports whether ch may begin a bare name.
func IsStart(ch rune) bool {
	return ch == '_' || ch == '$' || ch > 256 || unicode.IsLetter(ch)
}

// IsPart reports whether ch may follow the first rune of a bare name.
func IsPart(ch rune) bool { return IsStart(ch) || unicode.IsDigit(ch) }

// IsBare reports whether s can be written without quotation marks: it must
// be non-empty, consist only of name runes, not begin with a digit, and not be
// a reserved word.
func IsBare(s string) bool {
	if s == "" || IsReserved(s) {
		return false
	}
	for i, ch := range s {
		if i == 0 && !IsStart(ch) {
			return false
		} else if !IsPart(ch) {
			return false
		}
	}
	return true
}
