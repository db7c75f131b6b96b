// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ident_test

import (
	"testing"

	"github.com/creachadair/jsonval/internal/ident"
)

func TestIsBare(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"x", true},
		{"_private", true},
		{"$ref", true},
		{"camelCase2", true},
		{"é", true},
		{"世界", true},
		{"2fast", false},
		{"a b", false},
		{"a-b", false},
		{"a.b", false},
		{"class", false},
		{"true", false},
		{"null", false},
		{"Class", true},
		{"classy", true},
	}
	for _, tc := range tests {
		if got := ident.IsBare(tc.input); got != tc.want {
			t.Errorf("IsBare(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestRunes(t *testing.T) {
	for _, ch := range "aZ_$ā世" {
		if !ident.IsStart(ch) {
			t.Errorf("IsStart(%q): got false, want true", ch)
		}
	}
	for _, ch := range "09-+. \t'\"" {
		if ident.IsStart(ch) {
			t.Errorf("IsStart(%q): got true, want false", ch)
		}
	}
	for _, ch := range "09a_" {
		if !ident.IsPart(ch) {
			t.Errorf("IsPart(%q): got false, want true", ch)
		}
	}
}
