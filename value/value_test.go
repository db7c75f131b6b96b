// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jsonval/value"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input value.Value
		kind  value.Kind
		str   string
		size  int
	}{
		{nil, value.KindNull, "null", 0},
		{value.Null{}, value.KindNull, "null", 0},
		{value.Bool(true), value.KindBool, "boolean", 1},
		{value.Int(-5), value.KindInt, "integer", 1},
		{value.Float(2.5), value.KindFloat, "float", 1},
		{value.String(""), value.KindString, "string", 1},
		{value.NewArray(value.Int(1), value.Int(2)), value.KindArray, "array", 2},
		{value.ObjectOf(value.Field("a", 1)), value.KindObject, "object", 1},
	}
	for _, tc := range tests {
		if got := value.KindOf(tc.input); got != tc.kind {
			t.Errorf("KindOf(%v): got %v, want %v", tc.input, got, tc.kind)
		}
		if got := tc.kind.String(); got != tc.str {
			t.Errorf("Kind %d: got %q, want %q", tc.kind, got, tc.str)
		}
		if tc.input == nil {
			continue
		}
		if got := tc.input.Len(); got != tc.size {
			t.Errorf("Len(%v): got %d, want %d", tc.input, got, tc.size)
		}
	}
}

func TestToValue(t *testing.T) {
	a := value.NewArray()
	tests := []struct {
		input any
		want  value.Value
	}{
		{nil, value.Null{}},
		{true, value.Bool(true)},
		{17, value.Int(17)},
		{int8(-3), value.Int(-3)},
		{uint32(9), value.Int(9)},
		{float32(0.5), value.Float(0.5)},
		{3.25, value.Float(3.25)},
		{"x", value.String("x")},
		{a, a},
	}
	for _, tc := range tests {
		if got := value.ToValue(tc.input); !value.Equal(got, tc.want) {
			t.Errorf("ToValue(%v): got %v, want %v", tc.input, got, tc.want)
		}
	}

	mtest.MustPanic(t, func() { value.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { value.ToValue(func() {}) })
	mtest.MustPanic(t, func() { value.ArrayOf(1, 2, make(chan struct{})) })
}

func TestArray(t *testing.T) {
	a := value.ArrayOf(1, "two", 3.0)
	if a.IsEmpty() || a.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", a.Len())
	}

	// Index checks.
	for _, i := range []int{-1, 3, 10} {
		_, err := a.Get(i)
		var ie *value.IndexError
		if !errors.As(err, &ie) {
			t.Errorf("Get(%d): got %v, want *IndexError", i, err)
		} else if ie.Index != i || ie.Len != 3 {
			t.Errorf("Get(%d): got %+v", i, ie)
		}
		if err := a.Set(i, value.Null{}); err == nil {
			t.Errorf("Set(%d): got nil, want error", i)
		}
		if _, err := a.Remove(i); err == nil {
			t.Errorf("Remove(%d): got nil, want error", i)
		}
	}
	if err := a.Insert(4, value.Null{}); err == nil {
		t.Error("Insert(4): got nil, want error")
	}

	// Mutations.
	if err := a.Insert(3, value.Bool(false)); err != nil { // at end
		t.Errorf("Insert(3): unexpected error: %v", err)
	}
	if err := a.Insert(0, nil); err != nil {
		t.Errorf("Insert(0): unexpected error: %v", err)
	}
	if err := a.Set(2, value.String("deux")); err != nil {
		t.Errorf("Set(2): unexpected error: %v", err)
	}
	a.Append(nil, value.Int(5))
	old, err := a.Remove(1)
	if err != nil {
		t.Errorf("Remove(1): unexpected error: %v", err)
	} else if old != value.Int(1) {
		t.Errorf("Remove(1): got %v, want 1", old)
	}

	want := []value.Value{
		value.Null{}, value.String("deux"), value.Float(3), value.Bool(false), value.Null{}, value.Int(5),
	}
	if diff := cmp.Diff(want, a.Values()); diff != "" {
		t.Errorf("Values (-want, +got):\n%s", diff)
	}
	var n int
	for i, v := range a.All() {
		if v != want[i] {
			t.Errorf("All: at %d got %v, want %v", i, v, want[i])
		}
		n++
	}
	if n != len(want) {
		t.Errorf("All: got %d elements, want %d", n, len(want))
	}

	a.Clear()
	if !a.IsEmpty() || a.Len() != 0 {
		t.Errorf("After Clear: got len %d, want 0", a.Len())
	}
}

func TestObject(t *testing.T) {
	o := value.NewObject()
	if !o.IsEmpty() {
		t.Fatal("New object is not empty")
	}
	if err := o.Add("a", value.Int(1)); err != nil {
		t.Fatalf("Add a: unexpected error: %v", err)
	}
	if err := o.Add("b", nil); err != nil {
		t.Fatalf("Add b: unexpected error: %v", err)
	}

	err := o.Add("a", value.Int(2))
	var nc *value.NameConflictError
	if !errors.As(err, &nc) {
		t.Errorf("Add a again: got %v, want *NameConflictError", err)
	} else if nc.Name != "a" {
		t.Errorf("Conflict name: got %q, want a", nc.Name)
	}
	if v, _ := o.Get("a"); v != value.Int(1) {
		t.Errorf("Get a after conflict: got %v, want 1", v)
	}

	// Set replaces in place, or adds at the end.
	o.Set("a", value.String("one"))
	o.Set("c", value.Bool(true))
	if diff := cmp.Diff([]string{"a", "b", "c"}, o.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if v, ok := o.Get("b"); !ok || v != (value.Null{}) {
		t.Errorf("Get b: got %v, %v; want null, true", v, ok)
	}
	if v, ok := o.Get("nonesuch"); ok || v != nil {
		t.Errorf("Get nonesuch: got %v, %v; want nil, false", v, ok)
	}

	if v, ok := o.Remove("a"); !ok || v != value.String("one") {
		t.Errorf("Remove a: got %v, %v", v, ok)
	}
	if _, ok := o.Remove("a"); ok {
		t.Error("Remove a again: unexpectedly succeeded")
	}
	if o.Has("a") || !o.Has("c") {
		t.Errorf("Has: got a=%v c=%v, want false, true", o.Has("a"), o.Has("c"))
	}

	// Removal keeps the index consistent for later members.
	o.Set("c", value.Int(3))
	if got, err := o.Int("c"); err != nil || got != 3 {
		t.Errorf("Int c: got %v, %v; want 3", got, err)
	}
	var keys []string
	for k := range o.All() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"b", "c"}, keys); diff != "" {
		t.Errorf("All keys (-want, +got):\n%s", diff)
	}

	o.Clear()
	if o.Len() != 0 || o.Has("b") {
		t.Errorf("After Clear: len %d, has b %v", o.Len(), o.Has("b"))
	}
}

func TestCoerce(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		tests := []struct {
			input value.Value
			want  bool
			ok    bool
		}{
			{value.Bool(true), true, true},
			{value.String("TRue"), true, true},
			{value.String(" true "), true, true},
			{value.String("\tFALSE\n"), false, true},
			{value.String("\x01true\x7f"), false, false},
			{value.String("\x01true\x1b"), true, true},
			{value.String("Not"), false, false},
			{value.String("t"), false, false},
			{value.Int(1), false, false},
			{value.Float(0), false, false},
			{value.Null{}, false, false},
			{value.NewArray(), false, false},
		}
		for _, tc := range tests {
			got, ok := value.ToBool(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ToBool(%#v): got %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		}
	})
	t.Run("Int", func(t *testing.T) {
		tests := []struct {
			input value.Value
			want  int64
			ok    bool
		}{
			{value.Int(-12), -12, true},
			{value.String(" 20 "), 20, true},
			{value.String("-7"), -7, true},
			{value.String("007"), 7, true},
			{value.String(" - 20"), 0, false},
			{value.String("+20L"), 0, false},
			{value.String("+20"), 0, false},
			{value.String("20L"), 0, false},
			{value.String("1.0"), 0, false},
			{value.String("9223372036854775808"), 0, false},
			{value.String("-99999999999999999999"), 0, false},
			{value.String("\x00 20\x1f"), 20, true},
			{value.String("\xc2\xa020"), 0, false}, // U+00A0 is not trimmed
			{value.String(""), 0, false},
			{value.Float(3), 0, false},
			{value.Bool(true), 0, false},
		}
		for _, tc := range tests {
			got, ok := value.ToInt(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ToInt(%#v): got %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		}
	})
	t.Run("Float", func(t *testing.T) {
		tests := []struct {
			input value.Value
			want  float64
			ok    bool
		}{
			{value.Float(1.5), 1.5, true},
			{value.Int(4), 4, true},
			{value.String(" 2.5e3 "), 2500, true},
			{value.String("-0.25"), -0.25, true},
			{value.String("12"), 12, true},
			{value.String("1E-2"), 0.01, true},
			{value.String("1. 5"), 0, false},
			{value.String(".5"), 0, false},
			{value.String("5."), 0, false},
			{value.String("1.5f"), 0, false},
			{value.String("NaN"), 0, false},
			{value.String("Infinity"), 0, false},
			{value.String("1e999"), 0, false},
			{value.String("-1e999"), 0, false},
			{value.String("\r\n2.5\v"), 2.5, true},
			{value.Bool(false), 0, false},
		}
		for _, tc := range tests {
			got, ok := value.ToFloat(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ToFloat(%#v): got %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		}
	})
	t.Run("Text", func(t *testing.T) {
		tests := []struct {
			input value.Value
			want  string
			ok    bool
		}{
			{value.String(`say "hi"`), `say "hi"`, true},
			{value.Bool(false), "false", true},
			{value.Int(-30), "-30", true},
			{value.Float(1.5), "1.5", true},
			{value.Float(2), "2.0", true},
			{value.Float(1e21), "1e+21", true},
			{value.Float(1e-7), "1e-7", true},
			{value.Float(math.NaN()), "NaN", true},
			{value.Float(math.Inf(1)), "Infinity", true},
			{value.Float(math.Inf(-1)), "-Infinity", true},
			{value.Null{}, "", false},
			{value.NewObject(), "", false},
		}
		for _, tc := range tests {
			got, ok := value.ToText(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ToText(%#v): got %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		}
	})
}

func TestAccessors(t *testing.T) {
	inner := value.NewArray()
	obj := value.ObjectOf(
		value.Field("n", " 20 "),
		value.Field("b", "TRue"),
		value.Field("f", 3),
		value.Field("list", inner),
		value.Field("nil", nil),
	)
	arr := value.NewArray(value.String("+20L"), obj, value.Float(0.5))

	if !obj.CanInt("n") || obj.CanInt("b") || obj.CanInt("nonesuch") {
		t.Error("CanInt: wrong answers")
	}
	if got, err := obj.Int("n"); err != nil || got != 20 {
		t.Errorf("Int n: got %v, %v; want 20", got, err)
	}
	if got, err := obj.Bool("b"); err != nil || !got {
		t.Errorf("Bool b: got %v, %v; want true", got, err)
	}
	if got, err := obj.Float("f"); err != nil || got != 3 {
		t.Errorf("Float f: got %v, %v; want 3", got, err)
	}
	if got, err := obj.Text("f"); err != nil || got != "3" {
		t.Errorf("Text f: got %q, %v; want 3", got, err)
	}
	if got, err := obj.Array("list"); err != nil || got != inner {
		t.Errorf("Array list: got %v, %v", got, err)
	}
	if obj.CanObject("list") || obj.CanText("nil") || !obj.CanArray("list") {
		t.Error("Container predicates: wrong answers")
	}

	if got, err := arr.Object(1); err != nil || got != obj {
		t.Errorf("Object 1: got %v, %v", got, err)
	}
	if !arr.CanFloat(2) || arr.CanInt(2) || arr.CanBool(0) || arr.CanText(5) {
		t.Error("Array predicates: wrong answers")
	}

	t.Run("Errors", func(t *testing.T) {
		_, err := arr.Int(0)
		var ce *value.CoercionError
		if !errors.As(err, &ce) {
			t.Fatalf("Int 0: got %v, want *CoercionError", err)
		} else if ce.Index != 0 || ce.Source != value.KindString || ce.Target != value.KindInt {
			t.Errorf("Int 0: got %+v", ce)
		}
		t.Logf("Int 0: %v", err)

		_, err = arr.Bool(9)
		var ie *value.IndexError
		if !errors.As(err, &ie) {
			t.Errorf("Bool 9: got %v, want *IndexError", err)
		}

		_, err = obj.Object("n")
		if !errors.As(err, &ce) {
			t.Fatalf("Object n: got %v, want *CoercionError", err)
		} else if ce.Index != -1 || ce.Name != "n" || ce.Target != value.KindObject {
			t.Errorf("Object n: got %+v", ce)
		}

		_, err = obj.Text("nonesuch")
		if !errors.Is(err, value.ErrNotFound) {
			t.Errorf("Text nonesuch: got %v, want %v", err, value.ErrNotFound)
		}
		t.Logf("Text nonesuch: %v", err)
	})
}
