package frame_test

import (
	"bytes"
	"testing"
	"time"

	skooma "github.com/davidjamesknight/Skooma"
	"github.com/davidjamesknight/Skooma/frame"
)

// TestCol_KindInference verifies the typed constructor maps element types to
// kinds.
func TestCol_KindInference(t *testing.T) {
	cases := []struct {
		col  frame.Column
		want skooma.Kind
	}{
		{frame.Col("a", 1, 2), skooma.KindInt64},
		{frame.Col("a", int8(1)), skooma.KindInt8},
		{frame.Col("a", int32(1)), skooma.KindInt32},
		{frame.Col("a", uint16(1)), skooma.KindUint16},
		{frame.Col("a", uint(1)), skooma.KindUint64},
		{frame.Col("a", float32(1)), skooma.KindFloat32},
		{frame.Col("a", 1.5), skooma.KindFloat64},
		{frame.Col("a", true), skooma.KindBool},
		{frame.Col("a", "x"), skooma.KindString},
		{frame.Col("a", time.Now()), skooma.KindTime},
	}
	for _, tc := range cases {
		if got := tc.col.Kind(); got != tc.want {
			t.Fatalf("expected %v, got %v", tc.want, got)
		}
	}
}

// TestNew_RejectsBadColumns verifies duplicate and empty names fail.
func TestNew_RejectsBadColumns(t *testing.T) {
	if _, err := frame.New(frame.Col("a", 1), frame.Col("a", 2)); err == nil {
		t.Fatalf("expected duplicate column error")
	}
	if _, err := frame.New(frame.Col("", 1)); err == nil {
		t.Fatalf("expected empty name error")
	}
}

// TestMustNew_Panics verifies MustNew mirrors New errors.
func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	frame.MustNew(frame.Col("a", 1), frame.Col("a", 2))
}

// TestFrame_ColumnsAndSet verifies declaration order, replacement, and
// appending.
func TestFrame_ColumnsAndSet(t *testing.T) {
	f := frame.MustNew(
		frame.Col("b", 1, 2),
		frame.Col("a", "x"),
	)
	cols := f.Columns()
	if len(cols) != 2 || cols[0] != "b" || cols[1] != "a" {
		t.Fatalf("expected order [b a], got %v", cols)
	}

	f.Set(frame.Col("b", 7, 8, 9))
	s, ok := f.Column("b")
	if !ok || s.Len() != 3 || s.Value(0) != 7 {
		t.Fatalf("replacement not applied")
	}
	if got := f.Columns(); len(got) != 2 {
		t.Fatalf("replacement must not duplicate the column: %v", got)
	}

	f.Set(frame.Col("c", true))
	if got := f.Columns(); len(got) != 3 || got[2] != "c" {
		t.Fatalf("appended column must come last: %v", got)
	}
	if f.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.NumRows())
	}
}

// TestAnyCol_NullsAndMixed verifies explicit kinds and null members.
func TestAnyCol_NullsAndMixed(t *testing.T) {
	f := frame.MustNew(frame.AnyCol("nums", skooma.KindInt64, int64(0), nil, int64(2)))
	s, _ := f.Column("nums")
	if s.Kind() != skooma.KindInt64 {
		t.Fatalf("expected declared kind to stick, got %v", s.Kind())
	}
	if s.Value(1) != nil {
		t.Fatalf("expected null at index 1")
	}

	m := frame.AnyCol("mix", skooma.KindMixed, "a", int64(1))
	if m.Kind() != skooma.KindMixed {
		t.Fatalf("expected mixed kind")
	}
}

// TestFrame_ValidateEndToEnd drives the canonical nums example through a
// real frame, including column reassignment.
func TestFrame_ValidateEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	s := skooma.New().
		Col("nums", skooma.Int).Check(skooma.Rule(func(x int) bool { return x < 100 })).
		Output(&buf).
		MustBuild()

	f := frame.MustNew(frame.Col("nums", 0, 1, 2, 3, 4))
	if !s.Validate(f) {
		t.Fatalf("expected pass, got:\n%s", buf.String())
	}

	f.Set(frame.Col("nums", 99, 100, 101, 102, 103))
	if s.Validate(f) {
		t.Fatalf("expected failure")
	}
	want := "Invalid value in column 'nums': 100\n" +
		"Invalid value in column 'nums': 101\n" +
		"Invalid value in column 'nums': 102\n" +
		"Invalid value in column 'nums': 103\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
