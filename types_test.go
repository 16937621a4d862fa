package skooma_test

import (
	"testing"

	skooma "github.com/davidjamesknight/Skooma"
)

// TestParseType_RoundTrip verifies every tag parses back from its name.
func TestParseType_RoundTrip(t *testing.T) {
	for _, typ := range []skooma.Type{skooma.Int, skooma.Float, skooma.Bool, skooma.String, skooma.DateTime} {
		got, ok := skooma.ParseType(typ.String())
		if !ok || got != typ {
			t.Fatalf("round trip failed for %v: got %v ok=%v", typ, got, ok)
		}
	}
	if _, ok := skooma.ParseType("integer"); ok {
		t.Fatalf("aliases are not accepted")
	}
	if _, ok := skooma.ParseType(""); ok {
		t.Fatalf("empty name must not parse")
	}
}

// TestType_StringInvalid covers the zero and out-of-range tags.
func TestType_StringInvalid(t *testing.T) {
	if skooma.Type(0).String() != "invalid" {
		t.Fatalf("zero tag must render invalid")
	}
	if skooma.Type(42).String() != "invalid" {
		t.Fatalf("out-of-range tag must render invalid")
	}
}

// TestKind_Groups verifies the integer/float groupings used by the
// classifier.
func TestKind_Groups(t *testing.T) {
	for _, k := range []skooma.Kind{skooma.KindInt8, skooma.KindInt16, skooma.KindInt32, skooma.KindInt64,
		skooma.KindUint8, skooma.KindUint16, skooma.KindUint32, skooma.KindUint64} {
		if !k.IsInteger() || k.IsFloat() {
			t.Fatalf("%v misclassified", k)
		}
	}
	for _, k := range []skooma.Kind{skooma.KindFloat16, skooma.KindFloat32, skooma.KindFloat64} {
		if !k.IsFloat() || k.IsInteger() {
			t.Fatalf("%v misclassified", k)
		}
	}
	for _, k := range []skooma.Kind{skooma.KindMixed, skooma.KindBool, skooma.KindString, skooma.KindTime} {
		if k.IsFloat() || k.IsInteger() {
			t.Fatalf("%v misclassified", k)
		}
	}
}

// TestKind_Strings spot-checks kind names.
func TestKind_Strings(t *testing.T) {
	cases := map[skooma.Kind]string{
		skooma.KindMixed:   "mixed",
		skooma.KindInt64:   "int64",
		skooma.KindUint8:   "uint8",
		skooma.KindFloat16: "float16",
		skooma.KindTime:    "time",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
