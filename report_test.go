package skooma_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	skooma "github.com/davidjamesknight/Skooma"
)

// TestIssue_LineFormats verifies the stable diagnostic line scaffolding.
func TestIssue_LineFormats(t *testing.T) {
	cases := []struct {
		issue skooma.Issue
		want  string
	}{
		{
			skooma.Issue{Column: "nums", Value: int64(100), Code: skooma.CodePredicateFalse},
			"Invalid value in column 'nums': 100",
		},
		{
			skooma.Issue{Column: "nums", Value: nil, Code: skooma.CodePredicateError, Message: "comparison failed"},
			"Invalid value in column 'nums': <nil> (comparison failed)",
		},
		{
			skooma.Issue{Column: "a", Value: "x", Code: skooma.CodeTypeMismatch, Message: "expected int column, got string"},
			"Invalid value in column 'a': x (expected int column, got string)",
		},
		{
			skooma.Issue{Column: "C", Code: skooma.CodeUnknownColumn},
			"Column 'C' not found in schema",
		},
		{
			skooma.Issue{Column: "b", Code: skooma.CodeMissingColumn},
			"Column 'b' not found in dataset",
		},
	}
	for _, tc := range cases {
		if got := tc.issue.Line(); got != tc.want {
			t.Fatalf("line mismatch:\n got %q\nwant %q", got, tc.want)
		}
	}
}

// TestReport_AccessorsAndWriteTo exercises the report views over a real
// Check result.
func TestReport_AccessorsAndWriteTo(t *testing.T) {
	s := skooma.New().
		Col("a", skooma.Int).Check(skooma.Rule(func(x int64) bool { return x < 10 })).
		Col("b", skooma.Int).
		Permissive().
		Output(new(bytes.Buffer)).
		MustBuild()

	ds := newDataset().add("a", skooma.KindInt64, ints(5, 50)...)
	r := s.Check(ds)
	if r.OK() {
		t.Fatalf("expected issues")
	}
	if n := len(r.Issues()); n != 2 {
		t.Fatalf("expected 2 issues, got %d", n)
	}
	if n := len(r.Coverage()); n != 1 {
		t.Fatalf("expected 1 coverage issue, got %d", n)
	}
	if n := len(r.ColumnIssues("a")); n != 1 {
		t.Fatalf("expected 1 issue for a, got %d", n)
	}
	if n := len(r.ColumnIssues("zzz")); n != 0 {
		t.Fatalf("expected no issues for unknown column, got %d", n)
	}

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != r.String() {
		t.Fatalf("String and WriteTo disagree")
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "Invalid value in column 'a': 50" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Column 'b' not found in dataset" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

// TestIssues_ErrorSummary verifies the error summary caps at a few entries.
func TestIssues_ErrorSummary(t *testing.T) {
	iss := skooma.Issues{
		{Column: "a", Code: skooma.CodePredicateFalse},
		{Column: "b", Code: skooma.CodeTypeMismatch},
		{Column: "c", Code: skooma.CodePredicateError},
		{Column: "d", Code: skooma.CodeMissingColumn},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty summary")
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected total count in summary, got %q", s)
	}
	if skooma.Issues(nil).Error() != "" {
		t.Fatalf("empty issues must stringify empty")
	}
}

// TestAsIssues verifies extraction through wrapped errors.
func TestAsIssues(t *testing.T) {
	base := skooma.Issues{{Column: "a", Code: skooma.CodeNoColumns}}
	wrapped := errors.Join(errors.New("outer"), base)
	got, ok := skooma.AsIssues(wrapped)
	if !ok || len(got) != 1 {
		t.Fatalf("expected issues through wrap, got %v ok=%v", got, ok)
	}
	if _, ok := skooma.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
	if _, ok := skooma.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not yield issues")
	}
}
