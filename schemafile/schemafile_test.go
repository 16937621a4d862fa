package schemafile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	skooma "github.com/davidjamesknight/Skooma"
	"github.com/davidjamesknight/Skooma/schemafile"
)

const sampleDoc = `
strict: false
columns:
  - name: id
    type: int
    rule: positive
  - name: score
    type: float
    min: 0
    max: 1
  - name: label
    type: string
    required: true
    enum: [low, high]
`

// TestParse_CompilesConstraints compiles a document and runs it against a
// dataset that trips every constraint once.
func TestParse_CompilesConstraints(t *testing.T) {
	s, err := schemafile.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Strict() {
		t.Fatalf("strict: false must compile permissive")
	}
	cols := s.Columns()
	if len(cols) != 3 || cols[0] != "id" || cols[1] != "score" || cols[2] != "label" {
		t.Fatalf("unexpected columns: %v", cols)
	}

	ds := dataset{
		names: []string{"id", "score", "label"},
		cols: map[string]series{
			"id":    {kind: skooma.KindInt64, vals: []any{int64(1), int64(-3)}},
			"score": {kind: skooma.KindFloat64, vals: []any{0.5, 2.0}},
			"label": {kind: skooma.KindString, vals: []any{"low", "nope", nil}},
		},
	}
	r := s.Check(ds)
	if r.OK() {
		t.Fatalf("expected failures")
	}
	counts := map[string]int{}
	for _, it := range r.Issues() {
		counts[it.Column]++
	}
	if counts["id"] != 1 || counts["score"] != 1 || counts["label"] != 2 {
		t.Fatalf("unexpected issue spread: %v", counts)
	}
}

// TestParse_StrictDefault leaves coverage checking on when the flag is
// absent.
func TestParse_StrictDefault(t *testing.T) {
	s, err := schemafile.Parse([]byte("columns:\n  - name: a\n    type: int\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Strict() {
		t.Fatalf("expected strict by default")
	}
}

// TestParse_PatternConstraint compiles a regexp constraint.
func TestParse_PatternConstraint(t *testing.T) {
	doc := "strict: false\ncolumns:\n  - name: code\n    type: string\n    pattern: \"^[a-z]+$\"\n"
	s, err := schemafile.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ds := dataset{
		names: []string{"code"},
		cols: map[string]series{
			"code": {kind: skooma.KindString, vals: []any{"ok", "Bad"}},
		},
	}
	r := s.Check(ds)
	if len(r.Issues()) != 1 || r.Issues()[0].Value != "Bad" {
		t.Fatalf("unexpected issues: %v", r.Issues())
	}
}

// TestParse_Errors rejects bad documents with descriptive messages.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		doc  string
		want string
	}{
		{"columns:\n  - name: a\n    type: integer\n", `unknown type "integer"`},
		{"columns:\n  - name: a\n    type: int\n    rule: flying_unicorn\n", `unknown rule "flying_unicorn"`},
		{"columns:\n  - name: a\n    type: string\n    pattern: \"[\"\n", "bad pattern"},
		{"columns: []\n", "no_columns"},
		{"columns: [", "parse"},
	}
	for _, tc := range cases {
		_, err := schemafile.Parse([]byte(tc.doc))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("doc %q: expected error containing %q, got %v", tc.doc, tc.want, err)
		}
	}
}

// TestParse_BuilderIssuesSurface keeps construction issues reachable
// through the error chain.
func TestParse_BuilderIssuesSurface(t *testing.T) {
	doc := "columns:\n  - name: a\n    type: int\n  - name: a\n    type: int\n"
	_, err := schemafile.Parse([]byte(doc))
	if err == nil {
		t.Fatalf("expected error")
	}
	iss, ok := skooma.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != skooma.CodeDuplicateColumn {
		t.Fatalf("expected a duplicate_column issue, got %v", err)
	}
}

// TestLoad reads a schema from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := schemafile.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Columns()) != 3 {
		t.Fatalf("unexpected columns: %v", s.Columns())
	}
	if _, err := schemafile.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}

// ---- minimal dataset stubs ----

type series struct {
	kind skooma.Kind
	vals []any
}

func (s series) Kind() skooma.Kind { return s.kind }
func (s series) Len() int          { return len(s.vals) }
func (s series) Value(i int) any   { return s.vals[i] }

type dataset struct {
	names []string
	cols  map[string]series
}

func (d dataset) Columns() []string { return d.names }

func (d dataset) Column(name string) (skooma.Series, bool) {
	s, ok := d.cols[name]
	return s, ok
}
