package skooma

import (
	"fmt"
	"io"
)

// Schema is an immutable, reusable set of per-column constraints plus a
// strictness flag. A Schema may be shared across goroutines and wrappers;
// Validate never mutates it.
type Schema struct {
	cols   []columnSpec
	index  map[string]int
	strict bool
	quiet  bool
	out    io.Writer
}

type columnSpec struct {
	name  string
	typ   Type
	check Predicate
}

// Strict reports whether coverage requires exact column-set equality.
func (s *Schema) Strict() bool { return s.strict }

// Columns returns the declared column names in declaration order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.name
	}
	return out
}

// Check validates ds and returns the full report without emitting output.
//
// Coverage runs first. In strict mode a column-set mismatch makes the report
// coverage-only: no value-level work runs for that dataset. In permissive
// mode dataset columns not named by the schema are ignored entirely, while a
// declared column absent from the dataset is recorded and the remaining
// covered columns still get full value validation.
func (s *Schema) Check(ds Dataset) *Report {
	r := &Report{}
	if s.strict {
		for _, name := range ds.Columns() {
			if _, declared := s.index[name]; !declared {
				r.add(Issue{Column: name, Code: CodeUnknownColumn})
			}
		}
		for _, c := range s.cols {
			if _, present := ds.Column(c.name); !present {
				r.add(Issue{Column: c.name, Code: CodeMissingColumn})
			}
		}
		if !r.OK() {
			return r
		}
	}
	for _, c := range s.cols {
		col, present := ds.Column(c.name)
		if !present {
			r.add(Issue{Column: c.name, Code: CodeMissingColumn})
			continue
		}
		r.addAll(validateColumn(c, col))
	}
	return r
}

// Validate checks ds, emits one diagnostic line per report entry to the
// configured writer, and returns the overall verdict: true iff no coverage
// entry and no failing value anywhere.
func (s *Schema) Validate(ds Dataset) bool {
	r := s.Check(ds)
	for _, it := range r.issues {
		if s.quiet && (it.Code == CodeUnknownColumn || it.Code == CodeMissingColumn) {
			continue
		}
		fmt.Fprintln(s.out, it.Line())
	}
	return r.OK()
}
