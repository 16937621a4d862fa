package skooma

// Package skooma provides:
//
// - Declarative schema validation for tabular datasets (Schema, Validate/Check)
// - A stable failure model via Issues (column, value, code, message)
// - Exhaustive reporting: every distinct failing value across every covered
//   column is collected before any verdict is produced
// - Call-boundary validation via Wrap, gating function execution on argument
//   validity
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place dataset construction under frame/, schema documents under
//   schemafile/, predicate helpers under rules/, and the CLI under cmd/skooma.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := skooma.New().
//		Col("nums", skooma.Int).Check(skooma.Rule(func(x int64) bool { return x < 100 })).
//		MustBuild()
//	ok := s.Validate(ds)
//
