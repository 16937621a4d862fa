package skooma

import (
	"github.com/davidjamesknight/Skooma/i18n"
	"github.com/davidjamesknight/Skooma/internal/valueset"
)

// validateColumn applies the type gate and then the predicate over the
// distinct values of one column. No early exit: every distinct value is
// always evaluated, so a report carries the complete set of failures.
func validateColumn(spec columnSpec, col Series) Issues {
	var iss Issues
	if !accepts(spec.typ, col) {
		desc := i18n.T(CodeTypeMismatch, map[string]string{
			"want": spec.typ.String(),
			"got":  col.Kind().String(),
		})
		for _, v := range distinctValues(col) {
			iss = AppendIssues(iss, Issue{Column: spec.name, Value: v, Code: CodeTypeMismatch, Message: desc})
		}
		return iss
	}
	if spec.check == nil {
		return nil
	}
	for _, v := range distinctValues(col) {
		ok, err := evalPredicate(spec.check, v)
		switch {
		case err != nil:
			iss = AppendIssues(iss, Issue{Column: spec.name, Value: v, Code: CodePredicateError, Message: err.Error(), Cause: err})
		case !ok:
			iss = AppendIssues(iss, Issue{Column: spec.name, Value: v, Code: CodePredicateFalse})
		}
	}
	return iss
}

// distinctValues returns one representative per group of equal values, in
// first-occurrence order. A value repeated N times is evaluated once and,
// when failing, reported once.
func distinctValues(col Series) []any {
	set := valueset.New()
	for i := 0; i < col.Len(); i++ {
		set.Add(col.Value(i))
	}
	return set.Values()
}
