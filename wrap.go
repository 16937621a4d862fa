package skooma

import (
	"errors"
	"fmt"
)

// Sentinel categories for call-boundary failures; match with errors.Is.
var (
	ErrArgumentInvalid = errors.New("skooma: argument failed validation")
	ErrReturnInvalid   = errors.New("skooma: return value failed validation")
)

// Transform is the callable shape accepted by Wrap: positional datasets in,
// one dataset out.
type Transform func(args ...Dataset) Dataset

// BoundaryError reports which phase of a wrapped call failed validation.
type BoundaryError struct {
	Arg  int // failing argument index; -1 for return-value failures
	base error
}

func (e *BoundaryError) Error() string {
	if e.Arg < 0 {
		return e.base.Error()
	}
	return fmt.Sprintf("%s (index %d)", e.base.Error(), e.Arg)
}

// Unwrap exposes the sentinel category.
func (e *BoundaryError) Unwrap() error { return e.base }

// Wrap guards f with per-argument schemas and an optional return schema.
// args pairs positionally with the call's arguments; a nil entry skips that
// argument. Every scheduled argument is validated before the gate decides,
// so the diagnostic trail is complete even when the first argument already
// failed. f runs only when all arguments pass; with a returns schema, the
// result is validated the same way and withheld when it fails.
//
// Progress markers and report lines go to the writer of the schema being
// applied. Failures surface as *BoundaryError wrapping ErrArgumentInvalid or
// ErrReturnInvalid.
func Wrap(f Transform, args []*Schema, returns *Schema) func(...Dataset) (Dataset, error) {
	return func(actual ...Dataset) (Dataset, error) {
		failed := -1
		for i, s := range args {
			if s == nil {
				continue
			}
			fmt.Fprintf(s.out, "Validating argument at index %d...\n", i)
			if i >= len(actual) || actual[i] == nil || !s.Validate(actual[i]) {
				if failed < 0 {
					failed = i
				}
				continue
			}
			fmt.Fprintln(s.out, "Passed!")
		}
		if failed >= 0 {
			return nil, &BoundaryError{Arg: failed, base: ErrArgumentInvalid}
		}
		out := f(actual...)
		if returns != nil {
			fmt.Fprintln(returns.out, "Validating return value...")
			if out == nil || !returns.Validate(out) {
				return nil, &BoundaryError{Arg: -1, base: ErrReturnInvalid}
			}
			fmt.Fprintln(returns.out, "Passed!")
		}
		return out, nil
	}
}
