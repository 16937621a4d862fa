package skooma

import "fmt"

// Predicate judges a single column value. A predicate may panic on values
// outside its domain; the engine captures the panic as a validation failure
// for that value instead of propagating it.
type Predicate func(v any) bool

// Rule adapts a typed check into a Predicate. A value of the wrong dynamic
// type (a null included) fails the assertion and surfaces as a captured
// evaluation error carrying the conversion message.
func Rule[T any](f func(T) bool) Predicate {
	return func(v any) bool { return f(v.(T)) }
}

// evalPredicate applies p to v, converting a panic into an error result.
func evalPredicate(p Predicate, v any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if e, isErr := r.(error); isErr {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return p(v), nil
}
