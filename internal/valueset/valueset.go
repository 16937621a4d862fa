// Package valueset implements an ordered set over arbitrary scalar values,
// preserving first-occurrence order for deterministic reporting.
package valueset

import (
	"fmt"
	"math"
	"reflect"
)

// Set records distinct values in first-occurrence order. All NaN floats
// collapse into one member (NaN != NaN under Go equality, so they need a
// shared key); values of non-comparable dynamic types are keyed by their
// formatted representation.
type Set struct {
	seen  map[any]struct{}
	order []any
}

// New returns an empty set.
func New() *Set {
	return &Set{seen: make(map[any]struct{})}
}

// Add records v, reporting whether it was the first occurrence.
func (s *Set) Add(v any) bool {
	k := keyFor(v)
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Values returns the members in first-occurrence order. The slice is owned
// by the set; callers must not mutate it.
func (s *Set) Values() []any { return s.order }

// Len returns the number of distinct members.
func (s *Set) Len() int { return len(s.order) }

type nanKey struct{}

func keyFor(v any) any {
	switch f := v.(type) {
	case nil:
		return v
	case float64:
		if math.IsNaN(f) {
			return nanKey{}
		}
		return v
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{}
		}
		return v
	}
	if !reflect.TypeOf(v).Comparable() {
		return fmt.Sprintf("%T\x00%v", v, v)
	}
	return v
}
