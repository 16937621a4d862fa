// Package rules provides ready-made column predicates and combinators,
// plus a process-wide registry that resolves rule names from schema files.
package rules

import (
	"reflect"
	"regexp"
	"sync"

	skooma "github.com/davidjamesknight/Skooma"
)

// ---------- combinators ----------

// And requires every predicate to hold. Nil entries are skipped; with no
// effective predicates the result always holds.
func And(ps ...skooma.Predicate) skooma.Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if p == nil {
				continue
			}
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or requires at least one predicate to hold. Nil entries are skipped; with
// no effective predicates the result always holds.
func Or(ps ...skooma.Predicate) skooma.Predicate {
	return func(v any) bool {
		seen := false
		for _, p := range ps {
			if p == nil {
				continue
			}
			seen = true
			if p(v) {
				return true
			}
		}
		return !seen
	}
}

// Not inverts a predicate.
func Not(p skooma.Predicate) skooma.Predicate {
	return func(v any) bool { return !p(v) }
}

// ---------- comparisons ----------

// Lt holds when the value is numerically less than want.
func Lt(want any) skooma.Predicate { return ordered(opLt, want) }

// Le holds when the value is numerically at most want.
func Le(want any) skooma.Predicate { return ordered(opLe, want) }

// Gt holds when the value is numerically greater than want.
func Gt(want any) skooma.Predicate { return ordered(opGt, want) }

// Ge holds when the value is numerically at least want.
func Ge(want any) skooma.Predicate { return ordered(opGe, want) }

// In holds when the value equals one of the allowed values. Numbers compare
// across int and float representations.
func In(allowed ...any) skooma.Predicate {
	return func(v any) bool {
		for _, w := range allowed {
			if equal(v, w) {
				return true
			}
		}
		return false
	}
}

// ---------- value shape ----------

// NotNull rejects nulls, including typed nil pointers and nil containers.
func NotNull() skooma.Predicate {
	return func(v any) bool {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return false
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
			return !rv.IsNil()
		}
		return true
	}
}

// NonEmpty rejects nulls and zero-length strings and containers. Values
// without a length always hold.
func NonEmpty() skooma.Predicate {
	return func(v any) bool {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return false
		}
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			return rv.Len() > 0
		}
		return true
	}
}

// Match holds when the value is a string matching the pattern. It panics if
// the pattern does not compile, mirroring regexp.MustCompile; use
// MatchRegexp with a pre-compiled expression to keep pattern errors as
// errors.
func Match(pattern string) skooma.Predicate {
	return MatchRegexp(regexp.MustCompile(pattern))
}

// MatchRegexp holds when the value is a string matching re.
func MatchRegexp(re *regexp.Regexp) skooma.Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// ---------- named-rule registry ----------

var (
	regMu    sync.RWMutex
	registry = map[string]skooma.Predicate{
		"not_null":     NotNull(),
		"non_empty":    NonEmpty(),
		"positive":     Gt(0),
		"non_negative": Ge(0),
		"negative":     Lt(0),
	}
)

// Register makes a predicate resolvable by name. Registering an existing
// name replaces it; a nil predicate is ignored.
func Register(name string, p skooma.Predicate) {
	if name == "" || p == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = p
}

// Lookup resolves a registered rule name.
func Lookup(name string) (skooma.Predicate, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// ------- numeric coercion helpers -------

type op int

const (
	opLt op = iota
	opLe
	opGt
	opGe
)

func ordered(o op, want any) skooma.Predicate {
	return func(v any) bool { return compareOrdered(v, o, want) }
}

// compareOrdered compares across int, uint, and float representations.
// Non-numeric operands never satisfy an ordering.
func compareOrdered(cur any, o op, want any) bool {
	c := reflect.ValueOf(cur)
	w := reflect.ValueOf(want)
	if isIntLike(c.Kind()) && isIntLike(w.Kind()) {
		a, b := toInt64(c), toInt64(w)
		switch o {
		case opLt:
			return a < b
		case opLe:
			return a <= b
		case opGt:
			return a > b
		case opGe:
			return a >= b
		}
	}
	if !isNumeric(c.Kind()) || !isNumeric(w.Kind()) {
		return false
	}
	a, b := toFloat64(c), toFloat64(w)
	switch o {
	case opLt:
		return a < b
	case opLe:
		return a <= b
	case opGt:
		return a > b
	case opGe:
		return a >= b
	}
	return false
}

func equal(cur, want any) bool {
	c := reflect.ValueOf(cur)
	w := reflect.ValueOf(want)
	if isNumeric(c.Kind()) && isNumeric(w.Kind()) {
		if isIntLike(c.Kind()) && isIntLike(w.Kind()) {
			return toInt64(c) == toInt64(w)
		}
		return toFloat64(c) == toFloat64(w)
	}
	return reflect.DeepEqual(cur, want)
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	return isIntLike(k) || k == reflect.Float32 || k == reflect.Float64
}

func toInt64(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	default:
		return 0
	}
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}
