package frame

import (
	"time"

	skooma "github.com/davidjamesknight/Skooma"
)

// LoadOpt bundles loader options.
type LoadOpt struct {
	// DetectTimes parses columns of RFC 3339 or YYYY-MM-DD strings into
	// time values instead of leaving them textual.
	DetectTimes bool
	// Comma overrides the CSV field delimiter; zero keeps ','.
	Comma rune
}

func firstOpt(opts []LoadOpt) LoadOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return LoadOpt{}
}

// inferColumn decides the kind of a decoded JSON column. Homogeneous
// numeric, boolean, and string columns get their scalar kind (an int/float
// mix is promoted to float64); nulls never vote; everything else stays a
// generic container.
func inferColumn(vals []any, lo LoadOpt) (skooma.Kind, []any) {
	var hasInt, hasFloat, hasString, hasBool, hasOther bool
	nonNull := 0
	for _, v := range vals {
		switch v.(type) {
		case nil:
			continue
		case int64:
			hasInt = true
		case float64:
			hasFloat = true
		case string:
			hasString = true
		case bool:
			hasBool = true
		default:
			hasOther = true
		}
		nonNull++
	}
	switch {
	case nonNull == 0:
		return skooma.KindMixed, vals
	case hasOther,
		hasString && (hasInt || hasFloat || hasBool),
		hasBool && (hasInt || hasFloat):
		return skooma.KindMixed, vals
	case hasString:
		if lo.DetectTimes {
			if times, ok := asTimes(vals); ok {
				return skooma.KindTime, times
			}
		}
		return skooma.KindString, vals
	case hasBool:
		return skooma.KindBool, vals
	case hasFloat:
		if hasInt {
			vals = promoteToFloat(vals)
		}
		return skooma.KindFloat64, vals
	default:
		return skooma.KindInt64, vals
	}
}

func promoteToFloat(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		if n, ok := v.(int64); ok {
			out[i] = float64(n)
		} else {
			out[i] = v
		}
	}
	return out
}

// asTimes converts an all-string column into time values when every
// non-null entry parses.
func asTimes(vals []any) ([]any, bool) {
	out := make([]any, len(vals))
	seen := false
	for i, v := range vals {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		ts, ok := parseTime(s)
		if !ok {
			return nil, false
		}
		out[i] = ts
		seen = true
	}
	return out, seen
}

func parseTime(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
