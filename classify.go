package skooma

// accepts decides whether a series satisfies the declared type tag. The
// decision is column-level and runs once, before any predicate work. Only
// String inspects individual values, and only for generic containers: a
// mixed column passes when every non-null element is textual, so a column
// mixing numbers and strings is rejected even though its strings would pass
// one by one.
func accepts(t Type, col Series) bool {
	k := col.Kind()
	switch t {
	case Int:
		return k.IsInteger()
	case Float:
		return k.IsFloat()
	case Bool:
		return k == KindBool
	case String:
		if k == KindString {
			return true
		}
		if k != KindMixed {
			return false
		}
		for i := 0; i < col.Len(); i++ {
			v := col.Value(i)
			if v == nil {
				continue
			}
			if _, isStr := v.(string); !isStr {
				return false
			}
		}
		return true
	case DateTime:
		return k == KindTime
	default:
		return false
	}
}
