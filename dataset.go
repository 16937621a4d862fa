package skooma

// Dataset is the read boundary over a tabular value: an ordered sequence of
// named columns. The engine never mutates a Dataset; any value satisfying
// this interface can be validated (see the frame package for a concrete
// in-memory implementation).
type Dataset interface {
	// Columns returns the column names in declaration order.
	Columns() []string
	// Column returns the named series, or ok=false when absent.
	Column(name string) (Series, bool)
}

// Series is one column: a declared element kind plus positional access to
// its values. Value returns nil for missing entries; nulls are legal in any
// kind and reach predicates unfiltered.
type Series interface {
	Kind() Kind
	Len() int
	Value(i int) any
}
