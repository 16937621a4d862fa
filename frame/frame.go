// Package frame provides a column-oriented in-memory dataset for validation:
// typed constructors, column reassignment, and CSV/JSON loaders with
// whole-column type inference. A *Frame satisfies skooma.Dataset.
package frame

import (
	"fmt"
	"reflect"
	"time"

	skooma "github.com/davidjamesknight/Skooma"
)

// Frame is an ordered collection of named columns.
type Frame struct {
	names []string
	cols  map[string]*column
}

type column struct {
	kind skooma.Kind
	vals []any
}

func (c *column) Kind() skooma.Kind { return c.kind }
func (c *column) Len() int          { return len(c.vals) }
func (c *column) Value(i int) any   { return c.vals[i] }

// Column is a named, typed column prepared for New or Set.
type Column struct {
	name string
	kind skooma.Kind
	vals []any
}

// Name returns the column's name.
func (c Column) Name() string { return c.name }

// Kind returns the column's declared element kind.
func (c Column) Kind() skooma.Kind { return c.kind }

// Scalar constrains the element types Col can infer a kind for.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool | ~string | time.Time
}

// Col builds a column whose kind is inferred from the element type.
func Col[T Scalar](name string, values ...T) Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{name: name, kind: kindOf(reflect.TypeOf((*T)(nil)).Elem()), vals: vals}
}

// AnyCol builds a column with an explicit kind; nil elements mark nulls.
// Use it for nullable columns and generic (KindMixed) containers.
func AnyCol(name string, kind skooma.Kind, values ...any) Column {
	vals := append([]any(nil), values...)
	return Column{name: name, kind: kind, vals: vals}
}

var timeType = reflect.TypeOf(time.Time{})

func kindOf(t reflect.Type) skooma.Kind {
	if t == timeType {
		return skooma.KindTime
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return skooma.KindInt64
	case reflect.Int8:
		return skooma.KindInt8
	case reflect.Int16:
		return skooma.KindInt16
	case reflect.Int32:
		return skooma.KindInt32
	case reflect.Uint, reflect.Uint64:
		return skooma.KindUint64
	case reflect.Uint8:
		return skooma.KindUint8
	case reflect.Uint16:
		return skooma.KindUint16
	case reflect.Uint32:
		return skooma.KindUint32
	case reflect.Float32:
		return skooma.KindFloat32
	case reflect.Float64:
		return skooma.KindFloat64
	case reflect.Bool:
		return skooma.KindBool
	case reflect.String:
		return skooma.KindString
	default:
		return skooma.KindMixed
	}
}

// New assembles a frame, preserving column declaration order. Empty or
// duplicate names are rejected.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{cols: map[string]*column{}}
	for _, c := range cols {
		if c.name == "" {
			return nil, fmt.Errorf("frame: empty column name")
		}
		if _, dup := f.cols[c.name]; dup {
			return nil, fmt.Errorf("frame: duplicate column %q", c.name)
		}
		f.names = append(f.names, c.name)
		f.cols[c.name] = &column{kind: c.kind, vals: c.vals}
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(cols ...Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Set replaces the named column, or appends it when new. This is the frame
// equivalent of reassigning one column of a dataframe.
func (f *Frame) Set(c Column) {
	if _, ok := f.cols[c.name]; !ok {
		f.names = append(f.names, c.name)
	}
	f.cols[c.name] = &column{kind: c.kind, vals: c.vals}
}

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Column returns the named series, or ok=false when absent.
func (f *Frame) Column(name string) (skooma.Series, bool) {
	c, ok := f.cols[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// NumRows returns the length of the longest column.
func (f *Frame) NumRows() int {
	n := 0
	for _, c := range f.cols {
		if len(c.vals) > n {
			n = len(c.vals)
		}
	}
	return n
}
