package skooma

// Type declares the expected contents of a column. It is a closed
// enumeration; the zero value is invalid and rejected at Build time.
type Type int

const (
	Int      Type = iota + 1 // signed and unsigned integer columns
	Float                    // floating-point columns
	Bool                     // boolean columns
	String                   // textual columns (see the generic-container rule in accepts)
	DateTime                 // date-and-time columns
)

// String renders the lowercase name used in messages and schema files.
func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case DateTime:
		return "datetime"
	default:
		return "invalid"
	}
}

func (t Type) valid() bool { return t >= Int && t <= DateTime }

// ParseType maps a lowercase type name ("int", "float", "bool", "string",
// "datetime") back to its Type. ok is false for unknown names.
func ParseType(s string) (Type, bool) {
	switch s {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "bool":
		return Bool, true
	case "string":
		return String, true
	case "datetime":
		return DateTime, true
	default:
		return 0, false
	}
}

// Kind describes the declared element kind of a column, as reported by the
// dataset. KindMixed marks a generic container whose elements carry their
// own dynamic types.
type Kind int

const (
	KindMixed Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
)

// String renders the lowercase kind name ("mixed", "int64", "time", ...).
func (k Kind) String() string {
	switch k {
	case KindMixed:
		return "mixed"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat16:
		return "float16"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "mixed"
	}
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool { return k >= KindInt8 && k <= KindUint64 }

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k >= KindFloat16 && k <= KindFloat64 }
