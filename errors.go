package skooma

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch   = "type_mismatch"
	CodePredicateFalse = "predicate_false"
	CodePredicateError = "predicate_error"
	CodeUnknownColumn  = "unknown_column"
	CodeMissingColumn  = "missing_column"
	// Schema construction errors (abort at Build; never part of a Report).
	CodeDuplicateColumn = "duplicate_column"
	CodeUnknownType     = "unknown_type"
	CodeNoColumns       = "no_columns"
)

// Issue represents a single validation entry.
type Issue struct {
	Column  string // Column name; empty for schema-level construction issues.
	Value   any    // Offending distinct value; nil for coverage entries.
	Code    string // One of the codes listed above.
	Message string // Failure description; empty when a predicate simply returned false.
	Cause   error  // Optional: captured predicate evaluation error.
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. predicate_false in column 'nums'
		if it.Column != "" {
			fmt.Fprintf(b, "%s in column '%s'", it.Code, it.Column)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
