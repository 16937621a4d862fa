package skooma

import (
	"fmt"
	"io"
	"strings"
)

// Line renders the issue as its diagnostic output line. The formats are
// stable; hosts routing reports to their own sinks can rely on them.
func (i Issue) Line() string {
	switch i.Code {
	case CodeUnknownColumn:
		return fmt.Sprintf("Column '%s' not found in schema", i.Column)
	case CodeMissingColumn:
		return fmt.Sprintf("Column '%s' not found in dataset", i.Column)
	default:
		if i.Message != "" {
			return fmt.Sprintf("Invalid value in column '%s': %v (%s)", i.Column, i.Value, i.Message)
		}
		return fmt.Sprintf("Invalid value in column '%s': %v", i.Column, i.Value)
	}
}

// Report is the full record of one Check or Validate call. It is produced
// fresh per call and owned by the caller; the engine never retains it.
type Report struct {
	issues Issues
}

func (r *Report) add(it Issue)      { r.issues = AppendIssues(r.issues, it) }
func (r *Report) addAll(iss Issues) { r.issues = append(r.issues, iss...) }

// OK reports whether validation produced no entries of any kind.
func (r *Report) OK() bool { return len(r.issues) == 0 }

// Issues returns every entry in report order: coverage entries first, then
// per-column entries in schema declaration order with values in
// first-occurrence order.
func (r *Report) Issues() Issues { return r.issues }

// Coverage returns only the column-coverage entries.
func (r *Report) Coverage() Issues {
	var out Issues
	for _, it := range r.issues {
		if it.Code == CodeUnknownColumn || it.Code == CodeMissingColumn {
			out = AppendIssues(out, it)
		}
	}
	return out
}

// ColumnIssues returns the entries recorded for one column.
func (r *Report) ColumnIssues(name string) Issues {
	var out Issues
	for _, it := range r.issues {
		if it.Column == name {
			out = AppendIssues(out, it)
		}
	}
	return out
}

// WriteTo emits one diagnostic line per entry. It implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, it := range r.issues {
		m, err := fmt.Fprintln(w, it.Line())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// String renders the report as its diagnostic lines.
func (r *Report) String() string {
	b := &strings.Builder{}
	_, _ = r.WriteTo(b)
	return b.String()
}
