package frame

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	skooma "github.com/davidjamesknight/Skooma"
)

// FromCSV reads header-labelled CSV into a frame. Each column's kind is
// inferred over the whole column: int64, then float64, then bool, then time
// (with DetectTimes), then string. Empty cells become nulls and do not
// participate in inference; a column of only empty cells stays a generic
// container.
func FromCSV(ctx context.Context, r io.Reader, opt ...LoadOpt) (*Frame, error) {
	lo := firstOpt(opt)
	cr := csv.NewReader(r)
	if lo.Comma != 0 {
		cr.Comma = lo.Comma
	}
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("frame: empty CSV input")
		}
		return nil, err
	}
	cells := make([][]string, len(header))
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range header {
			cells[i] = append(cells[i], rec[i])
		}
	}
	cols := make([]Column, 0, len(header))
	for i, name := range header {
		kind, vals := inferText(cells[i], lo)
		cols = append(cols, Column{name: name, kind: kind, vals: vals})
	}
	return New(cols...)
}

func inferText(raw []string, lo LoadOpt) (skooma.Kind, []any) {
	vals := make([]any, len(raw))
	if tryColumn(raw, vals, func(s string) (any, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err == nil
	}) {
		return skooma.KindInt64, vals
	}
	if tryColumn(raw, vals, func(s string) (any, bool) {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}) {
		return skooma.KindFloat64, vals
	}
	if tryColumn(raw, vals, func(s string) (any, bool) {
		b, err := strconv.ParseBool(strings.ToLower(s))
		return b, err == nil
	}) {
		return skooma.KindBool, vals
	}
	if lo.DetectTimes {
		if tryColumn(raw, vals, func(s string) (any, bool) {
			ts, ok := parseTime(s)
			return ts, ok
		}) {
			return skooma.KindTime, vals
		}
	}
	nonEmpty := false
	for i, s := range raw {
		if s == "" {
			vals[i] = nil
			continue
		}
		vals[i] = s
		nonEmpty = true
	}
	if !nonEmpty {
		return skooma.KindMixed, vals
	}
	return skooma.KindString, vals
}

// tryColumn fills vals when every non-empty cell parses; at least one cell
// must vote. Empty cells stay nil.
func tryColumn(raw []string, vals []any, parse func(string) (any, bool)) bool {
	seen := false
	for i, s := range raw {
		if s == "" {
			vals[i] = nil
			continue
		}
		v, ok := parse(s)
		if !ok {
			return false
		}
		vals[i] = v
		seen = true
	}
	return seen
}
