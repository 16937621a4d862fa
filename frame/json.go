package frame

import (
	"context"
	"fmt"
	"io"

	"github.com/davidjamesknight/Skooma/internal/jsontok"
)

// FromJSON reads a JSON document into a frame using the active driver. Two
// shapes are accepted: an object of columns ({"col": [v, ...], ...}) and an
// array of records ([{"col": v, ...}, ...]). Column order follows the
// document; kinds are inferred per column.
func FromJSON(ctx context.Context, r io.Reader, opt ...LoadOpt) (*Frame, error) {
	return decodeFrame(ctx, getJSONDriver().NewReader(r), firstOpt(opt))
}

// FromJSONBytes is FromJSON over a byte slice.
func FromJSONBytes(ctx context.Context, b []byte, opt ...LoadOpt) (*Frame, error) {
	return decodeFrame(ctx, getJSONDriver().NewBytes(b), firstOpt(opt))
}

func decodeFrame(ctx context.Context, src jsontok.TokenSource, lo LoadOpt) (*Frame, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("frame: empty JSON document")
		}
		return nil, err
	}
	switch tok.Kind {
	case jsontok.KindBeginObject:
		return decodeColumnar(ctx, src, lo)
	case jsontok.KindBeginArray:
		return decodeRecords(ctx, src, lo)
	default:
		return nil, fmt.Errorf("frame: JSON document must be an object of columns or an array of records")
	}
}

// decodeColumnar consumes {"col": [...], ...}, keeping key order.
func decodeColumnar(ctx context.Context, src jsontok.TokenSource, lo LoadOpt) (*Frame, error) {
	var names []string
	raw := map[string][]any{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == jsontok.KindEndObject {
			break
		}
		if tok.Kind != jsontok.KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		name := tok.String
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if vt.Kind != jsontok.KindBeginArray {
			return nil, fmt.Errorf("frame: column %q must be an array", name)
		}
		vals := []any{}
		for {
			et, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if et.Kind == jsontok.KindEndArray {
				break
			}
			v, err := jsontok.DecodeValue(src, et)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		if _, dup := raw[name]; dup {
			return nil, fmt.Errorf("frame: duplicate column %q", name)
		}
		names = append(names, name)
		raw[name] = vals
	}
	return assemble(names, raw, lo)
}

// decodeRecords consumes [{"col": v, ...}, ...]. Column order follows first
// appearance; keys absent from a record become nulls.
func decodeRecords(ctx context.Context, src jsontok.TokenSource, lo LoadOpt) (*Frame, error) {
	var names []string
	raw := map[string][]any{}
	row := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == jsontok.KindEndArray {
			break
		}
		if tok.Kind != jsontok.KindBeginObject {
			return nil, fmt.Errorf("frame: record at index %d must be an object", row)
		}
		seen := map[string]bool{}
		for {
			kt, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if kt.Kind == jsontok.KindEndObject {
				break
			}
			if kt.Kind != jsontok.KindKey {
				return nil, io.ErrUnexpectedEOF
			}
			vt, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			v, err := jsontok.DecodeValue(src, vt)
			if err != nil {
				return nil, err
			}
			name := kt.String
			if seen[name] {
				return nil, fmt.Errorf("frame: record at index %d repeats key %q", row, name)
			}
			if _, known := raw[name]; !known {
				names = append(names, name)
				raw[name] = make([]any, row)
			}
			raw[name] = append(raw[name], v)
			seen[name] = true
		}
		for _, n := range names {
			if !seen[n] {
				raw[n] = append(raw[n], nil)
			}
		}
		row++
	}
	return assemble(names, raw, lo)
}

func assemble(names []string, raw map[string][]any, lo LoadOpt) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		kind, vals := inferColumn(raw[n], lo)
		cols = append(cols, Column{name: n, kind: kind, vals: vals})
	}
	return New(cols...)
}
