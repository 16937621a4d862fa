// Package gojson provides a frame.JSONDriver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/davidjamesknight/Skooma/frame"
	"github.com/davidjamesknight/Skooma/internal/jsontok"
)

// Driver returns a frame.JSONDriver backed by goccy/go-json. Install it
// with frame.SetJSONDriver(gojson.Driver()).
func Driver() frame.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) jsontok.TokenSource { return NewReader(r) }
func (driverGoJSON) NewBytes(b []byte) jsontok.TokenSource     { return NewBytes(b) }
func (driverGoJSON) Name() string                              { return "go-json" }

// ---- jsontok.TokenSource implementation using the go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type stackFrame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []stackFrame
}

// NewReader wraps an io.Reader into a TokenSource using go-json.
func NewReader(r io.Reader) jsontok.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into a TokenSource using go-json.
func NewBytes(b []byte) jsontok.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (jsontok.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return jsontok.Token{}, io.EOF
		}
		return jsontok.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, stackFrame{kind: kindObject, expectingKey: true})
			return jsontok.Token{Kind: jsontok.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			s.valueDone()
			return jsontok.Token{Kind: jsontok.KindEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, stackFrame{kind: kindArray})
			return jsontok.Token{Kind: jsontok.KindBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			s.valueDone()
			return jsontok.Token{Kind: jsontok.KindEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return jsontok.Token{Kind: jsontok.KindKey, String: v, Offset: -1}, nil
			}
		}
		s.valueDone()
		return jsontok.Token{Kind: jsontok.KindString, String: v, Offset: -1}, nil
	case bool:
		s.valueDone()
		return jsontok.Token{Kind: jsontok.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return jsontok.Token{Kind: jsontok.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueDone()
		return jsontok.Token{Kind: jsontok.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.valueDone()
		return jsontok.Token{Kind: jsontok.KindNull, Offset: -1}, nil
	}
	s.valueDone()
	return jsontok.Token{Kind: jsontok.KindNull, Offset: -1}, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
