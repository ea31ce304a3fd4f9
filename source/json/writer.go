package json

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// QuoteFunc appends the JSON string literal for s to dst.
type QuoteFunc func(dst []byte, s string) ([]byte, error)

// ErrUnbalanced is returned when an end token does not match an open container.
var ErrUnbalanced = errors.New("json: unbalanced container tokens")

type wframe struct {
	kind  containerKind
	count int
}

type jsonWriter struct {
	w        io.Writer
	quote    QuoteFunc
	buf      []byte
	stack    []wframe
	afterKey bool
}

// NewWriter returns an engine.TokenSink that renders tokens as compact JSON.
func NewWriter(w io.Writer) eng.TokenSink { return NewWriterWith(w, quoteStd) }

// NewWriterWith is NewWriter with a custom string quoting function, letting
// alternative JSON drivers reuse the token layout.
func NewWriterWith(w io.Writer, quote QuoteFunc) eng.TokenSink {
	if quote == nil {
		quote = quoteStd
	}
	return &jsonWriter{w: w, quote: quote}
}

func quoteStd(dst []byte, s string) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

func (s *jsonWriter) WriteToken(t eng.Token) error {
	var err error
	switch t.Kind {
	case eng.KindBeginObject:
		s.separate()
		s.buf = append(s.buf, '{')
		s.stack = append(s.stack, wframe{kind: kindObject})
	case eng.KindEndObject:
		if err := s.pop(kindObject); err != nil {
			return err
		}
		s.buf = append(s.buf, '}')
	case eng.KindBeginArray:
		s.separate()
		s.buf = append(s.buf, '[')
		s.stack = append(s.stack, wframe{kind: kindArray})
	case eng.KindEndArray:
		if err := s.pop(kindArray); err != nil {
			return err
		}
		s.buf = append(s.buf, ']')
	case eng.KindKey:
		s.separate()
		if s.buf, err = s.quote(s.buf, t.String); err != nil {
			return err
		}
		s.buf = append(s.buf, ':')
		s.afterKey = true
	case eng.KindString:
		s.separate()
		s.buf, err = s.quote(s.buf, t.String)
	case eng.KindNumber:
		f, perr := strconv.ParseFloat(t.Number, 64)
		if perr != nil {
			return perr
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &json.UnsupportedValueError{Str: t.Number}
		}
		s.separate()
		s.buf = append(s.buf, t.Number...)
	case eng.KindBool:
		s.separate()
		s.buf = strconv.AppendBool(s.buf, t.Bool)
	case eng.KindNull:
		s.separate()
		s.buf = append(s.buf, "null"...)
	}
	return err
}

// separate emits the comma between siblings; a value right after a key needs none.
func (s *jsonWriter) separate() {
	if s.afterKey {
		s.afterKey = false
		return
	}
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.count > 0 {
			s.buf = append(s.buf, ',')
		}
		top.count++
	}
}

func (s *jsonWriter) pop(kind containerKind) error {
	n := len(s.stack)
	if n == 0 || s.stack[n-1].kind != kind || s.afterKey {
		return ErrUnbalanced
	}
	s.stack = s.stack[:n-1]
	return nil
}

func (s *jsonWriter) Flush() error {
	if len(s.stack) > 0 {
		return ErrUnbalanced
	}
	_, err := s.w.Write(s.buf)
	s.buf = s.buf[:0]
	return err
}
