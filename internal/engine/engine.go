package engine

import (
	"fmt"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the wire-neutral name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBeginObject, KindEndObject:
		return "map"
	case KindBeginArray, KindEndArray:
		return "sequence"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token represents a streaming token with approximate input offset.
// Number holds the textual form of a numeric leaf; drivers for binary formats
// render it with the shortest representation that round-trips.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// TokenSink receives tokens produced by an encoder. Flush finalizes any
// buffered output; it must be called once the outermost container is closed.
type TokenSink interface {
	WriteToken(Token) error
	Flush() error
}

// UnexpectedEOF maps a clean io.EOF in the middle of a value to
// io.ErrUnexpectedEOF. Other errors pass through unchanged.
func UnexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Skip consumes the remainder of the value that starts with first. Scalars
// are complete already; containers are drained up to their matching end.
func Skip(src TokenSource, first Token) error {
	depth := 0
	switch first.Kind {
	case KindBeginObject, KindBeginArray:
		depth = 1
	case KindEndObject, KindEndArray:
		return fmt.Errorf("engine: unexpected %s end", first.Kind)
	default:
		return nil
	}
	for depth > 0 {
		tok, err := src.NextToken()
		if err != nil {
			return UnexpectedEOF(err)
		}
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		}
	}
	return nil
}
