package cbor

import (
	"encoding/binary"
	"errors"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// ErrUnbalanced is returned when an end token does not match an open container.
var ErrUnbalanced = errors.New("cbor: unbalanced container tokens")

var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{ShortestFloat: cbor.ShortestFloatNone}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

type wframe struct {
	kind  containerKind
	items int
	body  []byte
}

type writer struct {
	w     io.Writer
	out   []byte
	stack []wframe
}

// NewWriter returns an engine.TokenSink producing definite-length CBOR.
// Numbers are written as single-precision floats.
func NewWriter(w io.Writer) eng.TokenSink { return &writer{w: w} }

// Bytes returns a sink that appends into an internal buffer; the encoded item
// is available from the returned function after Flush.
func Bytes() (eng.TokenSink, func() []byte) {
	s := &writer{}
	return s, func() []byte { return s.out }
}

func (s *writer) WriteToken(t eng.Token) error {
	switch t.Kind {
	case eng.KindBeginArray:
		s.stack = append(s.stack, wframe{kind: kindArray})
		return nil
	case eng.KindBeginObject:
		s.stack = append(s.stack, wframe{kind: kindMap})
		return nil
	case eng.KindEndArray, eng.KindEndObject:
		want, major := kindArray, byte(majorArray)
		if t.Kind == eng.KindEndObject {
			want, major = kindMap, majorMap
		}
		n := len(s.stack)
		if n == 0 || s.stack[n-1].kind != want {
			return ErrUnbalanced
		}
		top := s.stack[n-1]
		s.stack = s.stack[:n-1]
		count := top.items
		if want == kindMap {
			if count%2 != 0 {
				return ErrUnbalanced
			}
			count /= 2
		}
		item := appendHead(make([]byte, 0, 9+len(top.body)), major, uint64(count))
		s.emit(append(item, top.body...))
		return nil
	}

	var (
		b   []byte
		err error
	)
	switch t.Kind {
	case eng.KindKey, eng.KindString:
		b, err = encMode.Marshal(t.String)
	case eng.KindNumber:
		f, perr := strconv.ParseFloat(t.Number, 32)
		if perr != nil {
			return perr
		}
		b, err = encMode.Marshal(float32(f))
	case eng.KindBool:
		b, err = encMode.Marshal(t.Bool)
	case eng.KindNull:
		b, err = encMode.Marshal(nil)
	}
	if err != nil {
		return err
	}
	s.emit(b)
	return nil
}

func (s *writer) emit(item []byte) {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		top.body = append(top.body, item...)
		top.items++
		return
	}
	s.out = append(s.out, item...)
}

func (s *writer) Flush() error {
	if len(s.stack) > 0 {
		return ErrUnbalanced
	}
	if s.w == nil {
		return nil
	}
	_, err := s.w.Write(s.out)
	s.out = s.out[:0]
	return err
}

func appendHead(dst []byte, major byte, n uint64) []byte {
	m := major << 5
	switch {
	case n < 24:
		return append(dst, m|byte(n))
	case n <= 0xff:
		return append(dst, m|24, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(dst, m|25), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(dst, m|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(dst, m|27), n)
	}
}
