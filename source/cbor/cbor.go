// Package cbor adapts CBOR (RFC 8949) data items to the engine token
// contract. Container heads are walked here so that map keys keep their
// encoded order and duplicates stay visible; leaf items are decoded with
// github.com/fxamacker/cbor/v2.
package cbor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

const (
	majorArray = 4
	majorMap   = 5
	majorTag   = 6

	infoIndefinite = 31
	breakByte      = 0xff
)

type containerKind int

const (
	kindArray containerKind = iota
	kindMap
)

type frame struct {
	kind         containerKind
	remaining    int64 // items left; -1 for indefinite length
	expectingKey bool
}

type source struct {
	data  []byte
	pos   int
	stack []frame
}

// NewBytes wraps CBOR-encoded data into an engine.TokenSource.
func NewBytes(b []byte) eng.TokenSource { return &source{data: b} }

// NewReader reads r fully and wraps the result; CBOR heads need random access.
func NewReader(r io.Reader) eng.TokenSource {
	data, err := io.ReadAll(r)
	if err != nil {
		return &failed{err: err}
	}
	return NewBytes(data)
}

type failed struct{ err error }

func (f *failed) NextToken() (eng.Token, error) { return eng.Token{}, f.err }
func (f *failed) Location() int64               { return -1 }

func (s *source) Location() int64 { return int64(s.pos) }

func (s *source) NextToken() (eng.Token, error) {
	if n := len(s.stack); n > 0 {
		top := s.stack[n-1]
		if top.remaining == 0 {
			return s.end(), nil
		}
		if top.remaining < 0 && s.pos < len(s.data) && s.data[s.pos] == breakByte {
			if top.kind == kindMap && !top.expectingKey {
				return eng.Token{}, fmt.Errorf("cbor: break after map key at offset %d", s.pos)
			}
			s.pos++
			return s.end(), nil
		}
	}
	// tags are transparent: the tagged content is the item
	for s.pos < len(s.data) && s.data[s.pos]>>5 == majorTag {
		if _, _, err := s.head(); err != nil {
			return eng.Token{}, err
		}
	}
	if s.pos >= len(s.data) {
		if len(s.stack) > 0 {
			return eng.Token{}, io.ErrUnexpectedEOF
		}
		return eng.Token{}, io.EOF
	}

	offset := int64(s.pos)
	isKey := s.consumeItem()
	major := s.data[s.pos] >> 5
	if major == majorArray || major == majorMap {
		if isKey {
			return eng.Token{}, fmt.Errorf("cbor: container used as map key at offset %d", offset)
		}
		arg, indefinite, err := s.head()
		if err != nil {
			return eng.Token{}, err
		}
		n := int64(-1)
		if !indefinite {
			// every item takes at least one byte
			if arg > uint64(len(s.data)-s.pos) {
				return eng.Token{}, errors.New("cbor: container length exceeds input")
			}
			n = int64(arg)
		}
		if major == majorArray {
			s.stack = append(s.stack, frame{kind: kindArray, remaining: n})
			return eng.Token{Kind: eng.KindBeginArray, Offset: offset}, nil
		}
		if n > 0 {
			n *= 2
		}
		s.stack = append(s.stack, frame{kind: kindMap, remaining: n, expectingKey: true})
		return eng.Token{Kind: eng.KindBeginObject, Offset: offset}, nil
	}

	var v any
	rest, err := cbor.UnmarshalFirst(s.data[s.pos:], &v)
	if err != nil {
		return eng.Token{}, err
	}
	s.pos = len(s.data) - len(rest)
	tok := leafToken(v)
	tok.Offset = offset
	if isKey {
		if tok.Kind != eng.KindString {
			return eng.Token{}, fmt.Errorf("cbor: non-text map key at offset %d", offset)
		}
		tok.Kind = eng.KindKey
	}
	return tok, nil
}

// consumeItem accounts for one item in the enclosing container and reports
// whether that item is a map key.
func (s *source) consumeItem() bool {
	n := len(s.stack)
	if n == 0 {
		return false
	}
	top := &s.stack[n-1]
	if top.remaining > 0 {
		top.remaining--
	}
	if top.kind != kindMap {
		return false
	}
	isKey := top.expectingKey
	top.expectingKey = !top.expectingKey
	return isKey
}

func (s *source) end() eng.Token {
	n := len(s.stack)
	top := s.stack[n-1]
	s.stack = s.stack[:n-1]
	if top.kind == kindMap {
		return eng.Token{Kind: eng.KindEndObject, Offset: int64(s.pos)}
	}
	return eng.Token{Kind: eng.KindEndArray, Offset: int64(s.pos)}
}

// head consumes an initial byte plus its argument. The argument is a length
// for containers and a tag number for tags; indefinite reports the
// indefinite-length container form.
func (s *source) head() (arg uint64, indefinite bool, err error) {
	ib := s.data[s.pos]
	info := ib & 0x1f
	s.pos++
	var size int
	switch {
	case info < 24:
		return uint64(info), false, nil
	case info == 24:
		size = 1
	case info == 25:
		size = 2
	case info == 26:
		size = 4
	case info == 27:
		size = 8
	case info == infoIndefinite && (ib>>5 == majorArray || ib>>5 == majorMap):
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("cbor: invalid additional information %d at offset %d", info, s.pos-1)
	}
	if s.pos+size > len(s.data) {
		return 0, false, io.ErrUnexpectedEOF
	}
	buf := s.data[s.pos : s.pos+size]
	s.pos += size
	switch size {
	case 1:
		return uint64(buf[0]), false, nil
	case 2:
		return uint64(binary.BigEndian.Uint16(buf)), false, nil
	case 4:
		return uint64(binary.BigEndian.Uint32(buf)), false, nil
	default:
		return binary.BigEndian.Uint64(buf), false, nil
	}
}

func leafToken(v any) eng.Token {
	switch x := v.(type) {
	case nil:
		return eng.Token{Kind: eng.KindNull}
	case bool:
		return eng.Token{Kind: eng.KindBool, Bool: x}
	case string:
		return eng.Token{Kind: eng.KindString, String: x}
	case []byte:
		return eng.Token{Kind: eng.KindString, String: string(x)}
	case float64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(x, 'g', -1, 64)}
	case uint64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatUint(x, 10)}
	case int64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(x, 10)}
	case big.Int:
		return eng.Token{Kind: eng.KindNumber, Number: x.String()}
	case *big.Int:
		return eng.Token{Kind: eng.KindNumber, Number: x.String()}
	default:
		return eng.Token{Kind: eng.KindString, String: fmt.Sprint(x)}
	}
}
