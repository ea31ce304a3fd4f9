package ultraviolet

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// accumulator holds the components of one aggregate while it is decoded.
// present carries one bit per ordinal.
type accumulator struct {
	vals    [maxArity]float32
	present uint16
}

func (a *accumulator) has(ord int) bool { return a.present&(1<<ord) != 0 }

func (a *accumulator) set(ord int, v float32) {
	a.vals[ord] = v
	a.present |= 1 << ord
}

// decoder assembles one aggregate of table from src. It dispatches on the
// first token: a sequence is read positionally, a map by field name.
type decoder struct {
	src    Source
	table  *FieldTable
	policy Policy
	strict Strictness
}

func newDecoder(src Source, t *FieldTable, opt DecodeOpt) *decoder {
	return &decoder{src: src, table: t, policy: opt.Policy.resolve(), strict: opt.Strictness}
}

func (d *decoder) decode(acc *accumulator) error {
	tok, err := d.src.NextToken()
	if err != nil {
		return eng.UnexpectedEOF(err)
	}
	switch tok.Kind {
	case TokenBeginArray:
		seq := &seqAccess{d: d}
		if err := d.visitSeq(seq, acc); err != nil {
			return err
		}
		return seq.finish()
	case TokenBeginObject:
		if positional(d.table, d.policy) {
			return d.invalidType("", tok)
		}
		return d.visitMap(acc)
	default:
		return d.invalidType("", tok)
	}
}

// expecting describes the accepted shapes for diagnostics.
func (d *decoder) expecting() string {
	if positional(d.table, d.policy) {
		return fmt.Sprintf("sequence of %d f32 for %s", d.table.arity, d.table.name)
	}
	return "struct " + d.table.name
}

func (d *decoder) invalidType(path string, tok Token) error {
	return &InvalidTypeError{Type: d.table.name, Path: path, Got: tok.Kind.String(), Expected: d.expecting()}
}

// visitSeq reads exactly arity components. It never looks past the last
// one; what follows belongs to seqAccess.finish.
func (d *decoder) visitSeq(seq *seqAccess, acc *accumulator) error {
	for i := 0; i < d.table.arity; i++ {
		v, ok, err := seq.next(i)
		if err != nil {
			return err
		}
		if !ok {
			return &ArityError{Type: d.table.name, Expected: d.table.arity, Got: i}
		}
		acc.set(i, v)
	}
	return nil
}

func (d *decoder) visitMap(acc *accumulator) error {
	t := d.table
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return eng.UnexpectedEOF(err)
		}
		if tok.Kind == TokenEndObject {
			break
		}
		if tok.Kind != TokenKey {
			return &InvalidTypeError{Type: t.name, Got: tok.Kind.String(), Expected: "field name"}
		}
		ord, ok := t.Resolve(tok.String)
		if !ok {
			return &UnknownFieldError{Type: t.name, Name: tok.String, Expected: t.Fields()}
		}
		vt, err := d.src.NextToken()
		if err != nil {
			return eng.UnexpectedEOF(err)
		}
		v, err := d.scalar(vt, pointer(tok.String))
		if err != nil {
			return err
		}
		if acc.has(ord) {
			return &DuplicateFieldError{Type: t.name, Name: tok.String}
		}
		acc.set(ord, v)
	}
	for i := 0; i < t.arity; i++ {
		if !acc.has(i) {
			return &MissingFieldError{Type: t.name, Name: t.fields[i]}
		}
	}
	return nil
}

// scalar converts a number token into a float32 component.
func (d *decoder) scalar(tok Token, path string) (float32, error) {
	if tok.Kind != TokenNumber {
		return 0, &InvalidTypeError{Type: d.table.name, Path: path, Got: tok.Kind.String(), Expected: "f32"}
	}
	f, err := strconv.ParseFloat(tok.Number, 32)
	if err != nil {
		code := CodeParseError
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			code = CodeOverflow
		}
		return 0, &InvalidValueError{Type: d.table.name, Path: path, Value: tok.Number, Code: code}
	}
	if d.strict.RejectNonFinite && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return 0, &InvalidValueError{Type: d.table.name, Path: path, Value: tok.Number, Code: CodeDomainRange}
	}
	return float32(f), nil
}

// seqAccess hands out the elements of one sequence and owns its end.
type seqAccess struct {
	d     *decoder
	ended bool
}

// next returns element idx, or ok=false when the sequence has ended.
func (s *seqAccess) next(idx int) (float32, bool, error) {
	if s.ended {
		return 0, false, nil
	}
	tok, err := s.d.src.NextToken()
	if err != nil {
		return 0, false, eng.UnexpectedEOF(err)
	}
	if tok.Kind == TokenEndArray {
		s.ended = true
		return 0, false, nil
	}
	v, err := s.d.scalar(tok, pointer(strconv.Itoa(idx)))
	return v, err == nil, err
}

// finish consumes the rest of the sequence after the last component.
// Trailing elements are an error unless Strictness.AllowTrailing is set, in
// which case whole subtrees are skipped up to the end.
func (s *seqAccess) finish() error {
	for !s.ended {
		tok, err := s.d.src.NextToken()
		if err != nil {
			return eng.UnexpectedEOF(err)
		}
		if tok.Kind == TokenEndArray {
			s.ended = true
			break
		}
		if !s.d.strict.AllowTrailing {
			return &TrailingError{Type: s.d.table.name, Expected: s.d.table.arity}
		}
		if err := eng.Skip(s.d.src, tok); err != nil {
			return err
		}
	}
	return nil
}

// decodeScalars decodes one aggregate of table t and returns its components
// in ordinal order.
func decodeScalars(src Source, t *FieldTable, opt DecodeOpt) ([]float32, error) {
	var acc accumulator
	if err := newDecoder(src, t, opt).decode(&acc); err != nil {
		return nil, err
	}
	return acc.vals[:t.arity], nil
}
