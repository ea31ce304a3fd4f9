package engine

import (
	"errors"
	"io"
	"testing"
)

// sliceSource replays a fixed token list, reporting each token's Offset as
// the current location.
type sliceSource struct {
	toks []Token
	pos  int
	loc  int64
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	s.loc = t.Offset
	return t, nil
}

func (s *sliceSource) Location() int64 { return s.loc }

func tokens(kinds ...Kind) []Token {
	out := make([]Token, len(kinds))
	for i, k := range kinds {
		out[i] = Token{Kind: k, Offset: -1}
	}
	return out
}

func TestSkip_Container(t *testing.T) {
	src := &sliceSource{toks: tokens(KindBeginArray, KindNumber, KindEndArray, KindBeginObject, KindKey, KindNull, KindEndObject, KindEndArray, KindNumber)}
	first, _ := src.NextToken()
	if err := Skip(src, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// one full sequence consumed, the rest remains
	if src.pos != 3 {
		t.Fatalf("expected to stop after 3 tokens, stopped at %d", src.pos)
	}
}

func TestSkip_Scalar(t *testing.T) {
	src := &sliceSource{toks: tokens(KindNumber)}
	if err := Skip(src, Token{Kind: KindString}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.pos != 0 {
		t.Fatalf("scalar skip must not read ahead")
	}
}

func TestSkip_Truncated(t *testing.T) {
	src := &sliceSource{toks: tokens(KindBeginObject, KindKey)}
	first, _ := src.NextToken()
	err := Skip(src, first)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestSkip_StrayEnd(t *testing.T) {
	if err := Skip(&sliceSource{}, Token{Kind: KindEndArray}); err == nil {
		t.Fatalf("expected error for stray end token")
	}
}

func TestUnexpectedEOF(t *testing.T) {
	if UnexpectedEOF(io.EOF) != io.ErrUnexpectedEOF {
		t.Fatalf("io.EOF should map to io.ErrUnexpectedEOF")
	}
	other := errors.New("boom")
	if UnexpectedEOF(other) != other {
		t.Fatalf("other errors must pass through")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindBeginObject: "map",
		KindEndArray:    "sequence",
		KindNumber:      "number",
		KindNull:        "null",
		Kind(42):        "kind(42)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
