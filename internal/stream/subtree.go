package stream

import (
	"io"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// PreloadedSource is a subtree source that first returns a preloaded token
// (typically the first token of a sequence element) and then continues to
// stream the remaining tokens for the same subtree from the underlying source.
// It stops after the subtree end is reached, returning io.EOF afterwards.
type PreloadedSource struct {
	inner       eng.TokenSource
	preloaded   eng.Token
	depth       int
	done        bool
	firstServed bool
}

// NewPreloadedSource constructs a subtree source that will return the provided
// first token before consuming further tokens from inner. The subtree boundary
// is determined by matching container begin/end pairs starting from the first
// token.
func NewPreloadedSource(inner eng.TokenSource, first eng.Token) *PreloadedSource {
	return &PreloadedSource{inner: inner, preloaded: first}
}

func (p *PreloadedSource) NextToken() (eng.Token, error) {
	if p.done {
		return eng.Token{}, io.EOF
	}
	var tok eng.Token
	if !p.firstServed {
		tok = p.preloaded
		p.firstServed = true
	} else {
		t, err := p.inner.NextToken()
		if err != nil {
			return eng.Token{}, err
		}
		tok = t
	}
	switch tok.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
		p.depth++
	case eng.KindEndObject, eng.KindEndArray:
		if p.depth > 0 {
			p.depth--
		}
	}
	// primitives form a single-token subtree; containers end at depth zero
	if p.depth == 0 {
		p.done = true
	}
	return tok, nil
}

func (p *PreloadedSource) Location() int64 { return p.inner.Location() }

// Done reports whether the whole subtree has been served.
func (p *PreloadedSource) Done() bool { return p.done }
