package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	y "gopkg.in/yaml.v3"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// nodeSource flattens a yaml.Node tree into tokens. Mapping pairs keep their
// document order and duplicate keys are passed through untouched so the
// consumer can report them.
type nodeSource struct {
	dec    *y.Decoder
	in     *countingReader
	root   *y.Node
	tokens []eng.Token
	idx    int
	loaded bool
	err    error
}

// NewReader wraps an io.Reader holding a single YAML document into an
// engine.TokenSource. The document is decoded on the first NextToken call,
// after which Location reports the bytes read from r.
func NewReader(r io.Reader) eng.TokenSource {
	in := &countingReader{r: r}
	return &nodeSource{dec: y.NewDecoder(in), in: in}
}

// NewBytes wraps a byte slice into an engine.TokenSource for YAML.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// NewNode exposes an already decoded node (as handed to yaml.Unmarshaler) as
// an engine.TokenSource.
func NewNode(n *y.Node) eng.TokenSource { return &nodeSource{root: n} }

func (s *nodeSource) load() {
	s.loaded = true
	if s.root == nil {
		var doc y.Node
		if err := s.dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				s.err = io.EOF
				return
			}
			s.err = err
			return
		}
		s.root = &doc
	}
	s.tokens, s.err = appendNodeTokens(nil, s.root)
}

func (s *nodeSource) NextToken() (eng.Token, error) {
	if !s.loaded {
		s.load()
	}
	if s.idx >= len(s.tokens) {
		if s.err != nil {
			return eng.Token{}, s.err
		}
		return eng.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

func (s *nodeSource) Location() int64 {
	if s.in == nil {
		return -1
	}
	return s.in.n
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func appendNodeTokens(out []eng.Token, n *y.Node) ([]eng.Token, error) {
	switch n.Kind {
	case y.DocumentNode:
		if len(n.Content) == 0 {
			return out, nil
		}
		return appendNodeTokens(out, n.Content[0])
	case y.AliasNode:
		if n.Alias == nil {
			return out, fmt.Errorf("yaml: unresolved alias at %d:%d", n.Line, n.Column)
		}
		return appendNodeTokens(out, n.Alias)
	case y.MappingNode:
		out = append(out, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != y.ScalarNode {
				return out, fmt.Errorf("yaml: non-scalar mapping key at %d:%d", k.Line, k.Column)
			}
			out = append(out, eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			var err error
			if out, err = appendNodeTokens(out, n.Content[i+1]); err != nil {
				return out, err
			}
		}
		return append(out, eng.Token{Kind: eng.KindEndObject, Offset: -1}), nil
	case y.SequenceNode:
		out = append(out, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			var err error
			if out, err = appendNodeTokens(out, c); err != nil {
				return out, err
			}
		}
		return append(out, eng.Token{Kind: eng.KindEndArray, Offset: -1}), nil
	case y.ScalarNode:
		return append(out, scalarToken(n)), nil
	default:
		return out, fmt.Errorf("yaml: unsupported node kind %d", n.Kind)
	}
}

func scalarToken(n *y.Node) eng.Token {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}
	case "!!int":
		if i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10), Offset: -1}
		}
		return eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1}
	case "!!float":
		return eng.Token{Kind: eng.KindNumber, Number: fromYAMLFloat(n.Value), Offset: -1}
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}
	}
}

// fromYAMLFloat maps the YAML spellings of non-finite floats onto the ones
// strconv understands.
func fromYAMLFloat(v string) string {
	switch strings.ToLower(v) {
	case ".nan":
		return "NaN"
	case ".inf", "+.inf":
		return "+Inf"
	case "-.inf":
		return "-Inf"
	}
	return strings.ReplaceAll(v, "_", "")
}

// toYAMLFloat renders a numeric token so that it resolves to !!float.
func toYAMLFloat(v string) string {
	switch v {
	case "NaN":
		return ".nan"
	case "+Inf", "Inf":
		return ".inf"
	case "-Inf":
		return "-.inf"
	}
	if strings.ContainsAny(v, ".eEn") {
		return v
	}
	return v + ".0"
}
