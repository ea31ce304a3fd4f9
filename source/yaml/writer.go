package yaml

import (
	"errors"
	"io"
	"strconv"

	y "gopkg.in/yaml.v3"

	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// ErrUnbalanced is returned when an end token does not match an open node.
var ErrUnbalanced = errors.New("yaml: unbalanced container tokens")

// NodeBuilder is an engine.TokenSink that assembles a yaml.Node tree. It backs
// yaml.Marshaler implementations, which hand a node back to the encoder.
type NodeBuilder struct {
	root  *y.Node
	stack []*y.Node
}

// NewNodeBuilder returns an empty NodeBuilder.
func NewNodeBuilder() *NodeBuilder { return &NodeBuilder{} }

// Node returns the completed root node, or nil when nothing was written.
func (b *NodeBuilder) Node() *y.Node { return b.root }

func (b *NodeBuilder) WriteToken(t eng.Token) error {
	switch t.Kind {
	case eng.KindBeginObject:
		b.open(&y.Node{Kind: y.MappingNode, Tag: "!!map"})
	case eng.KindBeginArray:
		b.open(&y.Node{Kind: y.SequenceNode, Tag: "!!seq"})
	case eng.KindEndObject, eng.KindEndArray:
		want := y.MappingNode
		if t.Kind == eng.KindEndArray {
			want = y.SequenceNode
		}
		n := len(b.stack)
		if n == 0 || b.stack[n-1].Kind != want {
			return ErrUnbalanced
		}
		top := b.stack[n-1]
		if want == y.MappingNode && len(top.Content)%2 != 0 {
			return ErrUnbalanced
		}
		if want == y.SequenceNode && scalarsOnly(top) {
			top.Style = y.FlowStyle
		}
		b.stack = b.stack[:n-1]
	case eng.KindKey, eng.KindString:
		b.add(&y.Node{Kind: y.ScalarNode, Tag: "!!str", Value: t.String})
	case eng.KindNumber:
		b.add(&y.Node{Kind: y.ScalarNode, Tag: "!!float", Value: toYAMLFloat(t.Number)})
	case eng.KindBool:
		b.add(&y.Node{Kind: y.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t.Bool)})
	case eng.KindNull:
		b.add(&y.Node{Kind: y.ScalarNode, Tag: "!!null", Value: "null"})
	}
	return nil
}

// Flush reports whether the tree is complete; the builder holds no output.
func (b *NodeBuilder) Flush() error {
	if len(b.stack) > 0 {
		return ErrUnbalanced
	}
	return nil
}

func (b *NodeBuilder) open(n *y.Node) {
	b.add(n)
	b.stack = append(b.stack, n)
}

func (b *NodeBuilder) add(n *y.Node) {
	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		}
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Content = append(top.Content, n)
}

func scalarsOnly(n *y.Node) bool {
	for _, c := range n.Content {
		if c.Kind != y.ScalarNode {
			return false
		}
	}
	return true
}

type writer struct {
	NodeBuilder
	w io.Writer
}

// NewWriter returns an engine.TokenSink that renders the token tree as a YAML
// document on Flush.
func NewWriter(w io.Writer) eng.TokenSink { return &writer{w: w} }

func (s *writer) Flush() error {
	if err := s.NodeBuilder.Flush(); err != nil {
		return err
	}
	if s.root == nil {
		return nil
	}
	enc := y.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(s.root); err != nil {
		return err
	}
	s.root = nil
	return enc.Close()
}
