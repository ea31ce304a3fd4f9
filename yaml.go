package ultraviolet

import (
	"gopkg.in/yaml.v3"

	yamlsrc "github.com/Frizi/ultraviolet/source/yaml"
)

// marshalYAML returns a *yaml.Node, which the yaml.v3 encoder renders in
// place of the value.
func marshalYAML(a Aggregate) (any, error) {
	b := yamlsrc.NewNodeBuilder()
	if err := Encode(b, a); err != nil {
		return nil, err
	}
	return b.Node(), nil
}

func unmarshalYAML[T any, PT AggregatePtr[T]](n *yaml.Node, dst PT) error {
	return DecodeInto[T, PT](yamlsrc.NewNode(n), dst)
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec2) MarshalYAML() (any, error)   { return marshalYAML(v) }
func (v Vec3) MarshalYAML() (any, error)   { return marshalYAML(v) }
func (v Vec4) MarshalYAML() (any, error)   { return marshalYAML(v) }
func (b Bivec2) MarshalYAML() (any, error) { return marshalYAML(b) }
func (b Bivec3) MarshalYAML() (any, error) { return marshalYAML(b) }
func (r Rotor2) MarshalYAML() (any, error) { return marshalYAML(r) }
func (r Rotor3) MarshalYAML() (any, error) { return marshalYAML(r) }
func (m Mat2) MarshalYAML() (any, error)   { return marshalYAML(m) }
func (m Mat3) MarshalYAML() (any, error)   { return marshalYAML(m) }
func (m Mat4) MarshalYAML() (any, error)   { return marshalYAML(m) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec2) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, v) }
func (v *Vec3) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, v) }
func (v *Vec4) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, v) }
func (b *Bivec2) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, b) }
func (b *Bivec3) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, b) }
func (r *Rotor2) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }
func (r *Rotor3) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }
func (m *Mat2) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, m) }
func (m *Mat3) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, m) }
func (m *Mat4) UnmarshalYAML(n *yaml.Node) error   { return unmarshalYAML(n, m) }
