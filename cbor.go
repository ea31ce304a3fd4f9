package ultraviolet

import (
	cborsrc "github.com/Frizi/ultraviolet/source/cbor"
)

func marshalCBOR(a Aggregate) ([]byte, error) {
	sink, out := cborsrc.Bytes()
	if err := Encode(sink, a); err != nil {
		return nil, err
	}
	return out(), nil
}

func unmarshalCBOR[T any, PT AggregatePtr[T]](b []byte, dst PT) error {
	return DecodeInto[T, PT](cborsrc.NewBytes(b), dst)
}

// MarshalCBOR implements cbor.Marshaler. Components are single-precision
// floats.
func (v Vec2) MarshalCBOR() ([]byte, error)   { return marshalCBOR(v) }
func (v Vec3) MarshalCBOR() ([]byte, error)   { return marshalCBOR(v) }
func (v Vec4) MarshalCBOR() ([]byte, error)   { return marshalCBOR(v) }
func (b Bivec2) MarshalCBOR() ([]byte, error) { return marshalCBOR(b) }
func (b Bivec3) MarshalCBOR() ([]byte, error) { return marshalCBOR(b) }
func (r Rotor2) MarshalCBOR() ([]byte, error) { return marshalCBOR(r) }
func (r Rotor3) MarshalCBOR() ([]byte, error) { return marshalCBOR(r) }
func (m Mat2) MarshalCBOR() ([]byte, error)   { return marshalCBOR(m) }
func (m Mat3) MarshalCBOR() ([]byte, error)   { return marshalCBOR(m) }
func (m Mat4) MarshalCBOR() ([]byte, error)   { return marshalCBOR(m) }

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Vec2) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, v) }
func (v *Vec3) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, v) }
func (v *Vec4) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, v) }
func (b *Bivec2) UnmarshalCBOR(data []byte) error { return unmarshalCBOR(data, b) }
func (b *Bivec3) UnmarshalCBOR(data []byte) error { return unmarshalCBOR(data, b) }
func (r *Rotor2) UnmarshalCBOR(data []byte) error { return unmarshalCBOR(data, r) }
func (r *Rotor3) UnmarshalCBOR(data []byte) error { return unmarshalCBOR(data, r) }
func (m *Mat2) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, m) }
func (m *Mat3) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, m) }
func (m *Mat4) UnmarshalCBOR(data []byte) error   { return unmarshalCBOR(data, m) }
