package ultraviolet

import "bytes"

func marshalJSON(a Aggregate) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(JSONWriter(&buf), a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalJSON[T any, PT AggregatePtr[T]](b []byte, dst PT) error {
	return DecodeInto[T, PT](JSONBytes(b), dst)
}

// MarshalJSON implements json.Marshaler using the build's default policy.
func (v Vec2) MarshalJSON() ([]byte, error)   { return marshalJSON(v) }
func (v Vec3) MarshalJSON() ([]byte, error)   { return marshalJSON(v) }
func (v Vec4) MarshalJSON() ([]byte, error)   { return marshalJSON(v) }
func (b Bivec2) MarshalJSON() ([]byte, error) { return marshalJSON(b) }
func (b Bivec3) MarshalJSON() ([]byte, error) { return marshalJSON(b) }
func (r Rotor2) MarshalJSON() ([]byte, error) { return marshalJSON(r) }
func (r Rotor3) MarshalJSON() ([]byte, error) { return marshalJSON(r) }
func (m Mat2) MarshalJSON() ([]byte, error)   { return marshalJSON(m) }
func (m Mat3) MarshalJSON() ([]byte, error)   { return marshalJSON(m) }
func (m Mat4) MarshalJSON() ([]byte, error)   { return marshalJSON(m) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vec2) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, v) }
func (v *Vec3) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, v) }
func (v *Vec4) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, v) }
func (b *Bivec2) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, b) }
func (b *Bivec3) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, b) }
func (r *Rotor2) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, r) }
func (r *Rotor3) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, r) }
func (m *Mat2) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, m) }
func (m *Mat3) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, m) }
func (m *Mat4) UnmarshalJSON(data []byte) error   { return unmarshalJSON(data, m) }
