package ultraviolet

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"
)

// BinarySize returns the encoded size of a: four bytes per component.
func BinarySize(a Aggregate) int { return a.FieldTable().Arity() * 4 }

// appendBinary appends the little-endian float32 components of a. On
// little-endian hosts the in-memory layout already is the wire layout.
func appendBinary[T POD](dst []byte, v *T) []byte {
	if !cpu.IsBigEndian {
		return append(dst, Bytes(v)...)
	}
	var buf [maxArity]float32
	for _, f := range any(*v).(Aggregate).appendScalars(buf[:0]) {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

func unmarshalBinary[T POD, PT AggregatePtr[T]](b []byte, dst PT) error {
	t := dst.FieldTable()
	if len(b) != t.Arity()*4 {
		return &SizeError{Type: t.Name(), Want: t.Arity() * 4, Got: len(b)}
	}
	if !cpu.IsBigEndian {
		copy(Bytes((*T)(dst)), b)
		return nil
	}
	var buf [maxArity]float32
	for i := range t.Arity() {
		buf[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	dst.setScalars(buf[:t.Arity()])
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vec2) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &v), nil }
func (v Vec3) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &v), nil }
func (v Vec4) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &v), nil }
func (b Bivec2) AppendBinary(data []byte) ([]byte, error) { return appendBinary(data, &b), nil }
func (b Bivec3) AppendBinary(data []byte) ([]byte, error) { return appendBinary(data, &b), nil }
func (r Rotor2) AppendBinary(data []byte) ([]byte, error) { return appendBinary(data, &r), nil }
func (r Rotor3) AppendBinary(data []byte) ([]byte, error) { return appendBinary(data, &r), nil }
func (m Mat2) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &m), nil }
func (m Mat3) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &m), nil }
func (m Mat4) AppendBinary(data []byte) ([]byte, error)   { return appendBinary(data, &m), nil }

// MarshalBinary implements encoding.BinaryMarshaler with a little-endian
// float32 layout in ordinal order.
func (v Vec2) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &v), nil }
func (v Vec3) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &v), nil }
func (v Vec4) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &v), nil }
func (b Bivec2) MarshalBinary() ([]byte, error) { return appendBinary(nil, &b), nil }
func (b Bivec3) MarshalBinary() ([]byte, error) { return appendBinary(nil, &b), nil }
func (r Rotor2) MarshalBinary() ([]byte, error) { return appendBinary(nil, &r), nil }
func (r Rotor3) MarshalBinary() ([]byte, error) { return appendBinary(nil, &r), nil }
func (m Mat2) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &m), nil }
func (m Mat3) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &m), nil }
func (m Mat4) MarshalBinary() ([]byte, error)   { return appendBinary(nil, &m), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec2) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, v) }
func (v *Vec3) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, v) }
func (v *Vec4) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, v) }
func (b *Bivec2) UnmarshalBinary(data []byte) error { return unmarshalBinary(data, b) }
func (b *Bivec3) UnmarshalBinary(data []byte) error { return unmarshalBinary(data, b) }
func (r *Rotor2) UnmarshalBinary(data []byte) error { return unmarshalBinary(data, r) }
func (r *Rotor3) UnmarshalBinary(data []byte) error { return unmarshalBinary(data, r) }
func (m *Mat2) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, m) }
func (m *Mat3) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, m) }
func (m *Mat4) UnmarshalBinary(data []byte) error   { return unmarshalBinary(data, m) }
