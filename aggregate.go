package ultraviolet

// Aggregate is implemented by every fixed-shape float32 type in this package.
// The component list is flat and in ordinal order; matrices are column-major.
type Aggregate interface {
	FieldTable() *FieldTable
	appendScalars(dst []float32) []float32
}

// AggregatePtr is the pointer side of an Aggregate, able to be filled from a
// complete component list. It is the constraint of the generic decode API.
type AggregatePtr[T any] interface {
	*T
	Aggregate
	setScalars(src []float32)
}

// Scalars returns the components of a in ordinal order.
func Scalars(a Aggregate) []float32 {
	return a.appendScalars(make([]float32, 0, a.FieldTable().Arity()))
}

func (v Vec2) FieldTable() *FieldTable   { return vec2Table }
func (v Vec3) FieldTable() *FieldTable   { return vec3Table }
func (v Vec4) FieldTable() *FieldTable   { return vec4Table }
func (b Bivec2) FieldTable() *FieldTable { return bivec2Table }
func (b Bivec3) FieldTable() *FieldTable { return bivec3Table }
func (r Rotor2) FieldTable() *FieldTable { return rotor2Table }
func (r Rotor3) FieldTable() *FieldTable { return rotor3Table }
func (m Mat2) FieldTable() *FieldTable   { return mat2Table }
func (m Mat3) FieldTable() *FieldTable   { return mat3Table }
func (m Mat4) FieldTable() *FieldTable   { return mat4Table }

func (v Vec2) appendScalars(dst []float32) []float32   { return append(dst, v.X, v.Y) }
func (v Vec3) appendScalars(dst []float32) []float32   { return append(dst, v.X, v.Y, v.Z) }
func (v Vec4) appendScalars(dst []float32) []float32   { return append(dst, v.X, v.Y, v.Z, v.W) }
func (b Bivec2) appendScalars(dst []float32) []float32 { return append(dst, b.XY) }
func (b Bivec3) appendScalars(dst []float32) []float32 { return append(dst, b.XY, b.XZ, b.YZ) }
func (r Rotor2) appendScalars(dst []float32) []float32 { return append(dst, r.S, r.BV.XY) }
func (r Rotor3) appendScalars(dst []float32) []float32 {
	return append(dst, r.S, r.BV.XY, r.BV.XZ, r.BV.YZ)
}

func (m Mat2) appendScalars(dst []float32) []float32 {
	for _, c := range m.Cols {
		dst = c.appendScalars(dst)
	}
	return dst
}

func (m Mat3) appendScalars(dst []float32) []float32 {
	for _, c := range m.Cols {
		dst = c.appendScalars(dst)
	}
	return dst
}

func (m Mat4) appendScalars(dst []float32) []float32 {
	for _, c := range m.Cols {
		dst = c.appendScalars(dst)
	}
	return dst
}

func (v *Vec2) setScalars(s []float32)   { v.X, v.Y = s[0], s[1] }
func (v *Vec3) setScalars(s []float32)   { v.X, v.Y, v.Z = s[0], s[1], s[2] }
func (v *Vec4) setScalars(s []float32)   { v.X, v.Y, v.Z, v.W = s[0], s[1], s[2], s[3] }
func (b *Bivec2) setScalars(s []float32) { b.XY = s[0] }
func (b *Bivec3) setScalars(s []float32) { b.XY, b.XZ, b.YZ = s[0], s[1], s[2] }
func (r *Rotor2) setScalars(s []float32) { r.S, r.BV.XY = s[0], s[1] }
func (r *Rotor3) setScalars(s []float32) {
	r.S, r.BV.XY, r.BV.XZ, r.BV.YZ = s[0], s[1], s[2], s[3]
}

func (m *Mat2) setScalars(s []float32) {
	for i := range m.Cols {
		m.Cols[i].setScalars(s[i*2:])
	}
}

func (m *Mat3) setScalars(s []float32) {
	for i := range m.Cols {
		m.Cols[i].setScalars(s[i*3:])
	}
}

func (m *Mat4) setScalars(s []float32) {
	for i := range m.Cols {
		m.Cols[i].setScalars(s[i*4:])
	}
}
