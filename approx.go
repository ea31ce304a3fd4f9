package ultraviolet

import "github.com/Frizi/ultraviolet/internal/approx"

const (
	// DefaultEpsilon is the float32 machine epsilon used by ApproxEq.
	DefaultEpsilon = approx.DefaultEpsilon
	// DefaultMaxUlps is the ULP distance used by UlpsApproxEq.
	DefaultMaxUlps = approx.DefaultMaxUlps
)

func absDiffEq(a, b Aggregate, epsilon float32) bool {
	var x, y [maxArity]float32
	return approx.All(a.appendScalars(x[:0]), b.appendScalars(y[:0]), func(p, q float32) bool {
		return approx.AbsDiffEq(p, q, epsilon)
	})
}

func ulpsEq(a, b Aggregate, epsilon float32, maxUlps uint32) bool {
	var x, y [maxArity]float32
	return approx.All(a.appendScalars(x[:0]), b.appendScalars(y[:0]), func(p, q float32) bool {
		return approx.UlpsEq(p, q, epsilon, maxUlps)
	})
}

// AbsDiffEq reports whether every component differs from its counterpart by
// at most epsilon.
func (v Vec2) AbsDiffEq(o Vec2, epsilon float32) bool     { return absDiffEq(v, o, epsilon) }
func (v Vec3) AbsDiffEq(o Vec3, epsilon float32) bool     { return absDiffEq(v, o, epsilon) }
func (v Vec4) AbsDiffEq(o Vec4, epsilon float32) bool     { return absDiffEq(v, o, epsilon) }
func (b Bivec2) AbsDiffEq(o Bivec2, epsilon float32) bool { return absDiffEq(b, o, epsilon) }
func (b Bivec3) AbsDiffEq(o Bivec3, epsilon float32) bool { return absDiffEq(b, o, epsilon) }
func (r Rotor2) AbsDiffEq(o Rotor2, epsilon float32) bool { return absDiffEq(r, o, epsilon) }
func (r Rotor3) AbsDiffEq(o Rotor3, epsilon float32) bool { return absDiffEq(r, o, epsilon) }
func (m Mat2) AbsDiffEq(o Mat2, epsilon float32) bool     { return absDiffEq(m, o, epsilon) }
func (m Mat3) AbsDiffEq(o Mat3, epsilon float32) bool     { return absDiffEq(m, o, epsilon) }
func (m Mat4) AbsDiffEq(o Mat4, epsilon float32) bool     { return absDiffEq(m, o, epsilon) }

// AbsDiffNe is the negation of AbsDiffEq.
func (v Vec2) AbsDiffNe(o Vec2, epsilon float32) bool     { return !absDiffEq(v, o, epsilon) }
func (v Vec3) AbsDiffNe(o Vec3, epsilon float32) bool     { return !absDiffEq(v, o, epsilon) }
func (v Vec4) AbsDiffNe(o Vec4, epsilon float32) bool     { return !absDiffEq(v, o, epsilon) }
func (b Bivec2) AbsDiffNe(o Bivec2, epsilon float32) bool { return !absDiffEq(b, o, epsilon) }
func (b Bivec3) AbsDiffNe(o Bivec3, epsilon float32) bool { return !absDiffEq(b, o, epsilon) }
func (r Rotor2) AbsDiffNe(o Rotor2, epsilon float32) bool { return !absDiffEq(r, o, epsilon) }
func (r Rotor3) AbsDiffNe(o Rotor3, epsilon float32) bool { return !absDiffEq(r, o, epsilon) }
func (m Mat2) AbsDiffNe(o Mat2, epsilon float32) bool     { return !absDiffEq(m, o, epsilon) }
func (m Mat3) AbsDiffNe(o Mat3, epsilon float32) bool     { return !absDiffEq(m, o, epsilon) }
func (m Mat4) AbsDiffNe(o Mat4, epsilon float32) bool     { return !absDiffEq(m, o, epsilon) }

// UlpsEq compares component-wise: within epsilon, or with equal signs and
// at most maxUlps representable floats apart.
func (v Vec2) UlpsEq(o Vec2, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(v, o, epsilon, maxUlps)
}

func (v Vec3) UlpsEq(o Vec3, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(v, o, epsilon, maxUlps)
}

func (v Vec4) UlpsEq(o Vec4, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(v, o, epsilon, maxUlps)
}

func (b Bivec2) UlpsEq(o Bivec2, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(b, o, epsilon, maxUlps)
}

func (b Bivec3) UlpsEq(o Bivec3, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(b, o, epsilon, maxUlps)
}

func (r Rotor2) UlpsEq(o Rotor2, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(r, o, epsilon, maxUlps)
}

func (r Rotor3) UlpsEq(o Rotor3, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(r, o, epsilon, maxUlps)
}

func (m Mat2) UlpsEq(o Mat2, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(m, o, epsilon, maxUlps)
}

func (m Mat3) UlpsEq(o Mat3, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(m, o, epsilon, maxUlps)
}

func (m Mat4) UlpsEq(o Mat4, epsilon float32, maxUlps uint32) bool {
	return ulpsEq(m, o, epsilon, maxUlps)
}

// UlpsNe is the negation of UlpsEq.
func (v Vec2) UlpsNe(o Vec2, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(v, o, epsilon, maxUlps)
}

func (v Vec3) UlpsNe(o Vec3, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(v, o, epsilon, maxUlps)
}

func (v Vec4) UlpsNe(o Vec4, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(v, o, epsilon, maxUlps)
}

func (b Bivec2) UlpsNe(o Bivec2, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(b, o, epsilon, maxUlps)
}

func (b Bivec3) UlpsNe(o Bivec3, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(b, o, epsilon, maxUlps)
}

func (r Rotor2) UlpsNe(o Rotor2, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(r, o, epsilon, maxUlps)
}

func (r Rotor3) UlpsNe(o Rotor3, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(r, o, epsilon, maxUlps)
}

func (m Mat2) UlpsNe(o Mat2, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(m, o, epsilon, maxUlps)
}

func (m Mat3) UlpsNe(o Mat3, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(m, o, epsilon, maxUlps)
}

func (m Mat4) UlpsNe(o Mat4, epsilon float32, maxUlps uint32) bool {
	return !ulpsEq(m, o, epsilon, maxUlps)
}

// ApproxEq is AbsDiffEq with DefaultEpsilon.
func (v Vec2) ApproxEq(o Vec2) bool     { return absDiffEq(v, o, DefaultEpsilon) }
func (v Vec3) ApproxEq(o Vec3) bool     { return absDiffEq(v, o, DefaultEpsilon) }
func (v Vec4) ApproxEq(o Vec4) bool     { return absDiffEq(v, o, DefaultEpsilon) }
func (b Bivec2) ApproxEq(o Bivec2) bool { return absDiffEq(b, o, DefaultEpsilon) }
func (b Bivec3) ApproxEq(o Bivec3) bool { return absDiffEq(b, o, DefaultEpsilon) }
func (r Rotor2) ApproxEq(o Rotor2) bool { return absDiffEq(r, o, DefaultEpsilon) }
func (r Rotor3) ApproxEq(o Rotor3) bool { return absDiffEq(r, o, DefaultEpsilon) }
func (m Mat2) ApproxEq(o Mat2) bool     { return absDiffEq(m, o, DefaultEpsilon) }
func (m Mat3) ApproxEq(o Mat3) bool     { return absDiffEq(m, o, DefaultEpsilon) }
func (m Mat4) ApproxEq(o Mat4) bool     { return absDiffEq(m, o, DefaultEpsilon) }

// UlpsApproxEq is UlpsEq with DefaultEpsilon and DefaultMaxUlps.
func (v Vec2) UlpsApproxEq(o Vec2) bool     { return ulpsEq(v, o, DefaultEpsilon, DefaultMaxUlps) }
func (v Vec3) UlpsApproxEq(o Vec3) bool     { return ulpsEq(v, o, DefaultEpsilon, DefaultMaxUlps) }
func (v Vec4) UlpsApproxEq(o Vec4) bool     { return ulpsEq(v, o, DefaultEpsilon, DefaultMaxUlps) }
func (b Bivec2) UlpsApproxEq(o Bivec2) bool { return ulpsEq(b, o, DefaultEpsilon, DefaultMaxUlps) }
func (b Bivec3) UlpsApproxEq(o Bivec3) bool { return ulpsEq(b, o, DefaultEpsilon, DefaultMaxUlps) }
func (r Rotor2) UlpsApproxEq(o Rotor2) bool { return ulpsEq(r, o, DefaultEpsilon, DefaultMaxUlps) }
func (r Rotor3) UlpsApproxEq(o Rotor3) bool { return ulpsEq(r, o, DefaultEpsilon, DefaultMaxUlps) }
func (m Mat2) UlpsApproxEq(o Mat2) bool     { return ulpsEq(m, o, DefaultEpsilon, DefaultMaxUlps) }
func (m Mat3) UlpsApproxEq(o Mat3) bool     { return ulpsEq(m, o, DefaultEpsilon, DefaultMaxUlps) }
func (m Mat4) UlpsApproxEq(o Mat4) bool     { return ulpsEq(m, o, DefaultEpsilon, DefaultMaxUlps) }
