package ultraviolet

// Rotor2 is a scalar plus a 2D bivector. On the wire it is always the
// positional sequence [s, xy].
type Rotor2 struct {
	S  float32
	BV Bivec2
}

// Rotor3 is a scalar plus a 3D bivector, encoded as [s, xy, xz, yz].
type Rotor3 struct {
	S  float32
	BV Bivec3
}

func NewRotor2(s float32, bv Bivec2) Rotor2 { return Rotor2{S: s, BV: bv} }
func NewRotor3(s float32, bv Bivec3) Rotor3 { return Rotor3{S: s, BV: bv} }

// Rotor2Identity returns the rotor that rotates nothing.
func Rotor2Identity() Rotor2 { return Rotor2{S: 1} }

// Rotor3Identity returns the rotor that rotates nothing.
func Rotor3Identity() Rotor3 { return Rotor3{S: 1} }
