package ultraviolet

// Bivec2 is a bivector in 2D: a single component on the xy plane.
type Bivec2 struct {
	XY float32
}

// Bivec3 is a bivector in 3D with components on the xy, xz and yz planes,
// in that order.
type Bivec3 struct {
	XY, XZ, YZ float32
}

func NewBivec2(xy float32) Bivec2         { return Bivec2{XY: xy} }
func NewBivec3(xy, xz, yz float32) Bivec3 { return Bivec3{XY: xy, XZ: xz, YZ: yz} }

func Bivec2UnitXY() Bivec2 { return Bivec2{XY: 1} }

func Bivec3UnitXY() Bivec3 { return Bivec3{XY: 1} }
func Bivec3UnitXZ() Bivec3 { return Bivec3{XZ: 1} }
func Bivec3UnitYZ() Bivec3 { return Bivec3{YZ: 1} }
