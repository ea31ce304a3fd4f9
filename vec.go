package ultraviolet

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec2(x, y float32) Vec2       { return Vec2{X: x, Y: y} }
func NewVec3(x, y, z float32) Vec3    { return Vec3{X: x, Y: y, Z: z} }
func NewVec4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Broadcast constructors.
func Vec2Splat(s float32) Vec2 { return Vec2{s, s} }
func Vec3Splat(s float32) Vec3 { return Vec3{s, s, s} }
func Vec4Splat(s float32) Vec4 { return Vec4{s, s, s, s} }

func Vec2UnitX() Vec2 { return Vec2{X: 1} }
func Vec2UnitY() Vec2 { return Vec2{Y: 1} }

func Vec3UnitX() Vec3 { return Vec3{X: 1} }
func Vec3UnitY() Vec3 { return Vec3{Y: 1} }
func Vec3UnitZ() Vec3 { return Vec3{Z: 1} }

func Vec4UnitX() Vec4 { return Vec4{X: 1} }
func Vec4UnitY() Vec4 { return Vec4{Y: 1} }
func Vec4UnitZ() Vec4 { return Vec4{Z: 1} }
func Vec4UnitW() Vec4 { return Vec4{W: 1} }
