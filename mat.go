package ultraviolet

// Mat2 is a column-major 2x2 matrix.
type Mat2 struct {
	Cols [2]Vec2
}

// Mat3 is a column-major 3x3 matrix.
type Mat3 struct {
	Cols [3]Vec3
}

// Mat4 is a column-major 4x4 matrix.
type Mat4 struct {
	Cols [4]Vec4
}

func NewMat2(c0, c1 Vec2) Mat2         { return Mat2{Cols: [2]Vec2{c0, c1}} }
func NewMat3(c0, c1, c2 Vec3) Mat3     { return Mat3{Cols: [3]Vec3{c0, c1, c2}} }
func NewMat4(c0, c1, c2, c3 Vec4) Mat4 { return Mat4{Cols: [4]Vec4{c0, c1, c2, c3}} }

func Mat2Identity() Mat2 { return NewMat2(Vec2UnitX(), Vec2UnitY()) }
func Mat3Identity() Mat3 { return NewMat3(Vec3UnitX(), Vec3UnitY(), Vec3UnitZ()) }
func Mat4Identity() Mat4 { return NewMat4(Vec4UnitX(), Vec4UnitY(), Vec4UnitZ(), Vec4UnitW()) }

// Diagonal constructors place d on the main diagonal.
func Mat2Diagonal(d Vec2) Mat2 { return NewMat2(Vec2{X: d.X}, Vec2{Y: d.Y}) }
func Mat3Diagonal(d Vec3) Mat3 { return NewMat3(Vec3{X: d.X}, Vec3{Y: d.Y}, Vec3{Z: d.Z}) }
func Mat4Diagonal(d Vec4) Mat4 {
	return NewMat4(Vec4{X: d.X}, Vec4{Y: d.Y}, Vec4{Z: d.Z}, Vec4{W: d.W})
}
