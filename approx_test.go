package ultraviolet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	uv "github.com/Frizi/ultraviolet"
	"github.com/Frizi/ultraviolet/approxtest"
)

func TestAbsDiffEq_Vec3_EveryComponent(t *testing.T) {
	a := uv.NewVec3(1, 2, 3)
	for i := range 3 {
		b := a
		switch i {
		case 0:
			b.X += 0.5
		case 1:
			b.Y += 0.5
		case 2:
			b.Z += 0.5
		}
		assert.False(t, a.AbsDiffEq(b, 0.25), "component %d", i)
		assert.True(t, a.AbsDiffNe(b, 0.25), "component %d", i)
		assert.True(t, a.AbsDiffEq(b, 0.5), "component %d", i)
	}
}

func TestAbsDiffEq_Mat4_ColumnOrder(t *testing.T) {
	m := uv.Mat4Identity()
	n := m
	n.Cols[3].X = 1e-7
	assert.True(t, m.ApproxEq(n))
	n.Cols[3].X = 1e-3
	assert.False(t, m.ApproxEq(n))
	approxtest.AssertAbsDiffEq(t, m, n, 1e-3)
}

func TestUlpsEq_Rotor3(t *testing.T) {
	r := uv.NewRotor3(100, uv.NewBivec3(0, 0, 0))
	s := r
	s.S = math.Nextafter32(100, 200)
	assert.False(t, r.ApproxEq(s))
	assert.True(t, r.UlpsApproxEq(s))
	assert.False(t, r.UlpsNe(s, uv.DefaultEpsilon, uv.DefaultMaxUlps))
	approxtest.AssertUlpsEq(t, r, s, uv.DefaultEpsilon, uv.DefaultMaxUlps)
	approxtest.AssertUlpsNe(t, r, s, uv.DefaultEpsilon, 0)
}

func TestApprox_NonFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	a := uv.NewVec2(inf, 0)
	assert.False(t, a.ApproxEq(a))
	assert.True(t, a.UlpsApproxEq(a))

	nan := uv.NewBivec2(float32(math.NaN()))
	assert.False(t, nan.UlpsApproxEq(nan))
	assert.True(t, nan.AbsDiffNe(nan, 1))
}

func TestApprox_Bivec2_Rotor2_Mat2(t *testing.T) {
	approxtest.AssertAbsDiffEq(t, uv.NewBivec2(1), uv.NewBivec2(1.05), 0.1)
	approxtest.AssertAbsDiffNe(t, uv.NewRotor2(1, uv.NewBivec2(0)), uv.NewRotor2(2, uv.NewBivec2(0)), 0.5)
	approxtest.AssertAbsDiffEq(t, uv.Mat2Diagonal(uv.Vec2Splat(2)), uv.NewMat2(uv.NewVec2(2, 0), uv.NewVec2(0, 2)), 0)
}
