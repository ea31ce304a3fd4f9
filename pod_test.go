package ultraviolet_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"

	uv "github.com/Frizi/ultraviolet"
)

func TestBytes_AliasesValue(t *testing.T) {
	v := uv.NewVec2(1, 2)
	b := uv.Bytes(&v)
	require.Len(t, b, 8)
	if !cpu.IsBigEndian {
		assert.Equal(t, "0000803f00000040", hex.EncodeToString(b))
	}
	b[0], b[1], b[2], b[3] = 0, 0, 0, 0
	assert.Equal(t, float32(0), v.X)
}

func TestFromBytes(t *testing.T) {
	m := uv.Mat3Identity()
	got, err := uv.FromBytes[uv.Mat3](uv.Bytes(&m))
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = uv.FromBytes[uv.Mat3](make([]byte, 35))
	assert.ErrorIs(t, err, uv.SizeMismatch)
}

func TestZeroed(t *testing.T) {
	assert.Equal(t, uv.Rotor3{}, uv.Zeroed[uv.Rotor3]())
	assert.Equal(t, uv.Mat4{}, uv.Zeroed[uv.Mat4]())
}

func TestCastSlice(t *testing.T) {
	vs := []uv.Vec4{uv.Vec4UnitX(), uv.Vec4UnitW()}
	raw := uv.SliceBytes(vs)
	require.Len(t, raw, 32)

	back, err := uv.CastSlice[uv.Vec4](raw)
	require.NoError(t, err)
	assert.Equal(t, vs, back)

	back[1].W = 9
	assert.Equal(t, float32(9), vs[1].W, "cast shares memory")

	empty, err := uv.CastSlice[uv.Vec4](nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Nil(t, uv.SliceBytes[uv.Vec2](nil))
}

func TestCastSlice_Errors(t *testing.T) {
	_, err := uv.CastSlice[uv.Vec3](make([]byte, 13))
	assert.ErrorIs(t, err, uv.OutputSliceWouldHaveSlop)

	// backing store of float32s, so one byte in is never 4-aligned
	b := uv.SliceBytes(make([]uv.Vec3, 2))
	_, err = uv.CastSlice[uv.Vec3](b[1:13])
	assert.ErrorIs(t, err, uv.TargetAlignmentGreaterAndInputNotAligned)
	assert.EqualError(t, err, "ultraviolet: pod cast: input not aligned")
}

func TestMarshalBinary_LittleEndian(t *testing.T) {
	b, err := uv.NewVec2(1, 2).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "0000803f00000040", hex.EncodeToString(b))

	out, err := uv.NewBivec2(-2).AppendBinary([]byte{0xaa})
	require.NoError(t, err)
	assert.Equal(t, "aa000000c0", hex.EncodeToString(out))

	var v uv.Vec2
	require.NoError(t, v.UnmarshalBinary(b))
	assert.Equal(t, uv.NewVec2(1, 2), v)
}

func TestMarshalBinary_Mat2_ColumnMajor(t *testing.T) {
	m := uv.NewMat2(uv.NewVec2(1, 2), uv.NewVec2(3, 4))
	b, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, uv.BinarySize(m), len(b))
	assert.Equal(t, "0000803f000000400000404000008040", hex.EncodeToString(b))
}

func TestUnmarshalBinary_SizeError(t *testing.T) {
	var r uv.Rotor3
	err := r.UnmarshalBinary(make([]byte, 12))
	var se *uv.SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Rotor3", se.Type)
	assert.Equal(t, 16, se.Want)
	assert.Equal(t, 12, se.Got)
	assert.ErrorIs(t, err, uv.SizeMismatch)
	assert.Equal(t, uv.Rotor3{}, r)
}
