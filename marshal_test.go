//go:build !uvdense

package ultraviolet_test

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	uv "github.com/Frizi/ultraviolet"
)

type transform struct {
	Name     string    `json:"name" yaml:"name" cbor:"name"`
	Position uv.Vec3   `json:"position" yaml:"position" cbor:"position"`
	Rotation uv.Rotor3 `json:"rotation" yaml:"rotation" cbor:"rotation"`
	Basis    uv.Mat2   `json:"basis" yaml:"basis" cbor:"basis"`
}

func sampleTransform() transform {
	return transform{
		Name:     "node",
		Position: uv.NewVec3(1, 2, 3),
		Rotation: uv.Rotor3Identity(),
		Basis:    uv.Mat2Identity(),
	}
}

func TestMarshalJSON_Embedded(t *testing.T) {
	b, err := json.Marshal(sampleTransform())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"node","position":{"x":1,"y":2,"z":3},"rotation":[1,0,0,0],"basis":[1,0,0,1]}`, string(b))

	var back transform
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, sampleTransform(), back)
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	var v uv.Vec3
	err := json.Unmarshal([]byte(`{"x":1,"y":2}`), &v)
	var me *uv.MissingFieldError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "z", me.Name)
}

func TestMarshalYAML_Embedded(t *testing.T) {
	b, err := yaml.Marshal(sampleTransform())
	require.NoError(t, err)
	assert.YAMLEq(t, "name: node\nposition: {x: 1.0, y: 2.0, z: 3.0}\nrotation: [1.0, 0.0, 0.0, 0.0]\nbasis: [1.0, 0.0, 0.0, 1.0]\n", string(b))

	var back transform
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, sampleTransform(), back)
}

func TestUnmarshalYAML_DuplicateKey(t *testing.T) {
	var v uv.Vec2
	err := yaml.Unmarshal([]byte("x: 1\nx: 2\ny: 3\n"), &v)
	require.Error(t, err)
}

func TestUnmarshalYAML_Sequence(t *testing.T) {
	var v uv.Vec2
	require.NoError(t, yaml.Unmarshal([]byte("[1, 0x10]"), &v))
	assert.Equal(t, uv.NewVec2(1, 16), v)
}

func TestMarshalCBOR_Bytes(t *testing.T) {
	b, err := cbor.Marshal(uv.NewVec2(1, 2))
	require.NoError(t, err)
	want := []byte{
		0xa2,
		0x61, 'x', 0xfa, 0x3f, 0x80, 0x00, 0x00,
		0x61, 'y', 0xfa, 0x40, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, b)

	var v uv.Vec2
	require.NoError(t, cbor.Unmarshal(b, &v))
	assert.Equal(t, uv.NewVec2(1, 2), v)
}

func TestMarshalCBOR_Embedded(t *testing.T) {
	b, err := cbor.Marshal(sampleTransform())
	require.NoError(t, err)
	var back transform
	require.NoError(t, cbor.Unmarshal(b, &back))
	assert.Equal(t, sampleTransform(), back)
}

func TestUnmarshalCBOR_IndefiniteAndHalfFloats(t *testing.T) {
	// indefinite-length array of a half float 1.0 and an integer 2
	in := []byte{0x9f, 0xf9, 0x3c, 0x00, 0x02, 0xff}
	var v uv.Vec2
	require.NoError(t, cbor.Unmarshal(in, &v))
	assert.Equal(t, uv.NewVec2(1, 2), v)
}

func TestUnmarshalCBOR_SelfDescribeTag(t *testing.T) {
	in := []byte{0xd9, 0xd9, 0xf7, 0x82, 0x01, 0x02}
	var v uv.Vec2
	require.NoError(t, v.UnmarshalCBOR(in))
	assert.Equal(t, uv.NewVec2(1, 2), v)

	got, err := uv.Decode[uv.Vec2](uv.CBORBytes(in))
	require.NoError(t, err)
	assert.Equal(t, uv.NewVec2(1, 2), got)
}

func TestUnmarshalCBOR_DuplicateKey(t *testing.T) {
	in := []byte{0xa3, 0x61, 'x', 0x01, 0x61, 'x', 0x01, 0x61, 'y', 0x02}
	var v uv.Vec2
	err := v.UnmarshalCBOR(in)
	var de *uv.DuplicateFieldError
	require.ErrorAs(t, err, &de)
}
