package ultraviolet_test

import (
	"bytes"
	"testing"

	uv "github.com/Frizi/ultraviolet"
)

func BenchmarkDecode_Mat4_JSON(b *testing.B) {
	var buf bytes.Buffer
	if err := uv.Encode(uv.JSONWriter(&buf), uv.Mat4Identity()); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := uv.Decode[uv.Mat4](uv.JSONBytes(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Vec3_Structured_CBOR(b *testing.B) {
	var buf bytes.Buffer
	if err := uv.Encode(uv.CBORWriter(&buf), uv.NewVec3(1, 2, 3), uv.EncodeOpt{Policy: uv.PolicyStructured}); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := uv.Decode[uv.Vec3](uv.CBORBytes(data), structured); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode_Vec4_JSON(b *testing.B) {
	var buf bytes.Buffer
	v := uv.NewVec4(1, 2, 3, 4)
	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := uv.Encode(uv.JSONWriter(&buf), v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalBinary_Mat4(b *testing.B) {
	m := uv.Mat4Identity()
	dst := make([]byte, 0, 64)
	b.ReportAllocs()
	for b.Loop() {
		dst, _ = m.AppendBinary(dst[:0])
	}
}
