// Package ultraviolet provides wire conformance for fixed-shape float32
// aggregates: 2/3/4-component vectors, bivectors, rotors and column-major
// 2x2/3x3/4x4 matrices.
//
//   - Structural (de)serialization over a token stream (Source/Sink) with
//     drivers for JSON, YAML and CBOR, plus the usual marshaler interfaces
//   - Tolerance equality (absolute epsilon and ULP flavors)
//   - Plain-old-data byte views and a little-endian binary layout
//
// Vectors and bivectors are named types: under PolicyStructured they encode
// as a map of field names and decode from either a map (any key order) or a
// sequence. Matrices and rotors are always sequences; matrices are written
// column by column. PolicyDense uses sequences for everything and is the
// default when built with -tags uvdense.
//
// Decode failures are typed (*ArityError, *UnknownFieldError,
// *DuplicateFieldError, *MissingFieldError, *InvalidTypeError,
// *InvalidValueError, *TrailingError) and convert into Issues via AsIssues.
//
// Typical usage:
//
//	v, err := ultraviolet.Decode[ultraviolet.Vec3](ultraviolet.JSONBytes(data))
//	err = ultraviolet.Encode(ultraviolet.YAMLWriter(w), v, ultraviolet.EncodeOpt{Policy: ultraviolet.PolicyDense})
//	ms, err := ultraviolet.DecodeSlice[ultraviolet.Mat4](ultraviolet.CBORBytes(data))
package ultraviolet
