package ultraviolet

import (
	"fmt"
	"unsafe"
)

// POD lists the aggregates whose memory is a packed run of float32: no
// padding, no invalid bit patterns, nothing to finalize. Any byte pattern of
// the right length is a valid value.
type POD interface {
	Vec2 | Vec3 | Vec4 | Bivec2 | Bivec3 | Rotor2 | Rotor3 | Mat2 | Mat3 | Mat4
}

// Layout is pinned at compile time: each index expression fails to compile
// if the size differs from arity*4 bytes.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Vec2{})-2*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Vec3{})-3*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Vec4{})-4*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Bivec2{})-1*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Bivec3{})-3*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Rotor2{})-2*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Rotor3{})-4*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat2{})-4*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat3{})-9*4]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4{})-16*4]
)

// PodCastError describes why a byte slice cannot be viewed as aggregates.
type PodCastError int

const (
	// SizeMismatch: the input length is not exactly the size of one value.
	SizeMismatch PodCastError = iota + 1
	// OutputSliceWouldHaveSlop: the input length is not a multiple of the
	// element size.
	OutputSliceWouldHaveSlop
	// TargetAlignmentGreaterAndInputNotAligned: the input is not aligned for
	// float32 access.
	TargetAlignmentGreaterAndInputNotAligned
)

func (e PodCastError) Error() string {
	switch e {
	case SizeMismatch:
		return "ultraviolet: pod cast: size mismatch"
	case OutputSliceWouldHaveSlop:
		return "ultraviolet: pod cast: output slice would have slop"
	case TargetAlignmentGreaterAndInputNotAligned:
		return "ultraviolet: pod cast: input not aligned"
	default:
		return fmt.Sprintf("ultraviolet: pod cast error %d", int(e))
	}
}

// SizeError reports a binary encoding of the wrong length.
type SizeError struct {
	Type string
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("ultraviolet: %s needs %d bytes, got %d", e.Type, e.Want, e.Got)
}

func (e *SizeError) Unwrap() error { return SizeMismatch }

// Bytes views v as its raw bytes in native byte order. The slice aliases v.
func Bytes[T POD](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Zeroed returns the all-zero value of T.
func Zeroed[T POD]() T {
	var z T
	return z
}

// FromBytes copies b into a new T. b must be exactly the size of T; no
// alignment is required.
func FromBytes[T POD](b []byte) (T, error) {
	var v T
	if uintptr(len(b)) != unsafe.Sizeof(v) {
		return v, SizeMismatch
	}
	copy(Bytes(&v), b)
	return v, nil
}

// CastSlice views b as a slice of T without copying. b must be a whole
// number of values and aligned for float32.
func CastSlice[T POD](b []byte) ([]T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if len(b) == 0 {
		return nil, nil
	}
	if uintptr(len(b))%size != 0 {
		return nil, OutputSliceWouldHaveSlop
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, TargetAlignmentGreaterAndInputNotAligned
	}
	return unsafe.Slice((*T)(p), uintptr(len(b))/size), nil
}

// SliceBytes views vs as raw bytes without copying.
func SliceBytes[T POD](vs []T) []byte {
	if len(vs) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), uintptr(len(vs))*unsafe.Sizeof(zero))
}
