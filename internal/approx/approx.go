// Package approx holds the float32 comparisons aggregate equality folds over.
package approx

import "math"

// DefaultEpsilon is the float32 machine epsilon, 2^-23.
const DefaultEpsilon float32 = 1.0 / (1 << 23)

// DefaultMaxUlps is the default distance in units of least precision.
const DefaultMaxUlps uint32 = 4

// AbsDiffEq reports |a-b| <= epsilon. The difference of two equal
// infinities is NaN, so infinities only compare equal through UlpsEq.
func AbsDiffEq(a, b, epsilon float32) bool {
	return abs(a-b) <= epsilon
}

// UlpsEq reports whether a and b are within epsilon, or failing that,
// have the same sign and lie at most maxUlps representable values apart.
func UlpsEq(a, b, epsilon float32, maxUlps uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return false
	}
	if a != a || b != b {
		return false
	}
	ia, ib := int64(math.Float32bits(a)), int64(math.Float32bits(b))
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d <= int64(maxUlps)
}

// All folds cmp over paired components; lengths must match.
func All(a, b []float32, cmp func(x, y float32) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !cmp(a[i], b[i]) {
			return false
		}
	}
	return true
}

func abs(f float32) float32 { return math.Float32frombits(math.Float32bits(f) &^ (1 << 31)) }
