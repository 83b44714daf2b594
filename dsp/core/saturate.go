package core

import "math"

// float32Overflow is MaxFloat32 plus half an ulp. Smaller magnitudes round to
// a finite float32; this one and larger round to infinity.
const float32Overflow = 0x1.ffffffp127

// Saturate converts v into the sample type S.
//
// Integer targets truncate toward zero and clamp to the range of S. NaN has
// no integer representation, so ok is false in that case.
//
// Floating-point targets keep NaN and infinities and round to nearest.
// Finite values that round beyond the finite range of S become the infinity
// of matching sign, which are the extreme values of a floating-point type.
func Saturate[F Float, S Sample](v F) (s S, ok bool) {
	x := float64(v)

	if IsFloatType[S]() {
		if bitSize[S]() == 32 && math.Abs(x) >= float32Overflow && !math.IsInf(x, 0) {
			return S(math.Copysign(math.Inf(1), x)), true
		}
		return S(v), true
	}

	if math.IsNaN(x) {
		return s, false
	}

	lo, hi := Bounds[S]()
	n := bitSize[S]()
	tx := math.Trunc(x)

	if IsSignedType[S]() {
		limit := math.Ldexp(1, n-1)
		switch {
		case tx >= limit:
			return hi, true
		case tx < -limit:
			return lo, true
		default:
			return S(int64(tx)), true
		}
	}

	limit := math.Ldexp(1, n)
	switch {
	case tx >= limit:
		return hi, true
	case tx < 0:
		return lo, true
	default:
		return S(uint64(tx)), true
	}
}
