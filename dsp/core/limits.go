package core

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of calculation precisions used for time and amplitude
// arithmetic.
type Float interface {
	constraints.Float
}

// Sample is the set of output sample representations. Any fixed-width integer
// or floating-point type qualifies.
type Sample interface {
	constraints.Integer | constraints.Float
}

func bitSize[T Sample]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsFloatType reports whether S is a floating-point type.
func IsFloatType[S Sample]() bool {
	half := 0.5
	return S(half) != 0
}

// IsSignedType reports whether S can represent negative values.
func IsSignedType[S Sample]() bool {
	var zero S
	return zero-1 < zero
}

// MaxFinite returns the largest finite value representable by F.
func MaxFinite[F Float]() F {
	m := math.MaxFloat64
	if bitSize[F]() == 32 {
		m = math.MaxFloat32
	}
	return F(m)
}

// MinNormal returns the smallest positive normal value representable by F.
func MinNormal[F Float]() F {
	m := 0x1p-1022
	if bitSize[F]() == 32 {
		m = 0x1p-126
	}
	return F(m)
}

// IsNormal reports whether v is finite, non-zero and not subnormal.
func IsNormal[F Float](v F) bool {
	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return math.Abs(x) >= float64(MinNormal[F]())
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite[F Float](v F) bool {
	x := float64(v)
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Bounds returns the minimum and maximum values of S. For floating-point
// types these are the infinities.
func Bounds[S Sample]() (lo, hi S) {
	if IsFloatType[S]() {
		inf := math.Inf(1)
		return S(-inf), S(inf)
	}

	shift := 64 - bitSize[S]()
	if IsSignedType[S]() {
		hi64 := int64(math.MaxInt64) >> shift
		return S(-hi64 - 1), S(hi64)
	}

	return 0, S(uint64(math.MaxUint64) >> shift)
}
