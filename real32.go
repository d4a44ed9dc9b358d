//go:build !scalar_double

package scalar

import "math"

// DoublePrecision reports if this build was made with the "scalar_double" tag.
const DoublePrecision = false

type (
	// Real is the working floating point type. Without the "scalar_double" build tag this is F32.
	Real = F32
	// RealBits is the unsigned integer with the same width as Real.
	RealBits = U32
)

const (
	// MaxReal is the largest finite Real.
	MaxReal Real = math.MaxFloat32
	// SmallestNonzeroReal is the smallest positive, non-zero Real.
	SmallestNonzeroReal Real = math.SmallestNonzeroFloat32
)

// RealEpsilon is the difference between 1 and the next representable Real.
var RealEpsilon = math.Nextafter32(1, 2) - 1

// RealToBits returns the IEEE 754 binary representation of r.
func RealToBits(r Real) RealBits {
	return math.Float32bits(r)
}

// RealFromBits is the inverse of RealToBits.
func RealFromBits(b RealBits) Real {
	return math.Float32frombits(b)
}
