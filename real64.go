//go:build scalar_double

package scalar

import "math"

// DoublePrecision reports if this build was made with the "scalar_double" tag.
const DoublePrecision = true

type (
	// Real is the working floating point type. With the "scalar_double" build tag this is F64.
	Real = F64
	// RealBits is the unsigned integer with the same width as Real.
	RealBits = U64
)

const (
	// MaxReal is the largest finite Real.
	MaxReal Real = math.MaxFloat64
	// SmallestNonzeroReal is the smallest positive, non-zero Real.
	SmallestNonzeroReal Real = math.SmallestNonzeroFloat64
)

// RealEpsilon is the difference between 1 and the next representable Real.
var RealEpsilon = math.Nextafter(1, 2) - 1

// RealToBits returns the IEEE 754 binary representation of r.
func RealToBits(r Real) RealBits {
	return math.Float64bits(r)
}

// RealFromBits is the inverse of RealToBits.
func RealFromBits(b RealBits) Real {
	return math.Float64frombits(b)
}
