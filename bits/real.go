package bits

import (
	"fmt"
	"math"

	"github.com/bearlytools/scalar"
)

// Layout of scalar.Real. The exponent width is 8 for single precision and 11 for double.
const (
	ExponentBits = 8 + 3*(uint64(scalar.RealBitSize)/32-1)
	MantissaBits = uint64(scalar.RealBitSize) - 1 - ExponentBits
	ExponentBias = 1<<(ExponentBits-1) - 1

	// MaxExponent is the unbiased exponent used by infinities and NaNs.
	MaxExponent = ExponentBias + 1
	// MinExponent is the unbiased exponent used by zeros and subnormals.
	MinExponent = -ExponentBias
)

// Masks over scalar.RealBits for each field of a Real.
const (
	SignMask     scalar.RealBits = 1 << (scalar.RealBitSize - 1)
	ExponentMask scalar.RealBits = (1<<ExponentBits - 1) << MantissaBits
	MantissaMask scalar.RealBits = 1<<MantissaBits - 1
)

// Decompose splits r into its sign, unbiased exponent and mantissa fields. The implicit
// leading bit is not added to the mantissa.
func Decompose(r scalar.Real) (negative bool, exponent int, mantissa scalar.RealBits) {
	b := scalar.RealToBits(r)
	negative = b&SignMask != 0
	biased := GetValue[scalar.RealBits, uint64](b, ExponentMask, MantissaBits)
	exponent = int(biased) - ExponentBias
	mantissa = b & MantissaMask
	return negative, exponent, mantissa
}

// Compose is the inverse of Decompose. It panics if exponent is outside
// [MinExponent, MaxExponent] or mantissa does not fit in MantissaBits.
func Compose(negative bool, exponent int, mantissa scalar.RealBits) scalar.Real {
	if exponent < MinExponent || exponent > MaxExponent {
		panic(fmt.Sprintf("exponent %d is outside [%d, %d]", exponent, MinExponent, MaxExponent))
	}
	if mantissa&^MantissaMask != 0 {
		panic(fmt.Sprintf("mantissa %#x does not fit in %d bits", mantissa, MantissaBits))
	}

	var b scalar.RealBits
	b = SetValue(uint64(exponent+ExponentBias), b, MantissaBits, MantissaBits+ExponentBits)
	b |= mantissa
	if negative {
		b |= SignMask
	}
	return scalar.RealFromBits(b)
}

// NextUp returns the smallest Real greater than r. NaN and +Inf are returned unchanged.
func NextUp(r scalar.Real) scalar.Real {
	switch {
	case math.IsNaN(float64(r)), math.IsInf(float64(r), 1):
		return r
	case r == 0:
		return scalar.RealFromBits(1)
	}

	b := scalar.RealToBits(r)
	if r > 0 {
		b++
	} else {
		b--
	}
	return scalar.RealFromBits(b)
}

// ordered maps the bits of a Real onto an unsigned line where the order of the integers is
// the order of the Reals. -0 and +0 map to the same point.
func ordered(r scalar.Real) scalar.RealBits {
	b := scalar.RealToBits(r)
	if b&SignMask != 0 {
		return SignMask - (b &^ SignMask)
	}
	return SignMask + b
}

// ULPDistance returns the number of representable Reals between a and b, so adjacent
// values are 1 apart. If either is NaN, the maximum RealBits value is returned.
func ULPDistance(a, b scalar.Real) scalar.RealBits {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return ^scalar.RealBits(0)
	}
	oa, ob := ordered(a), ordered(b)
	if oa > ob {
		return oa - ob
	}
	return ob - oa
}
