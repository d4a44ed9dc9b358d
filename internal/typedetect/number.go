// Package typedetect classifies a numeric type parameter at runtime. It exists for types that
// a type switch cannot see through, such as "type Meters float32".
package typedetect

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number represents all int, uint and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Size returns the width of T in bytes.
func Size[T Number]() uintptr {
	var t T
	return unsafe.Sizeof(t)
}

// fromBits returns a T whose memory holds the low Size[T]() bytes of v.
func fromBits[T Number](v uint64) T {
	var t T
	switch unsafe.Sizeof(t) {
	case 1:
		*(*uint8)(unsafe.Pointer(&t)) = uint8(v)
	case 2:
		*(*uint16)(unsafe.Pointer(&t)) = uint16(v)
	case 4:
		*(*uint32)(unsafe.Pointer(&t)) = uint32(v)
	case 8:
		*(*uint64)(unsafe.Pointer(&t)) = v
	}
	return t
}

// IsFloat returns true if T is a floating point type. Only a float can hold a value that is
// not equal to itself.
func IsFloat[T Number]() bool {
	var nan T
	switch Size[T]() {
	case 4:
		nan = fromBits[T](0x7FC00000)
	case 8:
		nan = fromBits[T](0x7FF8000000000000)
	default:
		return false
	}
	return nan != nan
}

// IsSignedInteger returns true if T is a signed integer type: with only the top bit set, the
// value is negative.
func IsSignedInteger[T Number]() bool {
	if IsFloat[T]() {
		return false
	}
	return fromBits[T](1<<(8*Size[T]()-1)) < 0
}

// IsUnsignedInteger returns true if T is an unsigned integer type.
func IsUnsignedInteger[T Number]() bool {
	return !IsFloat[T]() && !IsSignedInteger[T]()
}
