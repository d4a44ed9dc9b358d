package scalar

import (
	"golang.org/x/exp/constraints"
)

// Exact capabilities. These match a single type and do not accept types derived from it.
type (
	// BoolType is satisfied only by bool.
	BoolType interface{ bool }
	// U32Type is satisfied only by U32.
	U32Type interface{ U32 }
	// U64Type is satisfied only by U64.
	U64Type interface{ U64 }
	// F32Type is satisfied only by F32.
	F32Type interface{ F32 }
	// F64Type is satisfied only by F64.
	F64Type interface{ F64 }
)

// Broad capabilities. These accept any type whose underlying type is in the category, so
// "type Meters F32" is a Float.
type (
	// Signed is satisfied by the signed integer types.
	Signed = constraints.Signed
	// Unsigned is satisfied by the unsigned integer types, including uintptr.
	Unsigned = constraints.Unsigned
	// Integral is satisfied by every integer type.
	Integral = constraints.Integer
	// Float is satisfied by the floating point types.
	Float = constraints.Float
)

// Arithmetic is satisfied by every integral or floating point type.
type Arithmetic interface {
	Integral | Float
}

// Canonical is satisfied by bool, the canonical scalar types and any type defined on top of
// one of them.
type Canonical interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~uint
}
