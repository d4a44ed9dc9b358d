// Package scalar is the numeric vocabulary shared by the rest of the codebase. It provides one
// name for every fixed width scalar type, a build-time selected working precision (Real) and
// a set of constraints that generic code uses to restrict its type parameters.
//
// Real defaults to single precision. Building with the "scalar_double" tag switches Real to
// float64 and RealBits to uint64:
//
//	go build -tags scalar_double ./...
package scalar

import (
	"unsafe"
)

// Canonical scalar types. These are aliases, so an I32 is an int32 and can be passed anywhere
// an int32 is accepted.
type (
	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64

	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64

	F32 = float32
	F64 = float64

	// Size is the platform native unsigned size type. It is 4 bytes on 32-bit targets and
	// 8 bytes on 64-bit targets, the same as Go's uint.
	Size = uint
)

// Sizes in bytes of the canonical types.
const (
	I8Size  = unsafe.Sizeof(I8(0))
	I16Size = unsafe.Sizeof(I16(0))
	I32Size = unsafe.Sizeof(I32(0))
	I64Size = unsafe.Sizeof(I64(0))
	U8Size  = unsafe.Sizeof(U8(0))
	U16Size = unsafe.Sizeof(U16(0))
	U32Size = unsafe.Sizeof(U32(0))
	U64Size = unsafe.Sizeof(U64(0))
	F32Size = unsafe.Sizeof(F32(0))
	F64Size = unsafe.Sizeof(F64(0))
	// SizeSize is the width of Size on the build target.
	SizeSize = unsafe.Sizeof(Size(0))
)

// RealSize is the size of Real in bytes.
const RealSize = unsafe.Sizeof(Real(0))

// RealBitSize is the size of Real in bits.
const RealBitSize = RealSize * 8

// Real and RealBits must be the same width so that one can be reinterpreted as the other.
// A mismatch makes the index below either negative or out of range, which fails the build.
var _ = [1]struct{}{}[unsafe.Sizeof(Real(0))-unsafe.Sizeof(RealBits(0))]

// Fixed widths that the rest of the codebase relies on.
var (
	_ = [1]struct{}{}[I8Size-1]
	_ = [1]struct{}{}[I16Size-2]
	_ = [1]struct{}{}[I32Size-4]
	_ = [1]struct{}{}[I64Size-8]
	_ = [1]struct{}{}[U8Size-1]
	_ = [1]struct{}{}[U16Size-2]
	_ = [1]struct{}{}[U32Size-4]
	_ = [1]struct{}{}[U64Size-8]
	_ = [1]struct{}{}[F32Size-4]
	_ = [1]struct{}{}[F64Size-8]
)
