// Package binary encodes the scalar types in little endian byte order using generics. The slice
// functions panic if the slice is too short, the same as encoding/binary. The io functions
// return io.EOF if nothing was read and io.ErrUnexpectedEOF on a partial read.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/bearlytools/scalar"
)

// Enc is the little-endian binary encoder. Do not change this.
var Enc = binary.LittleEndian

// Size returns the number of bytes T occupies when encoded.
func Size[T scalar.Arithmetic]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

// Get decodes an integer from the start of b.
func Get[T scalar.Integral](b []byte) T {
	switch Size[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(Enc.Uint16(b))
	case 4:
		return T(Enc.Uint32(b))
	case 8:
		return T(Enc.Uint64(b))
	}
	var t T
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", t))
}

// Put encodes v at the start of b.
func Put[T scalar.Integral](b []byte, v T) {
	switch Size[T]() {
	case 1:
		b[0] = byte(v)
	case 2:
		Enc.PutUint16(b, uint16(v))
	case 4:
		Enc.PutUint32(b, uint32(v))
	case 8:
		Enc.PutUint64(b, uint64(v))
	default:
		panic(fmt.Sprintf("unsupported type that passed the type constraint %T", v))
	}
}

// GetFloat decodes an IEEE 754 float from the start of b.
func GetFloat[F scalar.Float](b []byte) F {
	if Size[F]() == 4 {
		return F(math.Float32frombits(Enc.Uint32(b)))
	}
	return F(math.Float64frombits(Enc.Uint64(b)))
}

// PutFloat encodes v at the start of b as an IEEE 754 float.
func PutFloat[F scalar.Float](b []byte, v F) {
	if Size[F]() == 4 {
		Enc.PutUint32(b, math.Float32bits(float32(v)))
		return
	}
	Enc.PutUint64(b, math.Float64bits(float64(v)))
}

// GetReal decodes a scalar.Real. b must hold at least scalar.RealSize bytes.
func GetReal(b []byte) scalar.Real {
	return scalar.RealFromBits(Get[scalar.RealBits](b))
}

// PutReal encodes r. b must hold at least scalar.RealSize bytes.
func PutReal(b []byte, r scalar.Real) {
	Put(b, scalar.RealToBits(r))
}

// GetBuffer reads an integer from r.
func GetBuffer[T scalar.Integral](r io.Reader) (T, error) {
	var b [8]byte
	n := Size[T]()
	if _, err := io.ReadFull(r, b[:n]); err != nil {
		return 0, err
	}
	return Get[T](b[:n]), nil
}

// PutBuffer writes an integer to w.
func PutBuffer[T scalar.Integral](w io.Writer, v T) error {
	var b [8]byte
	n := Size[T]()
	Put(b[:n], v)
	_, err := w.Write(b[:n])
	return err
}

// ReadFloat reads an IEEE 754 float from r.
func ReadFloat[F scalar.Float](r io.Reader) (F, error) {
	var b [8]byte
	n := Size[F]()
	if _, err := io.ReadFull(r, b[:n]); err != nil {
		return 0, err
	}
	return GetFloat[F](b[:n]), nil
}

// WriteFloat writes v to w as an IEEE 754 float.
func WriteFloat[F scalar.Float](w io.Writer, v F) error {
	var b [8]byte
	n := Size[F]()
	PutFloat(b[:n], v)
	_, err := w.Write(b[:n])
	return err
}

// ReadReal reads a scalar.Real from r.
func ReadReal(r io.Reader) (scalar.Real, error) {
	return ReadFloat[scalar.Real](r)
}

// WriteReal writes a scalar.Real to w.
func WriteReal(w io.Writer, v scalar.Real) error {
	return WriteFloat(w, v)
}
