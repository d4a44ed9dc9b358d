// Package bits provides bit field manipulation over the unsigned scalar types and exposes the
// IEEE 754 layout of scalar.Real through scalar.RealBits. This is not a replacement for math/bits.
package bits

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/bearlytools/scalar"
)

// Width returns the width of U in bits.
func Width[U scalar.Unsigned]() uint64 {
	var u U
	return uint64(unsafe.Sizeof(u)) * 8
}

// Mask creates a mask for setting, getting and clearing a set of bits.
// start is the bit location you wish to start at and end is the bit you wish to end at (exclusive).
// Index starts at 0. So Mask(1, 4) will create a mask that includes bits at location 1 to 3.
// If start >= end or end is past the width of U, this will panic.
func Mask[U scalar.Unsigned](start, end uint64) U {
	if start >= end {
		panic("start cannot be >= end")
	}
	if w := Width[U](); end > w {
		panic(fmt.Sprintf("end %d exceeds width %d", end, w))
	}

	width := end - start
	if width == 64 {
		// Shifting a uint64 by 64 is always 0. end was checked against Width, so U is 64 bits.
		return ^U(0)
	}
	return U((uint64(1)<<width - 1) << start)
}

// SetValue stores "val" in unsigned number "store" starting at bit "start" and
// ending at bit "end" (exclusive). Bits already in the range are cleared first. Bits of val
// that do not fit in the range are dropped. If start >= end, this panics.
func SetValue[I, U scalar.Unsigned](val I, store U, start, end uint64) U {
	m := Mask[U](start, end)
	return store&^m | (U(val)<<start)&m
}

// GetValue retrieves a value stored with SetValue. bitMask is the mask for the range and start
// is the first bit of the range.
func GetValue[U, U1 scalar.Unsigned](store U, bitMask U, start uint64) U1 {
	return U1((store & bitMask) >> start)
}

func checkPos[U scalar.Unsigned](op string, pos uint8) {
	if w := Width[U](); uint64(pos) >= w {
		panic(fmt.Sprintf("can't %s() a %d bit value at position %d", op, w, pos))
	}
}

// GetBit gets a single bit value from "store" in position "pos". true if set, false if not.
func GetBit[U scalar.Unsigned](store U, pos uint8) bool {
	checkPos[U]("GetBit", pos)
	return store&(1<<pos) != 0
}

// SetBit sets a single bit in "store" at position "pos" to value "val".
func SetBit[U scalar.Unsigned](store U, pos uint8, val bool) U {
	checkPos[U]("SetBit", pos)
	if val {
		return store | (1 << pos)
	}
	return store &^ (1 << pos)
}

// ClearBit clears the bit at pos in store.
func ClearBit[U scalar.Unsigned](store U, pos uint8) U {
	return SetBit(store, pos, false)
}

// ClearBits clears all bits from "from" until "to" (exclusive).
func ClearBits[U scalar.Unsigned](store U, from, to uint8) U {
	if from >= to {
		return store
	}
	return store &^ Mask[U](uint64(from), uint64(to))
}

// String renders store in binary, most significant bit first, padded to the width of U.
func String[U scalar.Unsigned](store U) string {
	w := int(Width[U]())
	buff := strings.Builder{}
	buff.Grow(w)
	for i := w - 1; i >= 0; i-- {
		if store&(1<<uint(i)) != 0 {
			buff.WriteByte('1')
		} else {
			buff.WriteByte('0')
		}
	}
	return buff.String()
}
