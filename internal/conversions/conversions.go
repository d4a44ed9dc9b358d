// Package conversions holds unsafe conversions that avoid copies.
package conversions

import (
	"unsafe"
)

// ByteSlice2String coverts bs to a string. It is no longer safe to modify bs after this.
// This prevents having to make a copy of bs.
func ByteSlice2String(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(bs), len(bs))
}
