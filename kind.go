package scalar

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/bearlytools/scalar/errors"
	"github.com/bearlytools/scalar/internal/typedetect"
)

// Kind is a runtime descriptor for one of the canonical scalar types. Generic code should be
// constrained with the constraint types in this package; Kind is for tools and reporting.
type Kind uint8

const (
	KindUnknown Kind = 0
	KindBool    Kind = 1
	KindI8      Kind = 2
	KindI16     Kind = 3
	KindI32     Kind = 4
	KindI64     Kind = 5
	KindU8      Kind = 6
	KindU16     Kind = 7
	KindU32     Kind = 8
	KindU64     Kind = 9
	KindF32     Kind = 10
	KindF64     Kind = 11
	KindSize    Kind = 12
)

// ErrUnknownKind is returned by ParseKind when a name does not resolve to a Kind.
var ErrUnknownKind = errors.New("unknown scalar kind")

type capability uint16

const (
	capBool capability = 1 << iota
	capU32
	capU64
	capF32
	capF64
	capSigned
	capUnsigned
	capIntegral
	capFloat
)

type kindInfo struct {
	name   string
	goType string
	size   uintptr
	caps   capability
}

var kinds = [...]kindInfo{
	KindUnknown: {name: "unknown"},
	KindBool:    {name: "bool", goType: "bool", size: unsafe.Sizeof(false), caps: capBool},
	KindI8:      {name: "i8", goType: "int8", size: I8Size, caps: capSigned | capIntegral},
	KindI16:     {name: "i16", goType: "int16", size: I16Size, caps: capSigned | capIntegral},
	KindI32:     {name: "i32", goType: "int32", size: I32Size, caps: capSigned | capIntegral},
	KindI64:     {name: "i64", goType: "int64", size: I64Size, caps: capSigned | capIntegral},
	KindU8:      {name: "u8", goType: "uint8", size: U8Size, caps: capUnsigned | capIntegral},
	KindU16:     {name: "u16", goType: "uint16", size: U16Size, caps: capUnsigned | capIntegral},
	KindU32:     {name: "u32", goType: "uint32", size: U32Size, caps: capU32 | capUnsigned | capIntegral},
	KindU64:     {name: "u64", goType: "uint64", size: U64Size, caps: capU64 | capUnsigned | capIntegral},
	KindF32:     {name: "f32", goType: "float32", size: F32Size, caps: capF32 | capFloat},
	KindF64:     {name: "f64", goType: "float64", size: F64Size, caps: capF64 | capFloat},
	KindSize:    {name: "size", goType: "uint", size: SizeSize, caps: capUnsigned | capIntegral},
}

// Kinds returns every canonical Kind in declaration order. KindUnknown is not included.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindBool; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) info() kindInfo {
	if int(k) >= len(kinds) {
		return kinds[KindUnknown]
	}
	return kinds[k]
}

// String implements fmt.Stringer. It returns the canonical short name, such as "u32".
func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// GoType is the name of the Go type the Kind is bound to.
func (k Kind) GoType() string {
	return k.info().goType
}

// Size is the width of the type in bytes.
func (k Kind) Size() uintptr {
	return k.info().size
}

// Bits is the width of the type in bits.
func (k Kind) Bits() int {
	return int(k.info().size) * 8
}

func (k Kind) has(c capability) bool {
	return k.info().caps&c != 0
}

// IsBool reports if the Kind is exactly bool.
func (k Kind) IsBool() bool { return k.has(capBool) }

// IsU32 reports if the Kind is exactly U32.
func (k Kind) IsU32() bool { return k.has(capU32) }

// IsU64 reports if the Kind is exactly U64.
func (k Kind) IsU64() bool { return k.has(capU64) }

// IsF32 reports if the Kind is exactly F32.
func (k Kind) IsF32() bool { return k.has(capF32) }

// IsF64 reports if the Kind is exactly F64.
func (k Kind) IsF64() bool { return k.has(capF64) }

// IsSigned reports if the Kind is a signed integer.
func (k Kind) IsSigned() bool { return k.has(capSigned) }

// IsUnsigned reports if the Kind is an unsigned integer.
func (k Kind) IsUnsigned() bool { return k.has(capUnsigned) }

// IsIntegral reports if the Kind is any integer.
func (k Kind) IsIntegral() bool { return k.has(capIntegral) }

// IsFloat reports if the Kind is a floating point type.
func (k Kind) IsFloat() bool { return k.has(capFloat) }

// IsArithmetic reports if the Kind is integral or floating point.
func (k Kind) IsArithmetic() bool { return k.has(capIntegral | capFloat) }

// Capabilities returns the names of the constraints in this package that the Kind's type
// satisfies, in a stable order.
func (k Kind) Capabilities() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	add(k.IsBool(), "BoolType")
	add(k.IsU32(), "U32Type")
	add(k.IsU64(), "U64Type")
	add(k.IsF32(), "F32Type")
	add(k.IsF64(), "F64Type")
	add(k.IsSigned(), "Signed")
	add(k.IsUnsigned(), "Unsigned")
	add(k.IsIntegral(), "Integral")
	add(k.IsFloat(), "Float")
	add(k.IsArithmetic(), "Arithmetic")
	return out
}

// KindOf returns the Kind for T. Canonical types map directly. Anything else, such as int,
// uintptr or "type Meters F32", is mapped by structure: its width, its signedness and whether
// it is a float. bool is always KindBool and is not accepted here.
func KindOf[T Arithmetic]() Kind {
	var t T
	switch any(t).(type) {
	case int8:
		return KindI8
	case int16:
		return KindI16
	case int32:
		return KindI32
	case int64:
		return KindI64
	case uint8:
		return KindU8
	case uint16:
		return KindU16
	case uint32:
		return KindU32
	case uint64:
		return KindU64
	case float32:
		return KindF32
	case float64:
		return KindF64
	case uint:
		return KindSize
	}
	return structuralKind[T]()
}

func structuralKind[T Arithmetic]() Kind {
	size := typedetect.Size[T]()
	switch {
	case typedetect.IsFloat[T]():
		switch size {
		case 4:
			return KindF32
		case 8:
			return KindF64
		}
	case typedetect.IsSignedInteger[T]():
		switch size {
		case 1:
			return KindI8
		case 2:
			return KindI16
		case 4:
			return KindI32
		case 8:
			return KindI64
		}
	default:
		switch size {
		case 1:
			return KindU8
		case 2:
			return KindU16
		case 4:
			return KindU32
		case 8:
			return KindU64
		}
	}
	return KindUnknown
}

// RealKind returns the Kind that Real is bound to in this build.
func RealKind() Kind {
	return KindOf[Real]()
}

// RealBitsKind returns the Kind that RealBits is bound to in this build.
func RealBitsKind() Kind {
	return KindOf[RealBits]()
}

// ParseKind resolves a type name to a Kind. It accepts the canonical short names ("i32",
// "f64", "size", ...), the Go type names ("int32", "float64", "uint", ...), "bool", and the
// build dependent "real" and "realbits". Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "real":
		return RealKind(), nil
	case "realbits":
		return RealBitsKind(), nil
	}
	for k := KindBool; int(k) < len(kinds); k++ {
		if kinds[k].name == n || kinds[k].goType == n {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
