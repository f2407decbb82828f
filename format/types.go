package format

import (
	"fmt"
	"strings"
)

// FieldKind identifies the primitive type stored in a record field.
type FieldKind uint8

const (
	KindUint    FieldKind = 0x1 // KindUint represents an unsigned integer of a declared bit width.
	KindInt     FieldKind = 0x2 // KindInt represents a two's-complement signed integer of a declared bit width.
	KindFloat32 FieldKind = 0x3 // KindFloat32 represents an IEEE-754 binary32 value, always 4 bytes.
	KindText    FieldKind = 0x4 // KindText represents NUL-terminated 7-bit ASCII text.
)

// Float32Size is the encoded size of a KindFloat32 field in bytes.
const Float32Size = 4

// IsValid reports whether k is one of the four supported kinds.
func (k FieldKind) IsValid() bool {
	return k >= KindUint && k <= KindText
}

// IsInteger reports whether k carries a declared bit width.
func (k FieldKind) IsInteger() bool {
	return k == KindUint || k == KindInt
}

func (k FieldKind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat32:
		return "float"
	case KindText:
		return "ascii"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// ParseFieldKind maps a kind name to a FieldKind.
//
// Accepted names are the ones used by textual and YAML schema definitions:
// "uint", "int", "float", "float32", "ascii" and "text". Matching is case-insensitive.
func ParseFieldKind(name string) (FieldKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uint":
		return KindUint, true
	case "int":
		return KindInt, true
	case "float", "float32":
		return KindFloat32, true
	case "ascii", "text":
		return KindText, true
	default:
		return 0, false
	}
}
