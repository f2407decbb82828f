package schema

import (
	"fmt"

	"github.com/arloliu/bincodec/format"
)

// FieldSpec describes one field of a record layout.
type FieldSpec struct {
	// Tag is the record key of the field. Tags are unique within a schema.
	Tag string
	// Kind is the primitive type stored in the field.
	Kind format.FieldKind
	// BitWidth is the integer width in bits, a multiple of 8 in [8, 64].
	// It is required for KindUint and KindInt and ignored for other kinds.
	BitWidth int
}

// Uint returns an unsigned integer field of the given bit width.
func Uint(tag string, bitWidth int) FieldSpec {
	return FieldSpec{Tag: tag, Kind: format.KindUint, BitWidth: bitWidth}
}

// Int returns a signed integer field of the given bit width.
func Int(tag string, bitWidth int) FieldSpec {
	return FieldSpec{Tag: tag, Kind: format.KindInt, BitWidth: bitWidth}
}

// Float32 returns a 4-byte IEEE-754 binary32 field.
func Float32(tag string) FieldSpec {
	return FieldSpec{Tag: tag, Kind: format.KindFloat32}
}

// Text returns a NUL-terminated ASCII field.
func Text(tag string) FieldSpec {
	return FieldSpec{Tag: tag, Kind: format.KindText}
}

// FixedSize returns the encoded size of the field in bytes and true, or 0 and
// false for text fields whose size depends on the value.
func (f FieldSpec) FixedSize() (int, bool) {
	switch f.Kind {
	case format.KindUint, format.KindInt:
		return f.BitWidth / 8, true
	case format.KindFloat32:
		return format.Float32Size, true
	default:
		return 0, false
	}
}

// String returns the field in the compact definition syntax, e.g. "id:uint32".
func (f FieldSpec) String() string {
	if f.Kind.IsInteger() {
		return fmt.Sprintf("%s:%s%d", f.Tag, f.Kind, f.BitWidth)
	}

	return f.Tag + ":" + f.Kind.String()
}
