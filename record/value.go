// Package record defines the values carried by encoded records.
//
// A Value is a tagged union over the four field kinds. Its variant is checked
// against the schema on encode, so a float supplied for an integer field is
// reported as a type mismatch instead of being coerced.
package record

import (
	"math"
	"strconv"

	"github.com/arloliu/bincodec/format"
)

// Value is one field value. The zero Value has no kind and matches no field.
//
// Value is comparable; float values compare by bit pattern, so a decoded NaN
// equals the NaN that was encoded.
type Value struct {
	kind format.FieldKind
	bits uint64
	text string
}

// Uint returns an unsigned integer value.
func Uint(v uint64) Value {
	return Value{kind: format.KindUint, bits: v}
}

// Int returns a signed integer value.
func Int(v int64) Value {
	return Value{kind: format.KindInt, bits: uint64(v)} //nolint:gosec
}

// Float returns a binary32 float value.
func Float(v float32) Value {
	return Value{kind: format.KindFloat32, bits: uint64(math.Float32bits(v))}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: format.KindText, text: s}
}

// Kind returns the variant of v, or 0 for the zero Value.
func (v Value) Kind() format.FieldKind {
	return v.kind
}

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Uint returns the unsigned integer held by v.
func (v Value) Uint() (uint64, bool) {
	if v.kind != format.KindUint {
		return 0, false
	}

	return v.bits, true
}

// Int returns the signed integer held by v.
func (v Value) Int() (int64, bool) {
	if v.kind != format.KindInt {
		return 0, false
	}

	return int64(v.bits), true //nolint:gosec
}

// Float returns the float held by v.
func (v Value) Float() (float32, bool) {
	if v.kind != format.KindFloat32 {
		return 0, false
	}

	return math.Float32frombits(uint32(v.bits)), true //nolint:gosec
}

// Text returns the text held by v.
func (v Value) Text() (string, bool) {
	if v.kind != format.KindText {
		return "", false
	}

	return v.text, true
}

// Any returns v as uint64, int64, float32 or string, or nil for the zero Value.
func (v Value) Any() any {
	switch v.kind {
	case format.KindUint:
		return v.bits
	case format.KindInt:
		return int64(v.bits) //nolint:gosec
	case format.KindFloat32:
		return math.Float32frombits(uint32(v.bits)) //nolint:gosec
	case format.KindText:
		return v.text
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case format.KindUint:
		return strconv.FormatUint(v.bits, 10)
	case format.KindInt:
		return strconv.FormatInt(int64(v.bits), 10) //nolint:gosec
	case format.KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.bits))), 'g', -1, 32) //nolint:gosec
	case format.KindText:
		return strconv.Quote(v.text)
	default:
		return "<none>"
	}
}
