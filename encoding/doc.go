// Package encoding provides the per-kind primitives used by the record codec.
//
// Each primitive appends one field to a destination slice, or reads one field
// at a given offset and reports the offset of the next field. The record codec
// in package codec drives these primitives in schema order; this package has no
// notion of schemas or records.
//
// # Field Layouts
//
// Unsigned integers (bit widths 8..64, multiples of 8):
//   - width/8 bytes in the engine's byte order
//   - values wider than the declared width fail with errs.ErrValueOverflow
//
// Signed integers:
//   - width/8 bytes of two's complement in the engine's byte order
//   - sign-extended to int64 on read
//
// Float32:
//   - 4 bytes IEEE-754 binary32 in the engine's byte order
//
// Text:
//   - raw 7-bit ASCII bytes followed by exactly one NUL terminator
//   - on read, a missing terminator means the text runs to the end of the buffer
//
// # Bounds
//
// Every read checks that the requested bytes lie inside the buffer and fails
// with errs.ErrOutOfRange otherwise. Reads never zero-fill or wrap.
//
// # Example
//
//	engine := endian.GetBigEndianEngine()
//	buf, _ := encoding.AppendUint(engine, nil, 1234567890, 32)
//	buf, _ = encoding.AppendText(buf, "John Doe")
//
//	id, next, _ := encoding.ReadUint(engine, buf, 0, 32)
//	name, next, _ := encoding.ReadText(buf, next)
package encoding
