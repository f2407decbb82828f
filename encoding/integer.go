package encoding

import (
	"fmt"

	"github.com/arloliu/bincodec/endian"
	"github.com/arloliu/bincodec/errs"
)

// MaxBitWidth is the widest integer field supported, in bits.
const MaxBitWidth = endian.MaxIntSize * 8

// IntSize returns the encoded size in bytes of an integer field with the given bit width.
//
// The bit width must be a positive multiple of 8 no larger than MaxBitWidth.
func IntSize(bitWidth int) (int, error) {
	if bitWidth <= 0 || bitWidth > MaxBitWidth || bitWidth%8 != 0 {
		return 0, fmt.Errorf("%w: %d (must be a multiple of 8 in [8, %d])", errs.ErrInvalidBitWidth, bitWidth, MaxBitWidth)
	}

	return bitWidth / 8, nil
}

// FitsUint reports whether v is representable as an unsigned integer of bitWidth bits.
func FitsUint(v uint64, bitWidth int) bool {
	if bitWidth >= 64 {
		return true
	}

	return v>>uint(bitWidth) == 0 //nolint:gosec
}

// FitsInt reports whether v is representable as a two's-complement integer of bitWidth bits.
func FitsInt(v int64, bitWidth int) bool {
	if bitWidth >= 64 {
		return true
	}

	limit := int64(1) << uint(bitWidth-1) //nolint:gosec

	return v >= -limit && v < limit
}

// AppendUint appends v as an unsigned integer of bitWidth bits.
//
// Returns errs.ErrValueOverflow if v does not fit and errs.ErrInvalidBitWidth
// for an unsupported width. On error dst is returned unchanged.
func AppendUint(engine endian.EndianEngine, dst []byte, v uint64, bitWidth int) ([]byte, error) {
	size, err := IntSize(bitWidth)
	if err != nil {
		return dst, err
	}

	if !FitsUint(v, bitWidth) {
		return dst, fmt.Errorf("%w: %d exceeds uint%d", errs.ErrValueOverflow, v, bitWidth)
	}

	return endian.AppendUint(engine, dst, v, size), nil
}

// AppendInt appends v as a two's-complement integer of bitWidth bits.
//
// Returns errs.ErrValueOverflow if v does not fit and errs.ErrInvalidBitWidth
// for an unsupported width. On error dst is returned unchanged.
func AppendInt(engine endian.EndianEngine, dst []byte, v int64, bitWidth int) ([]byte, error) {
	size, err := IntSize(bitWidth)
	if err != nil {
		return dst, err
	}

	if !FitsInt(v, bitWidth) {
		return dst, fmt.Errorf("%w: %d exceeds int%d", errs.ErrValueOverflow, v, bitWidth)
	}

	// Truncation keeps the low bytes, which is the two's-complement form at this width.
	return endian.AppendUint(engine, dst, uint64(v), size), nil //nolint:gosec
}

// ReadUint reads an unsigned integer of bitWidth bits at offset.
//
// Returns the value and the offset of the next field.
func ReadUint(engine endian.EndianEngine, data []byte, offset int, bitWidth int) (uint64, int, error) {
	size, err := IntSize(bitWidth)
	if err != nil {
		return 0, offset, err
	}

	if err := checkRange(data, offset, size); err != nil {
		return 0, offset, err
	}

	return endian.Uint(engine, data[offset:offset+size]), offset + size, nil
}

// ReadInt reads a two's-complement integer of bitWidth bits at offset and
// sign-extends it to int64.
//
// Returns the value and the offset of the next field.
func ReadInt(engine endian.EndianEngine, data []byte, offset int, bitWidth int) (int64, int, error) {
	u, next, err := ReadUint(engine, data, offset, bitWidth)
	if err != nil {
		return 0, offset, err
	}

	shift := uint(64 - bitWidth) //nolint:gosec

	return int64(u<<shift) >> shift, next, nil //nolint:gosec
}

// checkRange verifies that size bytes starting at offset lie inside data.
func checkRange(data []byte, offset int, size int) error {
	if offset < 0 || offset > len(data) || len(data)-offset < size {
		return fmt.Errorf("%w: need %d bytes at offset %d, buffer has %d", errs.ErrOutOfRange, size, offset, len(data))
	}

	return nil
}
