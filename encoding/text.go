package encoding

import (
	"bytes"
	"fmt"

	"github.com/arloliu/bincodec/errs"
)

// Terminator is the byte that ends a text field.
const Terminator byte = 0x00

const maxASCII = 0x7f

// ValidateText checks that s contains only 7-bit ASCII and no terminator byte.
func ValidateText(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == Terminator {
			return fmt.Errorf("%w: NUL byte at index %d", errs.ErrInvalidText, i)
		}
		if c > maxASCII {
			return fmt.Errorf("%w: byte 0x%02x at index %d", errs.ErrInvalidText, c, i)
		}
	}

	return nil
}

// TextSize returns the encoded size of s, including the terminator.
func TextSize(s string) int {
	return len(s) + 1
}

// AppendText appends s followed by a single terminator byte.
//
// Returns errs.ErrInvalidText if s is not NUL-free 7-bit ASCII. On error dst
// is returned unchanged.
func AppendText(dst []byte, s string) ([]byte, error) {
	if err := ValidateText(s); err != nil {
		return dst, err
	}

	dst = append(dst, s...)

	return append(dst, Terminator), nil
}

// ReadText reads a text field starting at offset.
//
// The field ends at the first terminator at or after offset. When there is no
// terminator the field runs to the end of data. The returned next offset is
// always one past the end of the field, so after an unterminated field it is
// len(data)+1 and any following read fails with errs.ErrOutOfRange.
//
// A field starting exactly at len(data) decodes as the empty string.
func ReadText(data []byte, offset int) (string, int, error) {
	if offset < 0 || offset > len(data) {
		return "", offset, fmt.Errorf("%w: text at offset %d, buffer has %d", errs.ErrOutOfRange, offset, len(data))
	}

	end := len(data)
	if i := bytes.IndexByte(data[offset:], Terminator); i >= 0 {
		end = offset + i
	}

	span := data[offset:end]
	for i, c := range span {
		if c > maxASCII {
			return "", offset, fmt.Errorf("%w: byte 0x%02x at offset %d", errs.ErrInvalidText, c, offset+i)
		}
	}

	return string(span), end + 1, nil
}
