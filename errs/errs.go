// Package errs defines the sentinel errors returned by bincodec packages.
//
// Errors are wrapped with field context (tag, kind, offset) by the returning
// package; callers should match them with errors.Is.
package errs

import "errors"

// Schema construction errors.
var (
	ErrInvalidSchema        = errors.New("invalid schema")
	ErrEmptyTag             = errors.New("field tag is empty")
	ErrDuplicateTag         = errors.New("duplicate field tag")
	ErrInvalidBitWidth      = errors.New("invalid bit width")
	ErrUnsupportedFieldKind = errors.New("unsupported field kind")
)

// Encode errors.
var (
	ErrMissingValue  = errors.New("missing field value")
	ErrTypeMismatch  = errors.New("value type does not match field kind")
	ErrValueOverflow = errors.New("value does not fit in field bit width")
	ErrInvalidText   = errors.New("text is not valid NUL-free 7-bit ASCII")
)

// Decode errors.
var (
	ErrOutOfRange   = errors.New("read out of buffer range")
	ErrTrailingData = errors.New("trailing data after last field")
)
