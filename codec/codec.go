// Package codec implements RecordCodec, which maps records to fixed-layout
// byte sequences and back according to a schema.
//
// # Wire Format
//
// An encoded record is the concatenation of its fields in schema order, with
// no header, padding, alignment or separators:
//
//   - uint/int fields: width/8 bytes in the configured byte order
//   - float fields: 4 bytes IEEE-754 binary32 in the configured byte order
//   - text fields: the ASCII bytes followed by one NUL terminator
//
// For the schema "id:uint32, name:ascii, age:uint8, balance:float" the record
// {id: 1234567890, name: "John Doe", age: 30, balance: 1234.56} encodes, big-endian, as
//
//	49 96 02 d2  4a 6f 68 6e 20 44 6f 65 00  1e  44 9a 51 ec
//
// # Decoding Text
//
// A text field ends at the first NUL after its start. If there is none the
// field runs to the end of the buffer, and any field declared after it fails
// with errs.ErrOutOfRange. Unterminated text is therefore only decodable as the
// last field.
//
// # Errors
//
// Encode and Decode either succeed completely or return an error wrapping one
// of the errs sentinels, with the field tag and kind in the message. They never
// return a partial buffer or record.
//
// # Thread Safety
//
// A RecordCodec is immutable after construction and safe for concurrent use.
package codec

import (
	"fmt"

	"github.com/arloliu/bincodec/encoding"
	"github.com/arloliu/bincodec/endian"
	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/format"
	"github.com/arloliu/bincodec/internal/options"
	"github.com/arloliu/bincodec/internal/pool"
	"github.com/arloliu/bincodec/record"
	"github.com/arloliu/bincodec/schema"
)

// RecordCodec encodes and decodes records of one schema.
type RecordCodec struct {
	schema *schema.Schema
	engine endian.EndianEngine
	strict bool
	logger Logger
}

// NewRecordCodec creates a codec for s. The default byte order is big-endian.
//
// Returns errs.ErrInvalidSchema if s is nil. Field validation already happened
// when s was built, see schema.New.
func NewRecordCodec(s *schema.Schema, opts ...Option) (*RecordCodec, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", errs.ErrInvalidSchema)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c := &RecordCodec{
		schema: s,
		engine: cfg.engine,
		strict: cfg.strictLength,
		logger: cfg.logger,
	}

	c.logger.Debug("record codec created",
		"schema", s.String(),
		"fingerprint", s.Fingerprint(),
		"tag_collision", s.HasTagCollision(),
		"big_endian", c.IsBigEndian(),
		"strict_length", c.strict,
	)

	return c, nil
}

// Schema returns the schema the codec was built with.
func (c *RecordCodec) Schema() *schema.Schema {
	return c.schema
}

// IsBigEndian reports whether multi-byte numeric fields are big-endian.
func (c *RecordCodec) IsBigEndian() bool {
	return endian.IsBigEndian(c.engine)
}

// FixedSize returns the total size of the schema's fixed-width fields.
// Decoding a shorter buffer always fails.
func (c *RecordCodec) FixedSize() int {
	return c.schema.FixedSize()
}

// Encode serializes rec according to the schema.
//
// Every schema tag must be present in rec with a value of the field's kind;
// tags not in the schema are ignored. Integer values must fit the declared
// width and text must be NUL-free 7-bit ASCII. Text fields are written with a
// trailing NUL terminator.
func (c *RecordCodec) Encode(rec record.Record) ([]byte, error) {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.Grow(c.schema.MinEncodedSize())

	buf, err := c.appendRecord(bb.B, rec)
	if err != nil {
		return nil, err
	}
	bb.B = buf

	return bb.Clone(), nil
}

// AppendEncode appends the encoding of rec to dst and returns the extended slice.
//
// On error the returned slice has the length of dst; bytes beyond it, within
// dst's capacity, may have been overwritten.
func (c *RecordCodec) AppendEncode(dst []byte, rec record.Record) ([]byte, error) {
	buf, err := c.appendRecord(dst, rec)
	if err != nil {
		return dst, err
	}

	return buf, nil
}

// EncodedSize returns the number of bytes Encode would produce for rec,
// applying the same validation.
func (c *RecordCodec) EncodedSize(rec record.Record) (int, error) {
	size := 0
	for i := range c.schema.Len() {
		f := c.schema.Field(i)

		n, err := fieldSize(f, rec)
		if err != nil {
			return 0, c.fail("encode", f, size, err)
		}
		size += n
	}

	return size, nil
}

// Decode parses data according to the schema.
//
// Bytes after the last field are ignored unless the codec was built with
// WithStrictLength(true).
//
// Decoding fails with errs.ErrOutOfRange when a field extends past the end of
// data, and with errs.ErrInvalidText when a text field holds a byte above 0x7F.
func (c *RecordCodec) Decode(data []byte) (record.Record, error) {
	fields, err := c.DecodeFields(data)
	if err != nil {
		return nil, err
	}

	return record.FromFields(fields), nil
}

// DecodeFields is like Decode but returns the fields in schema order.
func (c *RecordCodec) DecodeFields(data []byte) ([]record.Field, error) {
	fields := make([]record.Field, 0, c.schema.Len())
	offset := 0

	for i := range c.schema.Len() {
		f := c.schema.Field(i)

		v, next, err := c.readField(data, offset, f)
		offset = next
		if err != nil {
			return nil, c.fail("decode", f, offset, err)
		}

		fields = append(fields, record.Field{Tag: f.Tag, Value: v})
	}

	if c.strict && offset < len(data) {
		err := fmt.Errorf("%w: %d bytes after offset %d", errs.ErrTrailingData, len(data)-offset, offset)
		c.logger.Debug("decode failed", "offset", offset, "error", err)

		return nil, err
	}

	return fields, nil
}

// readField decodes f at offset. On error the returned offset is the input offset.
func (c *RecordCodec) readField(data []byte, offset int, f schema.FieldSpec) (record.Value, int, error) {
	switch f.Kind {
	case format.KindUint:
		u, next, err := encoding.ReadUint(c.engine, data, offset, f.BitWidth)
		return record.Uint(u), next, err
	case format.KindInt:
		n, next, err := encoding.ReadInt(c.engine, data, offset, f.BitWidth)
		return record.Int(n), next, err
	case format.KindFloat32:
		fl, next, err := encoding.ReadFloat32(c.engine, data, offset)
		return record.Float(fl), next, err
	case format.KindText:
		s, next, err := encoding.ReadText(data, offset)
		return record.Text(s), next, err
	default:
		return record.Value{}, offset, errs.ErrUnsupportedFieldKind
	}
}

// appendRecord appends every field of rec to dst in schema order.
func (c *RecordCodec) appendRecord(dst []byte, rec record.Record) ([]byte, error) {
	start := len(dst)

	for i := range c.schema.Len() {
		f := c.schema.Field(i)

		var err error
		dst, err = c.appendField(dst, f, rec)
		if err != nil {
			return nil, c.fail("encode", f, len(dst)-start, err)
		}
	}

	return dst, nil
}

func (c *RecordCodec) appendField(dst []byte, f schema.FieldSpec, rec record.Record) ([]byte, error) {
	v, ok := rec[f.Tag]
	if !ok {
		return dst, errs.ErrMissingValue
	}

	switch f.Kind {
	case format.KindUint:
		u, ok := v.Uint()
		if !ok {
			return dst, mismatch(v)
		}

		return encoding.AppendUint(c.engine, dst, u, f.BitWidth)
	case format.KindInt:
		n, ok := v.Int()
		if !ok {
			return dst, mismatch(v)
		}

		return encoding.AppendInt(c.engine, dst, n, f.BitWidth)
	case format.KindFloat32:
		fl, ok := v.Float()
		if !ok {
			return dst, mismatch(v)
		}

		return encoding.AppendFloat32(c.engine, dst, fl), nil
	case format.KindText:
		s, ok := v.Text()
		if !ok {
			return dst, mismatch(v)
		}

		return encoding.AppendText(dst, s)
	default:
		return dst, errs.ErrUnsupportedFieldKind
	}
}

// fieldSize validates the value of f in rec and returns its encoded size.
func fieldSize(f schema.FieldSpec, rec record.Record) (int, error) {
	v, ok := rec[f.Tag]
	if !ok {
		return 0, errs.ErrMissingValue
	}

	switch f.Kind {
	case format.KindUint:
		u, ok := v.Uint()
		if !ok {
			return 0, mismatch(v)
		}
		if !encoding.FitsUint(u, f.BitWidth) {
			return 0, fmt.Errorf("%w: %d exceeds uint%d", errs.ErrValueOverflow, u, f.BitWidth)
		}

		return f.BitWidth / 8, nil
	case format.KindInt:
		n, ok := v.Int()
		if !ok {
			return 0, mismatch(v)
		}
		if !encoding.FitsInt(n, f.BitWidth) {
			return 0, fmt.Errorf("%w: %d exceeds int%d", errs.ErrValueOverflow, n, f.BitWidth)
		}

		return f.BitWidth / 8, nil
	case format.KindFloat32:
		if v.Kind() != format.KindFloat32 {
			return 0, mismatch(v)
		}

		return format.Float32Size, nil
	case format.KindText:
		s, ok := v.Text()
		if !ok {
			return 0, mismatch(v)
		}
		if err := encoding.ValidateText(s); err != nil {
			return 0, err
		}

		return encoding.TextSize(s), nil
	default:
		return 0, errs.ErrUnsupportedFieldKind
	}
}

func mismatch(v record.Value) error {
	if v.IsZero() {
		return fmt.Errorf("%w: got empty value", errs.ErrTypeMismatch)
	}

	return fmt.Errorf("%w: got %s value", errs.ErrTypeMismatch, v.Kind())
}

// fail wraps err with the field context and logs it.
func (c *RecordCodec) fail(op string, f schema.FieldSpec, offset int, err error) error {
	c.logger.Debug(op+" failed",
		"tag", f.Tag,
		"kind", f.Kind.String(),
		"offset", offset,
		"error", err,
	)

	return fmt.Errorf("%s field %q (%s): %w", op, f.Tag, f.Kind, err)
}
