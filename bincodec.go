// Package bincodec provides a schema-driven binary record codec.
//
// A schema is an ordered list of fields, each with a tag, a primitive kind and,
// for integers, a bit width. A record is encoded as the concatenation of its
// fields in schema order, with no header or padding: integers take width/8
// bytes, floats are 4-byte IEEE-754 binary32 and text is 7-bit ASCII followed
// by a NUL terminator. Multi-byte numbers are big-endian unless configured
// otherwise.
//
// # Basic Usage
//
//	import "github.com/arloliu/bincodec"
//
//	c, err := bincodec.NewDefaultCodec("id:uint32, name:ascii, age:uint8, balance:float")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := c.Encode(record.Record{
//	    "id":      record.Uint(1234567890),
//	    "name":    record.Text("John Doe"),
//	    "age":     record.Uint(30),
//	    "balance": record.Float(1234.56),
//	})
//	// data = 49 96 02 d2 4a 6f 68 6e 20 44 6f 65 00 1e 44 9a 51 ec
//
//	rec, err := c.Decode(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// schema packages. For fine-grained control build a schema.Schema directly and
// pass it to codec.NewRecordCodec.
package bincodec

import (
	"github.com/arloliu/bincodec/codec"
	"github.com/arloliu/bincodec/internal/hash"
	"github.com/arloliu/bincodec/schema"
)

// NewCodec creates a record codec for s with custom options.
//
// Available options:
//   - codec.WithBigEndian() / codec.WithLittleEndian() / codec.WithByteOrder(bool)
//   - codec.WithStrictLength(true|false)
//   - codec.WithLogger(logger)
//
// Returns errs.ErrInvalidSchema if s is nil.
func NewCodec(s *schema.Schema, opts ...codec.Option) (*codec.RecordCodec, error) {
	return codec.NewRecordCodec(s, opts...)
}

// NewDefaultCodec parses a compact schema definition such as
// "id:uint32, name:ascii" and creates a big-endian codec for it.
//
// Example:
//
//	c, err := bincodec.NewDefaultCodec("id:uint32, name:ascii, age:uint8, balance:float")
func NewDefaultCodec(def string) (*codec.RecordCodec, error) {
	s, err := schema.Parse(def)
	if err != nil {
		return nil, err
	}

	return codec.NewRecordCodec(s)
}

// NewCodecFromDefinition is NewDefaultCodec with options.
func NewCodecFromDefinition(def string, opts ...codec.Option) (*codec.RecordCodec, error) {
	s, err := schema.Parse(def)
	if err != nil {
		return nil, err
	}

	return codec.NewRecordCodec(s, opts...)
}

// NewCodecFromYAML creates a codec from a YAML schema document, either a list
// of {tag, type, len} entries or a mapping with a "fields" key holding one.
//
// Example:
//
//	doc := []byte(`
//	- {tag: id, type: uint, len: 32}
//	- {tag: name, type: ascii}
//	`)
//	c, err := bincodec.NewCodecFromYAML(doc, codec.WithLittleEndian())
func NewCodecFromYAML(doc []byte, opts ...codec.Option) (*codec.RecordCodec, error) {
	s, err := schema.ParseYAML(doc)
	if err != nil {
		return nil, err
	}

	return codec.NewRecordCodec(s, opts...)
}

// MustCodec is like NewCodecFromDefinition but panics on error.
// It is intended for package-level codecs built from constant definitions.
func MustCodec(def string, opts ...codec.Option) *codec.RecordCodec {
	c, err := NewCodecFromDefinition(def, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// TagID returns the 64-bit xxHash64 identifier of a field tag.
//
// Schemas reject two tags with the same identifier only when the tags are
// identical; distinct tags that collide are still accepted.
func TagID(tag string) uint64 {
	return hash.ID(tag)
}
