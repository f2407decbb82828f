// Package schema defines record layouts: ordered, immutable lists of typed fields.
//
// A Schema is built once, validated at construction and read-only afterwards,
// so it can be shared by any number of codecs and goroutines.
//
//	s, err := schema.New(
//	    schema.Uint("id", 32),
//	    schema.Text("name"),
//	    schema.Uint("age", 8),
//	    schema.Float32("balance"),
//	)
//
// The same layout can be written in the compact definition syntax
//
//	s, err := schema.Parse("id:uint32, name:ascii, age:uint8, balance:float")
//
// or as a YAML document, see ParseYAML.
package schema

import (
	"fmt"
	"strings"

	"github.com/arloliu/bincodec/encoding"
	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/internal/collision"
	"github.com/arloliu/bincodec/internal/hash"
)

// Schema is an ordered, immutable sequence of fields. Field order is byte layout order.
type Schema struct {
	fields       []FieldSpec
	index        map[string]int
	fixedSize    int
	textCount    int
	fingerprint  uint64
	tagCollision bool
}

// New validates fields and returns the schema they describe.
//
// Validation rejects empty or duplicate tags (errs.ErrEmptyTag, errs.ErrDuplicateTag),
// kinds outside the four supported ones (errs.ErrUnsupportedFieldKind) and integer
// bit widths that are not a multiple of 8 in [8, 64] (errs.ErrInvalidBitWidth).
// An empty field list is valid and describes the empty record.
func New(fields ...FieldSpec) (*Schema, error) {
	tracker := collision.NewTracker(len(fields))

	s := &Schema{
		fields: make([]FieldSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)

	fp := hash.NewFingerprint()
	for i, f := range s.fields {
		if err := tracker.Track(f.Tag); err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}

		if !f.Kind.IsValid() {
			return nil, fmt.Errorf("field %q: %w: %s", f.Tag, errs.ErrUnsupportedFieldKind, f.Kind)
		}

		if f.Kind.IsInteger() {
			if _, err := encoding.IntSize(f.BitWidth); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Tag, err)
			}
		} else {
			// The width of float and text fields is implied; drop whatever was declared.
			s.fields[i].BitWidth = 0
		}

		if size, ok := s.fields[i].FixedSize(); ok {
			s.fixedSize += size
		} else {
			s.textCount++
		}

		s.index[f.Tag] = i

		fp.AddString(f.Tag)
		fp.AddUint(uint64(f.Kind))
		fp.AddUint(uint64(s.fields[i].BitWidth)) //nolint:gosec
	}
	s.fingerprint = fp.Sum64()
	s.tagCollision = tracker.HasCollision()

	return s, nil
}

// MustNew is like New but panics on an invalid field list.
func MustNew(fields ...FieldSpec) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Field returns the i-th field in layout order.
func (s *Schema) Field(i int) FieldSpec {
	return s.fields[i]
}

// Fields returns a copy of the fields in layout order.
func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)

	return out
}

// Tags returns the field tags in layout order.
func (s *Schema) Tags() []string {
	tags := make([]string, len(s.fields))
	for i, f := range s.fields {
		tags[i] = f.Tag
	}

	return tags
}

// Lookup returns the field with the given tag and its layout position.
func (s *Schema) Lookup(tag string) (FieldSpec, int, bool) {
	i, ok := s.index[tag]
	if !ok {
		return FieldSpec{}, -1, false
	}

	return s.fields[i], i, true
}

// FixedSize returns the total size in bytes of all fixed-width fields.
// Any valid encoding is at least this long.
func (s *Schema) FixedSize() int {
	return s.fixedSize
}

// HasText reports whether the schema contains a text field.
func (s *Schema) HasText() bool {
	return s.textCount > 0
}

// MinEncodedSize returns the size of the shortest possible encoding: every
// fixed-width field plus one terminator per text field.
func (s *Schema) MinEncodedSize() int {
	return s.fixedSize + s.textCount
}

// Fingerprint returns an order-sensitive xxHash64 of the layout (tags, kinds
// and integer widths). Schemas with equal fingerprints describe the same layout.
func (s *Schema) Fingerprint() uint64 {
	return s.fingerprint
}

// HasTagCollision reports whether two distinct tags share an xxHash64 id.
// Such schemas are valid since fields are resolved by tag, but tag ids are
// then ambiguous for callers that key on TagID.
func (s *Schema) HasTagCollision() bool {
	return s.tagCollision
}

// Equal reports whether s and other describe the same layout.
func (s *Schema) Equal(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.fingerprint != other.fingerprint || len(s.fields) != len(other.fields) {
		return false
	}

	for i := range s.fields {
		if s.fields[i] != other.fields[i] {
			return false
		}
	}

	return true
}

// String returns the schema in the compact definition syntax accepted by Parse.
func (s *Schema) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}

	return strings.Join(parts, ", ")
}
