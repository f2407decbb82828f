package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/format"
)

// Parse builds a schema from the compact definition syntax.
//
// A definition is a list of entries separated by commas, semicolons or newlines.
// Each entry is "tag:type", where type is a kind name optionally followed by a
// bit width, either appended or after a second colon:
//
//	id:uint32, delta:int:16, balance:float, name:ascii
//
// Kind names are uint, int, float (or float32) and ascii (or text). Widths on
// float and text entries are accepted and ignored.
func Parse(def string) (*Schema, error) {
	entries := strings.FieldsFunc(def, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	fields := make([]FieldSpec, 0, len(entries))
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tag, typ, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: entry %d %q: expected tag:type", errs.ErrInvalidSchema, i, entry)
		}

		width := 0
		if name, w, hasWidth := strings.Cut(typ, ":"); hasWidth {
			n, err := strconv.Atoi(strings.TrimSpace(w))
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d %q: bad width %q", errs.ErrInvalidSchema, i, entry, w)
			}
			typ, width = name, n
		}

		f, err := newField(strings.TrimSpace(tag), typ, width)
		if err != nil {
			return nil, fmt.Errorf("entry %d %q: %w", i, entry, err)
		}
		fields = append(fields, f)
	}

	return New(fields...)
}

// MustParse is like Parse but panics on an invalid definition.
func MustParse(def string) *Schema {
	s, err := Parse(def)
	if err != nil {
		panic(err)
	}

	return s
}

// newField resolves a type name such as "uint32" or "ascii" plus an optional
// declared width into a FieldSpec. Widths are not range-checked here; New does that.
func newField(tag string, typ string, width int) (FieldSpec, error) {
	typ = strings.TrimSpace(typ)
	name := strings.TrimRight(typ, "0123456789")

	if digits := typ[len(name):]; digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return FieldSpec{}, fmt.Errorf("%w: bad width in type %q", errs.ErrInvalidSchema, typ)
		}
		if width != 0 && width != n {
			return FieldSpec{}, fmt.Errorf("%w: type %q conflicts with width %d", errs.ErrInvalidSchema, typ, width)
		}
		width = n
	}

	kind, ok := format.ParseFieldKind(name)
	if !ok {
		return FieldSpec{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedFieldKind, typ)
	}

	return FieldSpec{Tag: tag, Kind: kind, BitWidth: width}, nil
}
