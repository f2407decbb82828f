package record

// Record maps field tags to values.
type Record map[string]Value

// Field is a single tag/value pair, used where schema order matters.
type Field struct {
	Tag   string
	Value Value
}

// FromFields builds a Record from fields. Later fields win on repeated tags.
func FromFields(fields []Field) Record {
	rec := make(Record, len(fields))
	for _, f := range fields {
		rec[f.Tag] = f.Value
	}

	return rec
}

// Get returns the value for tag and whether it is present.
func (r Record) Get(tag string) (Value, bool) {
	v, ok := r[tag]
	return v, ok
}

// Equal reports whether r and other hold the same tags with equal values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}

	for tag, v := range r {
		ov, ok := other[tag]
		if !ok || ov != v {
			return false
		}
	}

	return true
}
