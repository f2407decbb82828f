package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given field tag.
func ID(tag string) uint64 {
	return xxhash.Sum64String(tag)
}

// Fingerprint accumulates an order-sensitive xxHash64 over a sequence of
// strings and integers. It is used to identify a schema layout.
type Fingerprint struct {
	d *xxhash.Digest
}

// NewFingerprint returns an empty fingerprint.
func NewFingerprint() Fingerprint {
	return Fingerprint{d: xxhash.New()}
}

// AddString mixes s into the fingerprint, followed by a separator byte so that
// adjacent strings cannot run into each other.
func (f Fingerprint) AddString(s string) {
	_, _ = f.d.WriteString(s)
	_, _ = f.d.Write([]byte{0x00})
}

// AddUint mixes v into the fingerprint as 8 little-endian bytes.
func (f Fingerprint) AddUint(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = f.d.Write(b[:])
}

// Sum64 returns the current fingerprint value.
func (f Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}
