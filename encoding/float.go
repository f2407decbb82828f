package encoding

import (
	"math"

	"github.com/arloliu/bincodec/endian"
	"github.com/arloliu/bincodec/format"
)

// AppendFloat32 appends v as 4 bytes of IEEE-754 binary32.
func AppendFloat32(engine endian.EndianEngine, dst []byte, v float32) []byte {
	return engine.AppendUint32(dst, math.Float32bits(v))
}

// ReadFloat32 reads a 4-byte IEEE-754 binary32 value at offset.
//
// Returns the value and the offset of the next field.
func ReadFloat32(engine endian.EndianEngine, data []byte, offset int) (float32, int, error) {
	if err := checkRange(data, offset, format.Float32Size); err != nil {
		return 0, offset, err
	}

	bits := engine.Uint32(data[offset : offset+format.Float32Size])

	return math.Float32frombits(bits), offset + format.Float32Size, nil
}
