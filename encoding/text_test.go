package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bincodec/endian"
	"github.com/arloliu/bincodec/errs"
)

func TestAppendText(t *testing.T) {
	buf, err := AppendText(nil, "John Doe")
	require.NoError(t, err)
	require.Equal(t, []byte("John Doe\x00"), buf)
	require.Equal(t, len(buf), TextSize("John Doe"))

	buf, err = AppendText([]byte{0x01}, "")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00}, buf)
}

func TestAppendText_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"non-ascii", "café"},
		{"high byte", "a\xffb"},
		{"embedded NUL", "a\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []byte{0x7a}
			buf, err := AppendText(dst, tt.text)
			require.ErrorIs(t, err, errs.ErrInvalidText)
			require.Equal(t, []byte{0x7a}, buf)
		})
	}
}

func TestReadText(t *testing.T) {
	t.Run("terminated", func(t *testing.T) {
		data := []byte("abc\x00def\x00")

		s, next, err := ReadText(data, 0)
		require.NoError(t, err)
		require.Equal(t, "abc", s)
		require.Equal(t, 4, next)

		s, next, err = ReadText(data, next)
		require.NoError(t, err)
		require.Equal(t, "def", s)
		require.Equal(t, 8, next)
	})

	t.Run("unterminated consumes to end", func(t *testing.T) {
		data := []byte("tail")

		s, next, err := ReadText(data, 0)
		require.NoError(t, err)
		require.Equal(t, "tail", s)
		require.Equal(t, len(data)+1, next)

		_, _, err = ReadText(data, next)
		require.ErrorIs(t, err, errs.ErrOutOfRange)
	})

	t.Run("empty at end of buffer", func(t *testing.T) {
		data := []byte("x\x00")

		s, next, err := ReadText(data, 2)
		require.NoError(t, err)
		require.Equal(t, "", s)
		require.Equal(t, 3, next)
	})

	t.Run("leading terminator", func(t *testing.T) {
		s, next, err := ReadText([]byte{0x00, 0x4a}, 0)
		require.NoError(t, err)
		require.Equal(t, "", s)
		require.Equal(t, 1, next)
	})

	t.Run("non-ascii", func(t *testing.T) {
		_, _, err := ReadText([]byte{'a', 0x80, 0x00}, 0)
		require.ErrorIs(t, err, errs.ErrInvalidText)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, _, err := ReadText([]byte("a"), -1)
		require.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestFloat32(t *testing.T) {
	big := endian.GetBigEndianEngine()
	little := endian.GetLittleEndianEngine()

	buf := AppendFloat32(big, nil, 1234.56)
	require.Equal(t, []byte{0x44, 0x9a, 0x51, 0xec}, buf)

	v, next, err := ReadFloat32(big, buf, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1234.56), v)
	require.Equal(t, 4, next)

	buf = AppendFloat32(little, nil, 1234.56)
	require.Equal(t, []byte{0xec, 0x51, 0x9a, 0x44}, buf)

	nan := AppendFloat32(big, nil, float32(math.NaN()))
	v, _, err = ReadFloat32(big, nan, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(v)))

	_, _, err = ReadFloat32(big, buf[:3], 0)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}
