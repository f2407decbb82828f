// Package endian provides byte order utilities for record field encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds helpers for integers whose encoded size is not a power of two
// (for example 24-bit or 48-bit record fields).
//
// # Basic Usage
//
// Record codecs default to big-endian, the network byte order:
//
//	engine := endian.GetBigEndianEngine()
//	buf = endian.AppendUint(engine, buf, 0x0102_0304_05, 5)
//
// For little-endian layouts:
//
//	engine := endian.GetLittleEndianEngine()
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// MaxIntSize is the widest integer, in bytes, the sized helpers support.
const MaxIntSize = 8

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// AppendUint appends the low size bytes of v to dst in the engine's byte order.
//
// The common sizes 1, 2, 4 and 8 go through the engine directly; other sizes
// are written byte by byte. Bits of v above size*8 are discarded, callers are
// expected to range-check before appending.
//
// Panics if size is not in [1, MaxIntSize].
func AppendUint(engine EndianEngine, dst []byte, v uint64, size int) []byte {
	switch size {
	case 1:
		return append(dst, byte(v))
	case 2:
		return engine.AppendUint16(dst, uint16(v)) //nolint:gosec
	case 4:
		return engine.AppendUint32(dst, uint32(v)) //nolint:gosec
	case 8:
		return engine.AppendUint64(dst, v)
	}

	if size < 1 || size > MaxIntSize {
		panic("endian: invalid integer size")
	}

	if IsBigEndian(engine) {
		for i := size - 1; i >= 0; i-- {
			dst = append(dst, byte(v>>(8*i)))
		}

		return dst
	}

	for i := range size {
		dst = append(dst, byte(v>>(8*i)))
	}

	return dst
}

// Uint reads an unsigned integer of len(b) bytes in the engine's byte order.
//
// Panics if len(b) is not in [1, MaxIntSize].
func Uint(engine EndianEngine, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(engine.Uint16(b))
	case 4:
		return uint64(engine.Uint32(b))
	case 8:
		return engine.Uint64(b)
	}

	if len(b) < 1 || len(b) > MaxIntSize {
		panic("endian: invalid integer size")
	}

	var v uint64
	if IsBigEndian(engine) {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}

		return v
	}

	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v
}
