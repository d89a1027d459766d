// Package byteorder provides the PhysicsFS-style byte swapping helpers:
// each function converts a value between the named byte order and the
// host's native order, an identity when the two agree.
package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// hostBig reports whether the native byte order is big-endian.
var hostBig = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

func le16(v uint16) uint16 {
	if hostBig {
		return bits.ReverseBytes16(v)
	}
	return v
}

func le32(v uint32) uint32 {
	if hostBig {
		return bits.ReverseBytes32(v)
	}
	return v
}

func le64(v uint64) uint64 {
	if hostBig {
		return bits.ReverseBytes64(v)
	}
	return v
}

func be16(v uint16) uint16 {
	if hostBig {
		return v
	}
	return bits.ReverseBytes16(v)
}

func be32(v uint32) uint32 {
	if hostBig {
		return v
	}
	return bits.ReverseBytes32(v)
}

func be64(v uint64) uint64 {
	if hostBig {
		return v
	}
	return bits.ReverseBytes64(v)
}

// SwapULE16 converts v between little-endian and native order.
func SwapULE16(v uint16) uint16 { return le16(v) }

// SwapSLE16 converts v between little-endian and native order.
func SwapSLE16(v int16) int16 { return int16(le16(uint16(v))) }

// SwapULE32 converts v between little-endian and native order.
func SwapULE32(v uint32) uint32 { return le32(v) }

// SwapSLE32 converts v between little-endian and native order.
func SwapSLE32(v int32) int32 { return int32(le32(uint32(v))) }

// SwapULE64 converts v between little-endian and native order.
func SwapULE64(v uint64) uint64 { return le64(v) }

// SwapSLE64 converts v between little-endian and native order.
func SwapSLE64(v int64) int64 { return int64(le64(uint64(v))) }

// SwapUBE16 converts v between big-endian and native order.
func SwapUBE16(v uint16) uint16 { return be16(v) }

// SwapSBE16 converts v between big-endian and native order.
func SwapSBE16(v int16) int16 { return int16(be16(uint16(v))) }

// SwapUBE32 converts v between big-endian and native order.
func SwapUBE32(v uint32) uint32 { return be32(v) }

// SwapSBE32 converts v between big-endian and native order.
func SwapSBE32(v int32) int32 { return int32(be32(uint32(v))) }

// SwapUBE64 converts v between big-endian and native order.
func SwapUBE64(v uint64) uint64 { return be64(v) }

// SwapSBE64 converts v between big-endian and native order.
func SwapSBE64(v int64) int64 { return int64(be64(uint64(v))) }
