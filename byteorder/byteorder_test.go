package byteorder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The swap functions convert between a named byte order and the host's
// native order, so the expected results are derived from encoding/binary
// rather than hardcoded for one host endianness.

func TestSwapLittleEndian(t *testing.T) {
	b2 := make([]byte, 2)
	binary.LittleEndian.PutUint16(b2, 0x1234)
	assert.Equal(t, binary.NativeEndian.Uint16(b2), SwapULE16(0x1234))

	b4 := make([]byte, 4)
	binary.LittleEndian.PutUint32(b4, 0x12345678)
	assert.Equal(t, binary.NativeEndian.Uint32(b4), SwapULE32(0x12345678))

	b8 := make([]byte, 8)
	binary.LittleEndian.PutUint64(b8, 0x123456789abcdef0)
	assert.Equal(t, binary.NativeEndian.Uint64(b8), SwapULE64(0x123456789abcdef0))
}

func TestSwapBigEndian(t *testing.T) {
	b2 := make([]byte, 2)
	binary.BigEndian.PutUint16(b2, 0x1234)
	assert.Equal(t, binary.NativeEndian.Uint16(b2), SwapUBE16(0x1234))

	b4 := make([]byte, 4)
	binary.BigEndian.PutUint32(b4, 0x12345678)
	assert.Equal(t, binary.NativeEndian.Uint32(b4), SwapUBE32(0x12345678))

	b8 := make([]byte, 8)
	binary.BigEndian.PutUint64(b8, 0x123456789abcdef0)
	assert.Equal(t, binary.NativeEndian.Uint64(b8), SwapUBE64(0x123456789abcdef0))
}

func TestSwapIsAnInvolution(t *testing.T) {
	assert.Equal(t, uint16(0xbeef), SwapULE16(SwapULE16(0xbeef)))
	assert.Equal(t, uint32(0xdeadbeef), SwapUBE32(SwapUBE32(0xdeadbeef)))
	assert.Equal(t, int16(-12345), SwapSLE16(SwapSLE16(-12345)))
	assert.Equal(t, int32(-1234567), SwapSBE32(SwapSBE32(-1234567)))
	assert.Equal(t, int64(-123456789012345), SwapSLE64(SwapSLE64(-123456789012345)))
	assert.Equal(t, uint64(0xfeedfacecafebeef), SwapUBE64(SwapUBE64(0xfeedfacecafebeef)))
}

func TestSignedMatchesUnsignedBitPattern(t *testing.T) {
	assert.Equal(t, int16(SwapULE16(0xfffe)), SwapSLE16(-2))
	assert.Equal(t, int32(SwapUBE32(0xfffffffe)), SwapSBE32(-2))
	assert.Equal(t, int64(SwapULE64(0xfffffffffffffffe)), SwapSLE64(-2))
	assert.Equal(t, int16(SwapUBE16(0xfffe)), SwapSBE16(-2))
	assert.Equal(t, int64(SwapUBE64(0xfffffffffffffffe)), SwapSBE64(-2))
	assert.Equal(t, int32(SwapULE32(0xfffffffe)), SwapSLE32(-2))
}

func TestExactlyOneOrderIsIdentity(t *testing.T) {
	const v = uint16(0x1234)
	le := SwapULE16(v) == v
	be := SwapUBE16(v) == v
	assert.NotEqual(t, le, be, "exactly one of LE/BE must be the native order")
}
