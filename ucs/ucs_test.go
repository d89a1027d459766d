package ucs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUCS4RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"ascii", "hello"},
		{"latin", "héllo wörld"},
		{"bmp", "日本語"},
		{"astral", "clef: 𝄞"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.s, FromUCS4(ToUCS4(tt.s)))
		})
	}
}

func TestToUCS4CodePoints(t *testing.T) {
	assert.Equal(t, []uint32{0x1D11E}, ToUCS4("𝄞"))
	assert.Equal(t, []uint32{'a', 0xE9}, ToUCS4("aé"))
}

func TestFromUCS4InvalidCodePoint(t *testing.T) {
	// Surrogate halves and out-of-range values decode as U+FFFD.
	assert.Equal(t, "�", FromUCS4([]uint32{0xD800}))
	assert.Equal(t, "�", FromUCS4([]uint32{0x110000}))
}

func TestUCS2RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"ascii", "hello"},
		{"bmp", "日本語"},
		{"astral", "𝄞"}, // surrogate pair in UCS-2/UTF-16
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.s, FromUCS2(ToUCS2(tt.s)))
		})
	}
}

func TestToUCS2SurrogatePair(t *testing.T) {
	units := ToUCS2("𝄞")
	require.Len(t, units, 2)
	assert.Equal(t, uint16(0xD834), units[0])
	assert.Equal(t, uint16(0xDD1E), units[1])
}

func TestFromUCS2UnpairedSurrogate(t *testing.T) {
	assert.Equal(t, "�", FromUCS2([]uint16{0xD834}))
}

func TestFromLatin1(t *testing.T) {
	got, err := FromLatin1([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	got, err = FromLatin1(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
