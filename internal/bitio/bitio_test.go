package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkPushBitsAndFinish(t *testing.T) {
	s := NewSink()
	s.PushBits([]byte{1, 0, 1, 1, 0, 0, 1, 0})
	s.PushBits([]byte{1, 1})

	full := s.TakeFullBytes()
	require.Equal(t, []byte{0xB2}, full)
	require.Equal(t, 2, s.Len())

	final, pad := s.Finish()
	require.Equal(t, 6, pad)
	require.Equal(t, []byte{0xC0}, final)
	require.Equal(t, 0, s.Len(), "Finish resets the sink")
}

func TestSinkPushBytes(t *testing.T) {
	s := NewSink()
	s.PushBytes([]byte{0xAB, 0xCD})
	full, pad := s.Finish()
	require.Equal(t, []byte{0xAB, 0xCD}, full)
	require.Equal(t, 0, pad)
}

func TestSourcePopBitMSBFirst(t *testing.T) {
	src := NewSource([]byte{0xB2}, 8) // 1011 0010
	want := []byte{1, 0, 1, 1, 0, 0, 1, 0}
	for i, w := range want {
		bit, ok := src.PopBit()
		require.True(t, ok, "bit %d", i)
		require.Equal(t, w, bit, "bit %d", i)
	}
	_, ok := src.PopBit()
	require.False(t, ok)
}

func TestSourceMarkReset(t *testing.T) {
	src := NewSource([]byte{0xFF}, 8)
	src.Advance(3)
	mark := src.Mark()
	src.Advance(5)
	require.True(t, src.Exhausted())
	src.Reset(mark)
	require.Equal(t, 5, src.Len())
}

func TestSourcePeekDoesNotAdvance(t *testing.T) {
	src := NewSource([]byte{0x80}, 8) // 1000 0000
	bits, ok := src.Peek(3)
	require.True(t, ok)
	require.Equal(t, []byte{1, 0, 0}, bits)
	require.Equal(t, 8, src.Len(), "peek must not consume")
}

func TestPeekShortOfBits(t *testing.T) {
	src := NewSource([]byte{0xFF}, 4)
	_, ok := src.Peek(5)
	require.False(t, ok)
}

func TestPackUnpackBitsRoundTrip(t *testing.T) {
	bits := []byte{1, 1, 0, 1, 0, 0, 0, 1, 1, 0}
	packed := PackBits(bits)
	require.Len(t, packed, 2)
	unpacked := UnpackBits(packed, len(bits))
	require.Equal(t, bits, unpacked)
}

func TestPeekBytes(t *testing.T) {
	src := NewSource([]byte{0x41, 0x42}, 16)
	out, ok := src.PeekBytes(2)
	require.True(t, ok)
	require.Equal(t, []byte{0x41, 0x42}, out)
	require.Equal(t, 16, src.Len())

	_, ok = src.PeekBytes(3)
	require.False(t, ok)
}
