package static

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CzarekM2012/Huffman/internal/blockio"
)

func TestCountOrderAndTally(t *testing.T) {
	entries := Count([][]byte{{'b'}, {'a'}, {'b'}, {'c'}, {'a'}, {'a'}})
	require.Equal(t, []Entry{
		{Symbol: []byte{'b'}, Count: 2},
		{Symbol: []byte{'a'}, Count: 3},
		{Symbol: []byte{'c'}, Count: 1},
	}, entries)
}

func TestCountFromStreamMatchesCount(t *testing.T) {
	data := []byte("mississippi river")
	blocks := blockify(data, 1)

	s, err := blockio.New(bytes.NewReader(data), 1, 4)
	require.NoError(t, err)
	fromStream, err := CountFromStream(s)
	require.NoError(t, err)

	require.Equal(t, Count(blocks), fromStream)
}

func TestSerializeDeserializeFreqTableRoundTrip(t *testing.T) {
	entries := []Entry{
		{Symbol: []byte{'a'}, Count: 1},
		{Symbol: []byte{'b'}, Count: 300},
		{Symbol: []byte{'c'}, Count: 70000},
	}
	table := SerializeFreqTable(1, entries)
	symbolSize, got, err := DeserializeFreqTable(table)
	require.NoError(t, err)
	require.Equal(t, 1, symbolSize)
	require.Equal(t, entries, got)
}

func TestDeserializeFreqTableRejectsTruncation(t *testing.T) {
	table := SerializeFreqTable(1, []Entry{{Symbol: []byte{'a'}, Count: 1}})
	_, _, err := DeserializeFreqTable(table[:len(table)-1])
	require.Error(t, err)
}

func TestDeserializeFreqTableRejectsInvalidWidth(t *testing.T) {
	_, _, err := DeserializeFreqTable([]byte{1, 3})
	require.Error(t, err)
}

func TestWidthForPicksSmallestFit(t *testing.T) {
	require.Equal(t, 1, widthFor(255))
	require.Equal(t, 2, widthFor(256))
	require.Equal(t, 2, widthFor(65535))
	require.Equal(t, 4, widthFor(65536))
	require.Equal(t, 8, widthFor(1<<32))
}

