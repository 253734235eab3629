package static

import (
	"encoding/binary"
	"io"

	"github.com/CzarekM2012/Huffman/internal/blockio"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// Entry pairs a symbol with how many times it occurred.
type Entry struct {
	Symbol []byte
	Count  uint64
}

// Count tallies occurrences of each distinct symbol block, in the
// order each symbol was first seen (so repeated runs of this function
// on the same input are deterministic, which is what gives the
// static container its bit-exact, reproducible output).
func Count(blocks [][]byte) []Entry {
	t := newTally()
	for _, b := range blocks {
		t.add(b)
	}
	return t.entries()
}

// CountFromStream tallies the same way as Count but reads blocks one
// at a time from s, so memory use is bounded by the distinct-symbol
// count rather than the input size.
func CountFromStream(s *blockio.Stream) ([]Entry, error) {
	t := newTally()
	for {
		block, err := s.Next()
		if err == io.EOF {
			return t.entries(), nil
		}
		if err != nil {
			return nil, err
		}
		t.add(block)
	}
}

type tally struct {
	counts map[string]uint64
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]uint64)}
}

func (t *tally) add(block []byte) {
	key := string(block)
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) entries() []Entry {
	entries := make([]Entry, len(t.order))
	for i, key := range t.order {
		entries[i] = Entry{Symbol: []byte(key), Count: t.counts[key]}
	}
	return entries
}

// widthFor returns the smallest unsigned integer width in {1,2,4,8}
// bytes that holds max.
func widthFor(max uint64) int {
	switch {
	case max <= 0xFF:
		return 1
	case max <= 0xFFFF:
		return 2
	case max <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

func putUint(buf []byte, v uint64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(buf, v)
	}
}

func getUint(buf []byte) uint64 {
	switch len(buf) {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(buf))
	case 4:
		return uint64(binary.BigEndian.Uint32(buf))
	case 8:
		return binary.BigEndian.Uint64(buf)
	}
	return 0
}

// SerializeFreqTable writes the preamble (symbolSize, width) followed
// by symbolSize+width-byte records for each entry, per spec.md §6.
func SerializeFreqTable(symbolSize int, entries []Entry) []byte {
	var max uint64
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	w := widthFor(max)
	out := make([]byte, 0, 2+len(entries)*(symbolSize+w))
	out = append(out, byte(symbolSize), byte(w))
	rec := make([]byte, w)
	for _, e := range entries {
		out = append(out, e.Symbol...)
		putUint(rec, e.Count)
		out = append(out, rec...)
	}
	return out
}

// DeserializeFreqTable parses a table previously written by
// SerializeFreqTable from exactly len(data) bytes (the caller slices
// the container's declared table length before calling this).
func DeserializeFreqTable(data []byte) (symbolSize int, entries []Entry, err error) {
	if len(data) < 2 {
		return 0, nil, hufferr.New(hufferr.CorruptInput, "static: truncated frequency table preamble")
	}
	symbolSize = int(data[0])
	w := int(data[1])
	if symbolSize <= 0 {
		return 0, nil, hufferr.New(hufferr.CorruptInput, "static: frequency table declares non-positive symbol size")
	}
	switch w {
	case 1, 2, 4, 8:
	default:
		return 0, nil, hufferr.New(hufferr.CorruptInput, "static: frequency table declares invalid count width")
	}
	pos := 2
	recSize := symbolSize + w
	for pos < len(data) {
		if pos+recSize > len(data) {
			return 0, nil, hufferr.New(hufferr.CorruptInput, "static: truncated frequency table record")
		}
		symbol := append([]byte(nil), data[pos:pos+symbolSize]...)
		pos += symbolSize
		count := getUint(data[pos : pos+w])
		pos += w
		entries = append(entries, Entry{Symbol: symbol, Count: count})
	}
	return symbolSize, entries, nil
}
