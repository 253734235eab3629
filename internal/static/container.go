package static

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/CzarekM2012/Huffman/internal/bitio"
	"github.com/CzarekM2012/Huffman/internal/blockio"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// HeaderLen is the fixed size, in bytes, of the static container's
// header (spec.md §6): tag+pad(1 byte), frequency-table length
// (4 bytes, big-endian), encoded-extension bit length (1 byte).
const HeaderLen = 6

func extensionBlocks(ext string, symbolSize int) ([][]byte, error) {
	st, err := blockio.New(strings.NewReader(ext), symbolSize, blockio.DefaultChunkSize)
	if err != nil {
		return nil, err
	}
	return blockio.ReadAll(st)
}

// Encode writes a complete static container to dst. It needs two
// passes over the source's content: openSrc is called once to tally
// symbol frequencies and build the canonical tree, then again to
// produce the encoded payload, matching the classical two-pass
// construction this codec is named for. Unlike the adaptive codec,
// the encoded payload must be fully assembled before anything is
// written, because the header's pad-bit count isn't known until the
// last bit has been emitted.
func Encode(openSrc func() (io.ReadCloser, error), ext string, symbolSize int, dst io.Writer) error {
	extBlocks, err := extensionBlocks(ext, symbolSize)
	if err != nil {
		return err
	}

	countR, err := openSrc()
	if err != nil {
		return hufferr.Wrap(hufferr.IoError, "static.Encode: open source (count pass)", err)
	}
	countStream, err := blockio.New(countR, symbolSize, blockio.DefaultChunkSize)
	if err != nil {
		countR.Close()
		return err
	}
	t := newTally()
	for _, b := range extBlocks {
		t.add(b)
	}
	for {
		block, nerr := countStream.Next()
		if nerr == io.EOF {
			break
		}
		if nerr != nil {
			countR.Close()
			return nerr
		}
		t.add(block)
	}
	countR.Close()
	entries := t.entries()

	tree, err := Build(entries)
	if err != nil {
		return err
	}

	extSink := bitio.NewSink()
	for _, b := range extBlocks {
		code, cerr := tree.Encode(b)
		if cerr != nil {
			return cerr
		}
		extSink.PushBits(code)
	}
	extBitLen := extSink.Len()
	if extBitLen > 0xFF {
		return hufferr.New(hufferr.InvalidConfig, "static.Encode: extension encoding exceeds 255 bits")
	}
	extBytes, _ := extSink.Finish()

	encodeR, err := openSrc()
	if err != nil {
		return hufferr.Wrap(hufferr.IoError, "static.Encode: open source (encode pass)", err)
	}
	defer encodeR.Close()
	encodeStream, err := blockio.New(encodeR, symbolSize, blockio.DefaultChunkSize)
	if err != nil {
		return err
	}
	contentSink := bitio.NewSink()
	for {
		block, nerr := encodeStream.Next()
		if nerr == io.EOF {
			break
		}
		if nerr != nil {
			return nerr
		}
		code, cerr := tree.Encode(block)
		if cerr != nil {
			return cerr
		}
		contentSink.PushBits(code)
	}
	contentBytes, padCount := contentSink.Finish()

	table := SerializeFreqTable(symbolSize, entries)

	header := make([]byte, HeaderLen)
	header[0] = byte(padCount&0x7) << 4
	binary.BigEndian.PutUint32(header[1:5], uint32(len(table)))
	header[5] = byte(extBitLen)

	if _, err := dst.Write(header); err != nil {
		return hufferr.Wrap(hufferr.IoError, "static.Encode: write header", err)
	}
	if _, err := dst.Write(table); err != nil {
		return hufferr.Wrap(hufferr.IoError, "static.Encode: write frequency table", err)
	}
	if len(extBytes) > 0 {
		if _, err := dst.Write(extBytes); err != nil {
			return hufferr.Wrap(hufferr.IoError, "static.Encode: write extension", err)
		}
	}
	if len(contentBytes) > 0 {
		if _, err := dst.Write(contentBytes); err != nil {
			return hufferr.Wrap(hufferr.IoError, "static.Encode: write content", err)
		}
	}
	return nil
}

// Header holds the fields decoded from a static container's 6-byte
// header, carried between DecodeHeader and DecodeContent.
type Header struct {
	padCount int
	tree     *Tree
}

// DecodeHeader reads the header, frequency table and encoded extension
// from r (which must start at byte 0 of the container) and returns the
// restored extension along with enough state for DecodeContent to
// finish decoding the payload that follows.
func DecodeHeader(r io.Reader) (h *Header, ext string, err error) {
	hdr := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, "", hufferr.WrapRead("static.DecodeHeader: read header", err)
	}
	padCount := int((hdr[0] >> 4) & 0x7)
	tableLen := binary.BigEndian.Uint32(hdr[1:5])
	extBitLen := int(hdr[5])

	table := make([]byte, tableLen)
	if tableLen > 0 {
		if _, err := io.ReadFull(r, table); err != nil {
			return nil, "", hufferr.WrapRead("static.DecodeHeader: read frequency table", err)
		}
	}
	_, entries, err := DeserializeFreqTable(table)
	if err != nil {
		return nil, "", err
	}
	tree, err := Build(entries)
	if err != nil {
		return nil, "", err
	}

	extByteLen := (extBitLen + 7) / 8
	extBytes := make([]byte, extByteLen)
	if extByteLen > 0 {
		if _, err := io.ReadFull(r, extBytes); err != nil {
			return nil, "", hufferr.WrapRead("static.DecodeHeader: read extension", err)
		}
	}
	extBits := bitio.UnpackBits(extBytes, extBitLen)
	extSymbols, extRemainder := tree.DecodeBlock(extBits)
	if len(extRemainder) > 0 {
		return nil, "", hufferr.New(hufferr.CorruptInput, "static.DecodeHeader: truncated extension")
	}
	ext = string(bytes.TrimRight(bytes.Join(extSymbols, nil), "\x00"))

	return &Header{padCount: padCount, tree: tree}, ext, nil
}

// DecodeContent decodes the remaining bytes of r (everything after the
// header, table and extension) into dst, using the tree and pad count
// from DecodeHeader.
func DecodeContent(r io.Reader, h *Header, dst io.Writer) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return hufferr.Wrap(hufferr.IoError, "static.DecodeContent: read content", err)
	}
	totalBits := len(payload)*8 - h.padCount
	if totalBits < 0 {
		return hufferr.New(hufferr.CorruptInput, "static.DecodeContent: pad count exceeds content length")
	}
	contentBits := bitio.UnpackBits(payload, totalBits)
	symbols, remainder := h.tree.DecodeBlock(contentBits)
	if len(remainder) > 0 {
		return hufferr.New(hufferr.CorruptInput, "static.DecodeContent: truncated payload")
	}
	for _, s := range symbols {
		if _, err := dst.Write(s); err != nil {
			return hufferr.Wrap(hufferr.IoError, "static.DecodeContent: write decoded bytes", err)
		}
	}
	return nil
}

// Decode reads a complete static container from r (starting at the
// header byte) and writes the restored content to dst, returning the
// restored file extension.
func Decode(r io.Reader, dst io.Writer) (string, error) {
	h, ext, err := DecodeHeader(r)
	if err != nil {
		return "", err
	}
	if err := DecodeContent(r, h, dst); err != nil {
		return "", err
	}
	return ext, nil
}
