package adaptive

import (
	"bytes"
	"io"

	"github.com/CzarekM2012/Huffman/internal/bitio"
	"github.com/CzarekM2012/Huffman/internal/blockio"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// MaxExtensionBits is the largest extension-encoding bit length that
// fits in the header's 7-bit length field (spec.md §6).
const MaxExtensionBits = 0x7F

// Encode writes a complete adaptive container to dst: the one-byte
// header (tag 1, 7-bit encoded-extension length), the encoded
// extension, then the encoded content of src, both produced by one
// tree shared across the whole file so there is a single EOF symbol at
// the very end.
func Encode(src io.Reader, ext string, dst io.Writer) error {
	tree := New(true)

	extSink := bitio.NewSink()
	for _, ch := range []byte(ext) {
		extSink.PushBits(tree.EncodeSymbol([]byte{ch}))
	}
	extBitLen := extSink.Len()
	if extBitLen > MaxExtensionBits {
		return hufferr.New(hufferr.InvalidConfig, "adaptive.Encode: extension encoding exceeds 127 bits")
	}
	extBytes, _ := extSink.Finish()

	header := byte(0x80) | byte(extBitLen&0x7F)
	if _, err := dst.Write([]byte{header}); err != nil {
		return hufferr.Wrap(hufferr.IoError, "adaptive.Encode: write header", err)
	}
	if len(extBytes) > 0 {
		if _, err := dst.Write(extBytes); err != nil {
			return hufferr.Wrap(hufferr.IoError, "adaptive.Encode: write extension", err)
		}
	}

	stream, err := blockio.New(src, 1, blockio.DefaultChunkSize)
	if err != nil {
		return err
	}
	w := NewWriterWithTree(dst, tree, 1)
	for {
		block, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := w.WriteSymbol(block); err != nil {
			return err
		}
	}
	return w.Close()
}

// DecodeHeader reads the header and encoded extension from r (which
// must start at byte 0 of the container) and returns the restored
// extension along with the tree, warmed up exactly as it was after
// encoding, ready for DecodeContent to continue from.
func DecodeHeader(r io.Reader) (tree *Tree, ext string, err error) {
	var hdr [1]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, "", hufferr.WrapRead("adaptive.DecodeHeader: read header", err)
	}
	extBitLen := int(hdr[0] & 0x7F)

	extByteLen := (extBitLen + 7) / 8
	extBytes := make([]byte, extByteLen)
	if extByteLen > 0 {
		if _, err := io.ReadFull(r, extBytes); err != nil {
			return nil, "", hufferr.WrapRead("adaptive.DecodeHeader: read extension", err)
		}
	}

	tree = New(true)
	extSrc := bitio.NewSource(extBytes, extBitLen)
	extContent, _, err := tree.DecodeChunk(extSrc, 1)
	if err != nil {
		return nil, "", err
	}
	return tree, string(bytes.TrimRight(extContent, "\x00")), nil
}

// DecodeContent continues decoding content from r into dst using a
// tree previously returned by DecodeHeader.
func DecodeContent(r io.Reader, tree *Tree, dst io.Writer) error {
	rd := NewReaderWithTree(r, tree, 1)
	return rd.DecodeAll(dst)
}

// Decode reads a complete adaptive container from r (which must start
// at the header byte, i.e. byte 0 of the file), writes the restored
// content to dst, and returns the restored file extension.
func Decode(r io.Reader, dst io.Writer) (string, error) {
	tree, ext, err := DecodeHeader(r)
	if err != nil {
		return "", err
	}
	if err := DecodeContent(r, tree, dst); err != nil {
		return "", err
	}
	return ext, nil
}
