package adaptive

import (
	"io"

	"github.com/CzarekM2012/Huffman/internal/bitio"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// DrainThreshold is the number of complete bits the streaming Writer
// accumulates before draining full bytes to its underlying io.Writer.
// Per spec.md §5 ("buffers are bounded at 1 KiB in both directions").
const DrainThreshold = 8 * 1024

// Writer streams symbols through an adaptive Huffman tree and flushes
// whole bytes to an underlying io.Writer as they fill up, finishing
// with the EOF code and a zero-padded final byte on Close.
type Writer struct {
	w          io.Writer
	tree       *Tree
	sink       *bitio.Sink
	symbolSize int
}

// NewWriter returns a Writer that encodes symbolSize-byte symbols into w,
// starting from a fresh tree.
func NewWriter(w io.Writer, symbolSize int) *Writer {
	return NewWriterWithTree(w, New(true), symbolSize)
}

// NewWriterWithTree returns a Writer that continues encoding into an
// already-warmed-up tree — used to encode a file's content with the
// same tree that already encoded its extension, so both share one EOF
// symbol at the very end of the stream.
func NewWriterWithTree(w io.Writer, tree *Tree, symbolSize int) *Writer {
	return &Writer{w: w, tree: tree, sink: bitio.NewSink(), symbolSize: symbolSize}
}

// Tree exposes the underlying adaptive tree, mainly so tests and the
// symmetry property in spec.md §8 can compare encoder/decoder shape.
func (wr *Writer) Tree() *Tree {
	return wr.tree
}

// WriteSymbol encodes one symbol and drains complete bytes to the
// destination once at least DrainThreshold bits have accumulated.
func (wr *Writer) WriteSymbol(symbol []byte) error {
	bits := wr.tree.EncodeSymbol(symbol)
	wr.sink.PushBits(bits)
	if wr.sink.Len() >= DrainThreshold {
		if err := wr.drain(); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) drain() error {
	full := wr.sink.TakeFullBytes()
	if len(full) == 0 {
		return nil
	}
	if _, err := wr.w.Write(full); err != nil {
		return hufferr.Wrap(hufferr.IoError, "adaptive.Writer: drain", err)
	}
	return nil
}

// Close appends the EOF code, flushes every remaining bit with
// zero-padding to an 8-bit boundary, and writes the final bytes.
func (wr *Writer) Close() error {
	wr.sink.PushBits(wr.tree.EncodeEOF())
	final, _ := wr.sink.Finish()
	if len(final) == 0 {
		return nil
	}
	if _, err := wr.w.Write(final); err != nil {
		return hufferr.Wrap(hufferr.IoError, "adaptive.Writer: close", err)
	}
	return nil
}

// Reader decodes an adaptive Huffman bitstream from an underlying
// io.Reader, restartable across arbitrary chunk boundaries: leftover
// undecoded bits from one read are prepended to the next before
// resuming.
type Reader struct {
	r          io.Reader
	tree       *Tree
	symbolSize int
	chunkSize  int
	pending    []byte // leftover undecoded bits (0/1 values), not yet byte-packed
	eofSeen    bool
}

// NewReader returns a Reader decoding symbolSize-byte symbols from r,
// starting from a fresh tree.
func NewReader(r io.Reader, symbolSize int) *Reader {
	return NewReaderWithTree(r, New(true), symbolSize)
}

// NewReaderWithTree returns a Reader that continues decoding from an
// already-warmed-up tree — the counterpart to NewWriterWithTree, used
// to decode a file's content with the same tree that already decoded
// its extension.
func NewReaderWithTree(r io.Reader, tree *Tree, symbolSize int) *Reader {
	return &Reader{r: r, tree: tree, symbolSize: symbolSize, chunkSize: 1024}
}

// Tree exposes the underlying adaptive tree.
func (rd *Reader) Tree() *Tree {
	return rd.tree
}

// DecodeAll decodes the full stream to dst, stopping as soon as the
// EOF symbol is seen. It fails with CorruptInput if the underlying
// reader runs dry before an EOF symbol has been decoded.
func (rd *Reader) DecodeAll(dst io.Writer) error {
	buf := make([]byte, rd.chunkSize)
	for {
		if rd.eofSeen {
			return nil
		}
		n, readErr := rd.r.Read(buf)
		if readErr != nil && readErr != io.EOF {
			return hufferr.Wrap(hufferr.IoError, "adaptive.Reader.DecodeAll: read", readErr)
		}
		readEOF := readErr == io.EOF

		var chunkBits []byte
		if n > 0 {
			chunkBits = bitio.UnpackBits(buf[:n], 8*n)
		}
		if err := rd.feed(chunkBits, dst); err != nil {
			return err
		}
		if rd.eofSeen {
			return nil
		}
		if readEOF {
			return hufferr.New(hufferr.CorruptInput, "adaptive.Reader.DecodeAll: input ended before EOF symbol")
		}
	}
}

// feed appends newBits to any leftover bits from the previous call,
// decodes every whole symbol it can, writes the decoded bytes to dst,
// and keeps whatever bits weren't enough to complete another symbol.
func (rd *Reader) feed(newBits []byte, dst io.Writer) error {
	all := append(rd.pending, newBits...)
	src := bitio.NewSource(bitio.PackBits(all), len(all))
	content, eof, err := rd.tree.DecodeChunk(src, rd.symbolSize)
	if err != nil {
		return err
	}
	if len(content) > 0 {
		if _, werr := dst.Write(content); werr != nil {
			return hufferr.Wrap(hufferr.IoError, "adaptive.Reader: write decoded bytes", werr)
		}
	}
	consumed := len(all) - src.Len()
	rd.pending = append([]byte(nil), all[consumed:]...)
	if eof {
		rd.eofSeen = true
	}
	return nil
}
