// Package blockio implements a lazy, chunked reader that yields
// fixed-size symbol blocks from an io.Reader, zero-padding a short
// final block.
package blockio

import (
	"io"

	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

const (
	// DefaultSymbolSize is the default width, in bytes, of a symbol
	// block (one byte, for byte-granular coding).
	DefaultSymbolSize = 1
	// DefaultChunkSize is the default number of bytes read from the
	// underlying reader per gulp.
	DefaultChunkSize = 1024
)

// Stream yields successive, non-overlapping SymbolSize-byte windows
// read from an underlying io.Reader, reading ChunkSize bytes at a
// time. The final window is right-padded with 0x00 if short.
type Stream struct {
	r          io.Reader
	symbolSize int
	chunkSize  int

	carry []byte // bytes read but not yet sliced into a full symbol
	eof   bool
}

// New returns a Stream over r. symbolSize and chunkSize must be > 0;
// callers that don't care can pass DefaultSymbolSize/DefaultChunkSize.
func New(r io.Reader, symbolSize, chunkSize int) (*Stream, error) {
	if symbolSize <= 0 || chunkSize <= 0 {
		return nil, hufferr.New(hufferr.InvalidConfig, "blockio.New: symbolSize and chunkSize must be positive")
	}
	return &Stream{r: r, symbolSize: symbolSize, chunkSize: chunkSize}, nil
}

// Next returns the next symbolSize-byte block, or io.EOF once every
// byte (including a zero-padded final short block) has been yielded.
func (s *Stream) Next() ([]byte, error) {
	for len(s.carry) < s.symbolSize {
		if s.eof {
			if len(s.carry) == 0 {
				return nil, io.EOF
			}
			block := make([]byte, s.symbolSize)
			copy(block, s.carry)
			s.carry = nil
			return block, nil
		}
		buf := make([]byte, s.chunkSize)
		n, err := s.r.Read(buf)
		if n > 0 {
			s.carry = append(s.carry, buf[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				s.eof = true
				continue
			}
			return nil, hufferr.Wrap(hufferr.IoError, "blockio.Stream.Next: read failed", err)
		}
	}
	block := s.carry[:s.symbolSize]
	s.carry = s.carry[s.symbolSize:]
	return block, nil
}

// ReadAll drains the stream into a single slice of blocks. Intended for
// small inputs (tests, extension strings); production file encoding
// should call Next in a loop instead so memory stays O(chunk size).
func ReadAll(s *Stream) ([][]byte, error) {
	var blocks [][]byte
	for {
		block, err := s.Next()
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
}
