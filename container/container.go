// Package container implements the self-describing compressed file
// format: a one-byte (or 6-byte, for the static codec) header that
// names which coder produced the payload and carries the original
// file's extension, so a decoded file can be restored under its
// original name without the caller having to remember it.
package container

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CzarekM2012/Huffman/internal/adaptive"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
	"github.com/CzarekM2012/Huffman/internal/static"
)

// Algorithm selects which coder produces (or produced) a container.
// Its numeric value matches the tag bit written to byte 0 of the
// container, per spec.md §6.
type Algorithm byte

const (
	Static   Algorithm = 0
	Adaptive Algorithm = 1
)

func (a Algorithm) String() string {
	if a == Adaptive {
		return "adaptive"
	}
	return "static"
}

// ParseAlgorithm resolves a CLI-facing algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "static":
		return Static, nil
	case "adaptive":
		return Adaptive, nil
	default:
		return 0, hufferr.New(hufferr.InvalidConfig, "container.ParseAlgorithm: unknown algorithm "+s)
	}
}

// createInDir creates path for writing, distinguishing a missing
// parent directory (spec.md §7: caller-level InvalidConfig, surfaced
// as a skip rather than an I/O failure) from any other create failure.
func createInDir(path, op string) (*os.File, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, hufferr.New(hufferr.InvalidConfig, op+": destination directory does not exist")
		}
		return nil, hufferr.Wrap(hufferr.IoError, op, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, hufferr.Wrap(hufferr.IoError, op, err)
	}
	return f, nil
}

// Encode compresses srcPath into dstPath using algo. symbolSize only
// affects the static codec (the adaptive codec always encodes
// byte-at-a-time, per spec.md §4.D).
func Encode(srcPath, dstPath string, algo Algorithm, symbolSize int) error {
	dstFile, err := createInDir(dstPath, "container.Encode: create destination")
	if err != nil {
		return err
	}
	defer dstFile.Close()

	ext := strings.TrimPrefix(filepath.Ext(srcPath), ".")

	switch algo {
	case Adaptive:
		srcFile, err := os.Open(srcPath)
		if err != nil {
			return hufferr.Wrap(hufferr.IoError, "container.Encode: open source", err)
		}
		defer srcFile.Close()
		return adaptive.Encode(srcFile, ext, dstFile)
	case Static:
		open := func() (io.ReadCloser, error) { return os.Open(srcPath) }
		return static.Encode(open, ext, symbolSize, dstFile)
	default:
		return hufferr.New(hufferr.InvalidConfig, "container.Encode: unknown algorithm")
	}
}

// Decode decompresses srcPath, writing the restored file into dstDir
// under its original base name plus the extension recorded at encode
// time, and returns the path it wrote.
func Decode(srcPath, dstDir string) (string, error) {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return "", hufferr.Wrap(hufferr.IoError, "container.Decode: open source", err)
	}
	defer srcFile.Close()

	br := bufio.NewReader(srcFile)
	tagByte, err := br.Peek(1)
	if err != nil {
		return "", hufferr.Wrap(hufferr.CorruptInput, "container.Decode: empty or truncated container", err)
	}
	tag := Algorithm((tagByte[0] >> 7) & 1)

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	outBase := filepath.Join(dstDir, base)

	switch tag {
	case Adaptive:
		tree, ext, err := adaptive.DecodeHeader(br)
		if err != nil {
			return "", err
		}
		outPath := withExt(outBase, ext)
		dstFile, err := createInDir(outPath, "container.Decode: create destination")
		if err != nil {
			return "", err
		}
		defer dstFile.Close()
		if err := adaptive.DecodeContent(br, tree, dstFile); err != nil {
			return "", err
		}
		return outPath, nil
	case Static:
		h, ext, err := static.DecodeHeader(br)
		if err != nil {
			return "", err
		}
		outPath := withExt(outBase, ext)
		dstFile, err := createInDir(outPath, "container.Decode: create destination")
		if err != nil {
			return "", err
		}
		defer dstFile.Close()
		if err := static.DecodeContent(br, h, dstFile); err != nil {
			return "", err
		}
		return outPath, nil
	default:
		return "", hufferr.New(hufferr.CorruptInput, "container.Decode: unrecognized algorithm tag")
	}
}

func withExt(base, ext string) string {
	if ext == "" {
		return base
	}
	return base + "." + ext
}
