// Package hufferr defines the three error kinds gohuff's codecs and CLI
// can fail with: IoError, CorruptInput, and InvalidConfig.
package hufferr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// IoError means an underlying file read or write failed.
	IoError Kind = iota
	// CorruptInput means the input is not a valid gohuff container:
	// an unknown algorithm tag, a truncated header, or bits that ran
	// out before an EOF symbol.
	CorruptInput
	// InvalidConfig means the caller passed a non-positive symbol
	// size, a missing destination directory, or a malformed config file.
	InvalidConfig
)

func (k Kind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case CorruptInput:
		return "CorruptInput"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return "UnknownError"
	}
}

// Error wraps a Kind with the operation that failed and the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap lets errors.Is/errors.As see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap builds an *Error of the given kind, attaching a stack trace to err
// via github.com/pkg/errors so the original call site survives propagation.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return &Error{Kind: kind, Op: op}
	}
	return &Error{Kind: kind, Op: op, Err: errors.Wrapf(err, "gohuff: %s", op)}
}

// New builds an *Error of the given kind with no wrapped cause.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// WrapRead builds an *Error from a failed read of a fixed-size
// container field (header, frequency table, extension): a
// short read (io.EOF/io.ErrUnexpectedEOF) means the container itself
// is truncated, which is CorruptInput, not a lower-level IoError.
func WrapRead(op string, err error) *Error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return Wrap(CorruptInput, op, err)
	}
	return Wrap(IoError, op, err)
}

// Is reports whether err is a *Error of the given kind, looking through
// any wrapping performed by errors.Wrap/pkg/errors along the way.
func Is(err error, kind Kind) bool {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Kind == kind
	}
	return false
}
