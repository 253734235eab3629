package hufferr

import (
	"io"
	"testing"

	goerrors "errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewHasNoCause(t *testing.T) {
	err := New(InvalidConfig, "huffconfig.Load: bad path")
	require.Equal(t, InvalidConfig, err.Kind)
	require.Nil(t, err.Unwrap())
	require.Contains(t, err.Error(), "InvalidConfig")
	require.Contains(t, err.Error(), "huffconfig.Load: bad path")
}

func TestWrapAttachesCause(t *testing.T) {
	cause := goerrors.New("disk full")
	err := Wrap(IoError, "container.Encode: write header", cause)
	require.Equal(t, IoError, err.Kind)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "IoError")
	require.Contains(t, err.Error(), "disk full")
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CorruptInput, "static.DecodeHeader", nil)
	require.Nil(t, err.Err)
	require.Contains(t, err.Error(), "CorruptInput")
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := Wrap(CorruptInput, "adaptive.DecodeHeader: read header", io.ErrUnexpectedEOF)
	wrapped := errors.Wrap(err, "container.Decode")

	require.True(t, Is(wrapped, CorruptInput))
	require.False(t, Is(wrapped, IoError))
}

func TestIsReturnsFalseForForeignError(t *testing.T) {
	require.False(t, Is(goerrors.New("not ours"), IoError))
	require.False(t, Is(nil, IoError))
}

func TestWrapReadClassifiesShortReadsAsCorruptInput(t *testing.T) {
	err := WrapRead("static.DecodeHeader: read header", io.ErrUnexpectedEOF)
	require.Equal(t, CorruptInput, err.Kind)

	err = WrapRead("static.DecodeHeader: read header", io.EOF)
	require.Equal(t, CorruptInput, err.Kind)
}

func TestWrapReadClassifiesOtherFailuresAsIoError(t *testing.T) {
	err := WrapRead("static.DecodeHeader: read header", goerrors.New("permission denied"))
	require.Equal(t, IoError, err.Kind)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "IoError", IoError.String())
	require.Equal(t, "CorruptInput", CorruptInput.String())
	require.Equal(t, "InvalidConfig", InvalidConfig.String())
}
