package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CzarekM2012/Huffman/internal/huffconfig"
)

func withDefaultConfig(t *testing.T) {
	t.Helper()
	cfg = huffconfig.Default()
}

func TestEncodeDecodeRoundTripThroughCommands(t *testing.T) {
	withDefaultConfig(t)

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "message.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("gohuff command round trip"), 0o644))

	compressedDir := filepath.Join(dir, "compressed")
	require.NoError(t, os.Mkdir(compressedDir, 0o755))
	encodeOutDir = compressedDir
	encodeAlgorithm = "adaptive"
	encodeSymSize = 0
	require.NoError(t, encodeCmd.RunE(encodeCmd, []string{srcPath}))

	restoredDir := filepath.Join(dir, "restored")
	require.NoError(t, os.Mkdir(restoredDir, 0o755))
	decodeOutDir = restoredDir
	require.NoError(t, decodeCmd.RunE(decodeCmd, []string{filepath.Join(compressedDir, "message.huf")}))

	got, err := os.ReadFile(filepath.Join(restoredDir, "message.txt"))
	require.NoError(t, err)
	require.Equal(t, "gohuff command round trip", string(got))
}

func TestEncodeCommandRejectsUnknownAlgorithm(t *testing.T) {
	withDefaultConfig(t)

	encodeOutDir = t.TempDir()
	encodeAlgorithm = "quantum"
	err := encodeCmd.RunE(encodeCmd, []string{"irrelevant.txt"})
	require.Error(t, err)
}

func TestEncodeCommandReportsPerFileFailure(t *testing.T) {
	withDefaultConfig(t)

	encodeOutDir = t.TempDir()
	encodeAlgorithm = "adaptive"
	encodeSymSize = 0
	err := encodeCmd.RunE(encodeCmd, []string{filepath.Join(t.TempDir(), "does-not-exist.txt")})
	require.ErrorIs(t, err, errEncodeFailed)
}

// TestEncodeCommandSkipsMissingDestinationDir exercises logFileError's
// warn-level "skip" branch (spec.md §7) rather than its error-level
// branch: a missing output directory is an InvalidConfig, still a
// batch failure, but logged differently from an I/O or corrupt-input
// failure.
func TestEncodeCommandSkipsMissingDestinationDir(t *testing.T) {
	withDefaultConfig(t)

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "message.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("data"), 0o644))

	encodeOutDir = filepath.Join(dir, "nonexistent-subdir")
	encodeAlgorithm = "adaptive"
	encodeSymSize = 0
	err := encodeCmd.RunE(encodeCmd, []string{srcPath})
	require.ErrorIs(t, err, errEncodeFailed)
}
