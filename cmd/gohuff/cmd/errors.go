package cmd

import (
	"errors"

	"github.com/CzarekM2012/Huffman/internal/hufferr"
)

// errEncodeFailed and errDecodeFailed are sentinels returned after a
// batch run where at least one file failed; the per-file error was
// already logged. The non-nil return makes Execute exit with code 1,
// and cobra also prints this summary message (and the usage text),
// since the root command does not silence errors or usage.
var (
	errEncodeFailed = errors.New("one or more files failed to encode")
	errDecodeFailed = errors.New("one or more files failed to decode")
)

// logFileError reports a single file's failure at the right level: an
// InvalidConfig (e.g. a missing destination directory) is a caller
// mistake surfaced as a skip with a warning (spec.md §7), not an
// I/O-level error.
func logFileError(op, path string, err error) {
	if hufferr.Is(err, hufferr.InvalidConfig) {
		log.WithError(err).Warnf("skipping %s", path)
		return
	}
	log.WithError(err).Errorf("failed to %s %s", op, path)
}
