package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CzarekM2012/Huffman/container"
)

var (
	encodeOutDir    string
	encodeAlgorithm string
	encodeSymSize   int
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file> [file...]",
	Short: "Compress one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algoName := encodeAlgorithm
		if algoName == "" {
			algoName = cfg.DefaultAlgorithm
		}
		algo, err := container.ParseAlgorithm(algoName)
		if err != nil {
			return err
		}
		symSize := encodeSymSize
		if symSize <= 0 {
			symSize = cfg.SymbolSize
		}

		var failed bool
		for _, src := range args {
			dst := filepath.Join(encodeOutDir, forceHufExtension(filepath.Base(src)))
			log.WithFields(logrus.Fields{
				"src": src, "dst": dst, "algorithm": algo.String(),
			}).Debug("encoding")
			if err := container.Encode(src, dst, algo, symSize); err != nil {
				logFileError("encode", src, err)
				failed = true
				continue
			}
			log.Infof("encoded %s -> %s", src, dst)
		}
		if failed {
			return errEncodeFailed
		}
		return nil
	},
}

// forceHufExtension replaces the source file's own extension (which is
// preserved inside the container itself) with the .huf extension
// gohuff always uses for compressed containers.
func forceHufExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".huf"
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutDir, "output", "o", ".", "output directory")
	encodeCmd.Flags().StringVarP(&encodeAlgorithm, "algorithm", "a", "", "static|adaptive (default from config)")
	encodeCmd.Flags().IntVarP(&encodeSymSize, "symbol-size", "s", 0, "static codec symbol size in bytes (default from config)")
	rootCmd.AddCommand(encodeCmd)
}
